package usecase

import (
	"context"

	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/entity"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/repository"
	"github.com/mehdiozdemir/EduAI-sub002/internal/pkg/mapper"
	"github.com/mehdiozdemir/EduAI-sub002/internal/pkg/statestore"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Flow steps. Forward order is Subjects -> TopicSelection ->
// QuizConfiguration -> QuizSession -> Results; nothing is skip-reachable.
type Step string

const (
	StepSubjects          Step = "subjects"
	StepTopicSelection    Step = "topic_selection"
	StepQuizConfiguration Step = "quiz_configuration"
	StepQuizSession       Step = "quiz_session"
	StepResults           Step = "results"
)

const (
	KeyTopicSelection    = statestore.KeyTopicSelection
	KeyQuizConfiguration = statestore.KeyQuizConfiguration
)

// FlowStore is the durable per-flow-session state store. Implemented by
// *statestore.Store; faked in tests.
type FlowStore interface {
	Save(ctx context.Context, sessionID, key string, state any)
	Load(ctx context.Context, sessionID, key string, dest any) bool
	Clear(ctx context.Context, sessionID, key string)
	ClearAll(ctx context.Context, sessionID string)
}

// StepEntry is the outcome of entering a step: either the resolved state
// for that step, or a redirect to the earliest step that can be satisfied.
// Missing state is ordinary control flow, never an error.
type StepEntry struct {
	Step              Step                           `json:"step"`
	RedirectTo        Step                           `json:"redirect_to,omitempty"`
	Recovered         bool                           `json:"recovered,omitempty"`
	TopicSelection    *entity.TopicSelectionState    `json:"topic_selection,omitempty"`
	QuizConfiguration *entity.QuizConfigurationState `json:"quiz_configuration,omitempty"`
}

func (e *StepEntry) Redirected() bool {
	return e.RedirectTo != ""
}

type NavigationUsecase interface {
	SaveTopicSelection(ctx context.Context, sessionID string, state entity.TopicSelectionState) (*StepEntry, error)
	EnterTopicSelection(ctx context.Context, sessionID, courseID string, payload *entity.TopicSelectionState) (*StepEntry, error)
	SaveQuizConfiguration(ctx context.Context, sessionID string, state entity.QuizConfigurationState) (*StepEntry, error)
	EnterQuizConfiguration(ctx context.Context, sessionID, courseID string, payload *entity.QuizConfigurationState) (*StepEntry, error)
	BackToTopicSelection(ctx context.Context, sessionID string) (*StepEntry, error)
	Reset(ctx context.Context, sessionID string)
}

type NavigationConfig struct {
	DB      *gorm.DB
	Courses repository.CourseRepository
	Store   FlowStore
	Log     *logrus.Logger
}

type navigationUsecase struct {
	cfg NavigationConfig
}

func NewNavigationUsecase(cfg NavigationConfig) NavigationUsecase {
	return &navigationUsecase{cfg: cfg}
}

// SaveTopicSelection validates and persists the step state before the flow
// moves forward. An invalid payload redirects back to the subjects listing.
func (u *navigationUsecase) SaveTopicSelection(ctx context.Context, sessionID string, state entity.TopicSelectionState) (*StepEntry, error) {
	if !state.Valid() {
		return &StepEntry{Step: StepTopicSelection, RedirectTo: StepSubjects}, nil
	}
	u.cfg.Store.Save(ctx, sessionID, KeyTopicSelection, state)
	return &StepEntry{Step: StepTopicSelection, TopicSelection: &state}, nil
}

// EnterTopicSelection resolves the step's prerequisite through the
// prioritized chain: in-memory payload, durable store, course refetch,
// subjects fallback.
func (u *navigationUsecase) EnterTopicSelection(ctx context.Context, sessionID, courseID string, payload *entity.TopicSelectionState) (*StepEntry, error) {
	if payload.Valid() {
		u.cfg.Store.Save(ctx, sessionID, KeyTopicSelection, payload)
		return &StepEntry{Step: StepTopicSelection, TopicSelection: payload}, nil
	}

	var stored entity.TopicSelectionState
	if u.cfg.Store.Load(ctx, sessionID, KeyTopicSelection, &stored) && stored.Valid() {
		// Re-persist so the recovered session keeps its resumability.
		u.cfg.Store.Save(ctx, sessionID, KeyTopicSelection, stored)
		return &StepEntry{Step: StepTopicSelection, Recovered: true, TopicSelection: &stored}, nil
	}

	if rebuilt := u.rebuildFromCourse(ctx, courseID); rebuilt != nil {
		u.cfg.Store.Save(ctx, sessionID, KeyTopicSelection, rebuilt)
		return &StepEntry{Step: StepTopicSelection, Recovered: true, TopicSelection: rebuilt}, nil
	}

	u.cfg.Store.ClearAll(ctx, sessionID)
	return &StepEntry{Step: StepTopicSelection, RedirectTo: StepSubjects}, nil
}

// SaveQuizConfiguration persists the configuration step's state, requiring
// a non-empty topic selection.
func (u *navigationUsecase) SaveQuizConfiguration(ctx context.Context, sessionID string, state entity.QuizConfigurationState) (*StepEntry, error) {
	if !state.Valid() {
		return u.configFallback(ctx, sessionID, state.Course.ID), nil
	}
	u.cfg.Store.Save(ctx, sessionID, KeyQuizConfiguration, state)
	return &StepEntry{Step: StepQuizConfiguration, QuizConfiguration: &state}, nil
}

// EnterQuizConfiguration runs the same chain as EnterTopicSelection for the
// configuration step. A recoverable course with no selection redirects to
// topic selection - a selection is never fabricated.
func (u *navigationUsecase) EnterQuizConfiguration(ctx context.Context, sessionID, courseID string, payload *entity.QuizConfigurationState) (*StepEntry, error) {
	if payload.Valid() {
		u.cfg.Store.Save(ctx, sessionID, KeyQuizConfiguration, payload)
		return &StepEntry{Step: StepQuizConfiguration, QuizConfiguration: payload}, nil
	}

	var stored entity.QuizConfigurationState
	if u.cfg.Store.Load(ctx, sessionID, KeyQuizConfiguration, &stored) && stored.Valid() {
		u.cfg.Store.Save(ctx, sessionID, KeyQuizConfiguration, stored)
		return &StepEntry{Step: StepQuizConfiguration, Recovered: true, QuizConfiguration: &stored}, nil
	}

	return u.configFallback(ctx, sessionID, courseID), nil
}

// configFallback redirects to the earliest satisfiable step: topic
// selection when the course can still be resolved, otherwise the root
// subjects listing with all stale state cleared.
func (u *navigationUsecase) configFallback(ctx context.Context, sessionID, courseID string) *StepEntry {
	if rebuilt := u.rebuildFromCourse(ctx, courseID); rebuilt != nil {
		u.cfg.Store.Save(ctx, sessionID, KeyTopicSelection, rebuilt)
		return &StepEntry{
			Step:           StepQuizConfiguration,
			RedirectTo:     StepTopicSelection,
			TopicSelection: rebuilt,
		}
	}
	u.cfg.Store.ClearAll(ctx, sessionID)
	return &StepEntry{Step: StepQuizConfiguration, RedirectTo: StepSubjects}
}

// rebuildFromCourse reconstructs a minimal TopicSelectionState (empty
// selection) from the course catalog, for direct URL entries carrying only
// a course id. Returns nil when the course or its level cannot be resolved.
func (u *navigationUsecase) rebuildFromCourse(ctx context.Context, courseID string) *entity.TopicSelectionState {
	if courseID == "" {
		return nil
	}

	course, err := u.cfg.Courses.FindCourseByCourseID(u.cfg.DB, courseID)
	if err != nil {
		u.warn("course lookup during recovery", err)
		return nil
	}
	level, err := u.cfg.Courses.FindLevelByLevelID(u.cfg.DB, course.LevelID)
	if err != nil {
		u.warn("level lookup during recovery", err)
		return nil
	}

	state := &entity.TopicSelectionState{
		Course:         mapper.ToCourse(course),
		EducationLevel: mapper.ToLevel(level),
	}
	if !state.Valid() {
		return nil
	}
	return state
}

// BackToTopicSelection rebuilds the previous step's state from the stored
// configuration; the selection is dropped on the way back.
func (u *navigationUsecase) BackToTopicSelection(ctx context.Context, sessionID string) (*StepEntry, error) {
	var stored entity.QuizConfigurationState
	if u.cfg.Store.Load(ctx, sessionID, KeyQuizConfiguration, &stored) && stored.TopicSelectionState.Valid() {
		selection := stored.ToTopicSelection()
		u.cfg.Store.Save(ctx, sessionID, KeyTopicSelection, selection)
		u.cfg.Store.Clear(ctx, sessionID, KeyQuizConfiguration)
		return &StepEntry{Step: StepTopicSelection, TopicSelection: &selection}, nil
	}

	var selection entity.TopicSelectionState
	if u.cfg.Store.Load(ctx, sessionID, KeyTopicSelection, &selection) && selection.Valid() {
		return &StepEntry{Step: StepTopicSelection, TopicSelection: &selection}, nil
	}

	u.cfg.Store.ClearAll(ctx, sessionID)
	return &StepEntry{Step: StepTopicSelection, RedirectTo: StepSubjects}, nil
}

// Reset is the explicit back-to-start action.
func (u *navigationUsecase) Reset(ctx context.Context, sessionID string) {
	u.cfg.Store.ClearAll(ctx, sessionID)
}

func (u *navigationUsecase) warn(op string, err error) {
	if u.cfg.Log != nil {
		u.cfg.Log.Warnf("navigation: %s failed: %v", op, err)
	}
}
