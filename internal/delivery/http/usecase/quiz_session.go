package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/entity"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/repository"
	"github.com/mehdiozdemir/EduAI-sub002/internal/pkg/mapper"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SecondsPerQuestion is the fixed per-question time budget.
const SecondsPerQuestion = 90

const (
	SessionStatusActive   = "active"
	SessionStatusFinished = "finished"

	CompletionSubmitted = "submitted"
	CompletionTimeout   = "timeout"
)

// QuestionGenerator is the external quiz-generation collaborator.
type QuestionGenerator interface {
	GenerateQuiz(ctx context.Context, cfg entity.QuizConfiguration, topics []entity.Topic) ([]entity.Question, error)
}

// QuizSession is runtime-only state. It is never persisted: a client
// refresh during an active quiz forfeits progress. The mutex serializes the
// ticker against user events; once the status leaves active no mutation is
// honored.
type QuizSession struct {
	mu sync.Mutex

	quizID        string
	flowSessionID string
	config        entity.QuizConfiguration

	questions        []entity.Question
	currentIndex     int
	answers          map[int]string
	remainingSeconds int
	status           string
	completionType   string
	startedAt        time.Time
	finishedAt       time.Time

	done      chan struct{}
	closeOnce sync.Once
}

func newQuizSession(flowSessionID string, cfg entity.QuizConfiguration, questions []entity.Question) *QuizSession {
	return &QuizSession{
		quizID:           uuid.NewString(),
		flowSessionID:    flowSessionID,
		config:           cfg,
		questions:        questions,
		currentIndex:     0,
		answers:          make(map[int]string),
		remainingSeconds: cfg.QuestionCount * SecondsPerQuestion,
		status:           SessionStatusActive,
		startedAt:        time.Now().UTC(),
		done:             make(chan struct{}),
	}
}

// SelectAnswer records (overwriting) the answer for a question. Returns
// false when the session is already finished or the index is out of range;
// late events after the finished transition are dropped, not errors.
func (s *QuizSession) SelectAnswer(index int, letter string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != SessionStatusActive {
		return false
	}
	if index < 0 || index >= len(s.questions) {
		return false
	}
	s.answers[index] = letter
	return true
}

// Next and Previous clamp to [0, len-1]; boundary calls are no-ops.
func (s *QuizSession) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == SessionStatusActive && s.currentIndex < len(s.questions)-1 {
		s.currentIndex++
	}
}

func (s *QuizSession) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == SessionStatusActive && s.currentIndex > 0 {
		s.currentIndex--
	}
}

// Tick burns one second of the budget. At zero the session transitions to
// finished with blanks intact - a forced submission, not an error. Returns
// true once the session has finished.
func (s *QuizSession) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != SessionStatusActive {
		return true
	}
	s.remainingSeconds--
	if s.remainingSeconds <= 0 {
		s.remainingSeconds = 0
		s.finishLocked(CompletionTimeout)
		return true
	}
	return false
}

// Finish is the explicit user-triggered submission, valid from any point.
func (s *QuizSession) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == SessionStatusActive {
		s.finishLocked(CompletionSubmitted)
	}
}

func (s *QuizSession) finishLocked(completionType string) {
	s.status = SessionStatusFinished
	s.completionType = completionType
	s.finishedAt = time.Now().UTC()
	s.closeOnce.Do(func() { close(s.done) })
}

// teardown stops the ticker goroutine without finishing the session.
func (s *QuizSession) teardown() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *QuizSession) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Score derives the result from the current answers. Pure with respect to
// the session contents, so it can be recomputed at any time.
func (s *QuizSession) Score() *entity.QuizResult {
	s.mu.Lock()
	answers := make(map[int]string, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	questions := s.questions
	quizID := s.quizID
	completionType := s.completionType
	s.mu.Unlock()

	result := ScoreQuiz(questions, answers)
	result.QuizID = quizID
	result.CompletionType = completionType
	return result
}

// ScoreQuiz counts an absent answer as blank and any letter that does not
// match the correct one as wrong.
func ScoreQuiz(questions []entity.Question, answers map[int]string) *entity.QuizResult {
	result := &entity.QuizResult{
		Total:       len(questions),
		PerQuestion: make([]entity.PerQuestionResult, 0, len(questions)),
	}
	for i, q := range questions {
		answer, answered := answers[i]
		per := entity.PerQuestionResult{
			Index:         i,
			UserAnswer:    answer,
			CorrectLetter: q.CorrectLetter,
		}
		switch {
		case !answered || answer == "":
			per.IsBlank = true
			result.BlankCount++
		case answer == q.CorrectLetter:
			per.IsCorrect = true
			result.CorrectCount++
		default:
			result.WrongCount++
		}
		result.PerQuestion = append(result.PerQuestion, per)
	}
	if result.Total > 0 {
		result.Percentage = int(math.Round(100 * float64(result.CorrectCount) / float64(result.Total)))
	}
	return result
}

func (s *QuizSession) view() *entity.QuizSessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	answers := make(map[int]string, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	questions := make([]entity.Question, 0, len(s.questions))
	for _, q := range s.questions {
		// Correct letters and explanations stay on the server until scoring.
		questions = append(questions, entity.Question{
			Prompt:  q.Prompt,
			Options: q.Options,
			TopicID: q.TopicID,
		})
	}

	return &entity.QuizSessionView{
		QuizID:           s.quizID,
		Status:           s.status,
		CurrentIndex:     s.currentIndex,
		QuestionCount:    len(s.questions),
		RemainingSeconds: s.remainingSeconds,
		Answers:          answers,
		Questions:        questions,
	}
}

type QuizSessionUsecase interface {
	Generate(ctx context.Context, flowSessionID string, cfg entity.QuizConfiguration) (*entity.QuizSessionView, error)
	GetSession(quizID string) (*entity.QuizSessionView, error)
	SelectAnswer(quizID string, req entity.SelectAnswerRequest) (*entity.QuizSessionView, error)
	Next(quizID string) (*entity.QuizSessionView, error)
	Previous(quizID string) (*entity.QuizSessionView, error)
	Finish(ctx context.Context, quizID string) (*entity.QuizResult, error)
	Result(ctx context.Context, quizID string) (*entity.QuizResult, error)
	Abandon(quizID string) error
	History(ctx context.Context, flowSessionID string) ([]entity.ResultHistoryItem, error)
	Shutdown()
}

type QuizSessionConfig struct {
	DB        *gorm.DB
	Generator QuestionGenerator
	Courses   repository.CourseRepository
	Results   repository.ResultRepository
	Store     FlowStore
	Log       *logrus.Logger
}

type quizSessionUsecase struct {
	cfg QuizSessionConfig

	mu       sync.Mutex
	sessions map[string]*QuizSession
}

func NewQuizSessionUsecase(cfg QuizSessionConfig) QuizSessionUsecase {
	return &quizSessionUsecase{
		cfg:      cfg,
		sessions: make(map[string]*QuizSession),
	}
}

var (
	ErrQuizSessionNotFound = fmt.Errorf("quiz session not found")
	ErrQuizFinished        = fmt.Errorf("quiz session already finished")
)

// Generate is the only entry into a quiz session. It requires a fully
// validated configuration; on generator failure no session is created and
// retrying is the caller's concern.
func (u *quizSessionUsecase) Generate(ctx context.Context, flowSessionID string, cfg entity.QuizConfiguration) (*entity.QuizSessionView, error) {
	if msg := cfg.Check(); msg != "" {
		return nil, fmt.Errorf("invalid configuration: %s", msg)
	}

	dbTopics, err := u.cfg.Courses.FindTopicsByTopicIDs(u.cfg.DB, cfg.TopicIDs)
	if err != nil {
		return nil, fmt.Errorf("topic lookup failed: %w", err)
	}
	if len(dbTopics) == 0 {
		return nil, fmt.Errorf("no topics found for configuration")
	}

	questions, err := u.cfg.Generator.GenerateQuiz(ctx, cfg, mapper.ToTopics(dbTopics))
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	session := newQuizSession(flowSessionID, cfg, questions)

	u.mu.Lock()
	u.sessions[session.quizID] = session
	u.mu.Unlock()

	go u.runTimer(session)

	// Entering the quiz step makes the stored configuration obsolete;
	// mid-quiz resume from storage is not supported.
	if u.cfg.Store != nil {
		u.cfg.Store.Clear(ctx, flowSessionID, KeyQuizConfiguration)
	}

	return session.view(), nil
}

func (u *quizSessionUsecase) runTimer(s *QuizSession) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if s.Tick() {
				u.persistResult(context.Background(), s)
				return
			}
		}
	}
}

func (u *quizSessionUsecase) lookup(quizID string) (*QuizSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	session, ok := u.sessions[quizID]
	if !ok {
		return nil, ErrQuizSessionNotFound
	}
	return session, nil
}

func (u *quizSessionUsecase) GetSession(quizID string) (*entity.QuizSessionView, error) {
	session, err := u.lookup(quizID)
	if err != nil {
		return nil, err
	}
	return session.view(), nil
}

func (u *quizSessionUsecase) SelectAnswer(quizID string, req entity.SelectAnswerRequest) (*entity.QuizSessionView, error) {
	session, err := u.lookup(quizID)
	if err != nil {
		return nil, err
	}
	if !session.SelectAnswer(req.QuestionIndex, req.OptionLetter) {
		if session.Status() == SessionStatusFinished {
			return nil, ErrQuizFinished
		}
		return nil, fmt.Errorf("question index %d out of range", req.QuestionIndex)
	}
	return session.view(), nil
}

func (u *quizSessionUsecase) Next(quizID string) (*entity.QuizSessionView, error) {
	session, err := u.lookup(quizID)
	if err != nil {
		return nil, err
	}
	session.Next()
	return session.view(), nil
}

func (u *quizSessionUsecase) Previous(quizID string) (*entity.QuizSessionView, error) {
	session, err := u.lookup(quizID)
	if err != nil {
		return nil, err
	}
	session.Previous()
	return session.view(), nil
}

func (u *quizSessionUsecase) Finish(ctx context.Context, quizID string) (*entity.QuizResult, error) {
	session, err := u.lookup(quizID)
	if err != nil {
		return nil, err
	}
	session.Finish()
	u.persistResult(ctx, session)
	return session.Score(), nil
}

// Result serves from the live session when one exists; once the session is
// gone the persisted record still answers, so result links outlive restarts.
func (u *quizSessionUsecase) Result(ctx context.Context, quizID string) (*entity.QuizResult, error) {
	session, err := u.lookup(quizID)
	if err != nil {
		return u.storedResult(quizID)
	}
	if session.Status() != SessionStatusFinished {
		return nil, fmt.Errorf("quiz session is still active")
	}
	return session.Score(), nil
}

func (u *quizSessionUsecase) storedResult(quizID string) (*entity.QuizResult, error) {
	if u.cfg.Results == nil {
		return nil, ErrQuizSessionNotFound
	}
	record, err := u.cfg.Results.FindResultByQuizID(u.cfg.DB, quizID)
	if err != nil {
		return nil, ErrQuizSessionNotFound
	}

	result := &entity.QuizResult{
		QuizID:         record.QuizID,
		CorrectCount:   record.CorrectCount,
		WrongCount:     record.WrongCount,
		BlankCount:     record.BlankCount,
		Total:          record.QuestionCount,
		Percentage:     record.Percentage,
		CompletionType: record.CompletionType,
	}
	if err := json.Unmarshal([]byte(record.Answers), &result.PerQuestion); err != nil {
		u.warn("decode persisted answers", err)
		result.PerQuestion = nil
	}
	return result, nil
}

// Abandon tears down the timer and discards the session without persisting
// anything; there is nothing to cancel beyond the ticker itself.
func (u *quizSessionUsecase) Abandon(quizID string) error {
	u.mu.Lock()
	session, ok := u.sessions[quizID]
	if ok {
		delete(u.sessions, quizID)
	}
	u.mu.Unlock()
	if !ok {
		return ErrQuizSessionNotFound
	}
	session.teardown()
	return nil
}

func (u *quizSessionUsecase) History(ctx context.Context, flowSessionID string) ([]entity.ResultHistoryItem, error) {
	records, err := u.cfg.Results.FindResultsByFlowSessionID(u.cfg.DB, flowSessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch result history: %w", err)
	}

	items := make([]entity.ResultHistoryItem, 0, len(records))
	for _, record := range records {
		items = append(items, entity.ResultHistoryItem{
			QuizID:         record.QuizID,
			CourseID:       record.CourseID,
			Difficulty:     record.Difficulty,
			QuestionCount:  record.QuestionCount,
			CorrectCount:   record.CorrectCount,
			Percentage:     record.Percentage,
			CompletionType: record.CompletionType,
			FinishedAt:     record.FinishedAt.Format(time.RFC3339),
		})
	}
	return items, nil
}

func (u *quizSessionUsecase) Shutdown() {
	u.mu.Lock()
	defer u.mu.Unlock()
	for id, session := range u.sessions {
		session.teardown()
		delete(u.sessions, id)
	}
}

// persistResult writes the history record, best effort. Scoring stays
// re-derivable from the session, so a storage failure only loses history.
func (u *quizSessionUsecase) persistResult(ctx context.Context, s *QuizSession) {
	if u.cfg.Results == nil {
		return
	}

	result := s.Score()
	record, err := mapper.ToResultRecord(s.flowSessionID, s.config, result)
	if err != nil {
		u.warn("encode result record", err)
		return
	}
	record.StartedAt = s.startedAt
	record.FinishedAt = s.finishedAt

	if err := u.cfg.Results.CreateResult(u.cfg.DB, record); err != nil {
		u.warn("persist result record", err)
	}
}

func (u *quizSessionUsecase) warn(op string, err error) {
	if u.cfg.Log != nil {
		u.cfg.Log.Warnf("quiz session: failed to %s: %v", op, err)
	}
}
