package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/entity"
	dbEntity "github.com/mehdiozdemir/EduAI-sub002/internal/entity"
	"gorm.io/gorm"
)

// fakeStore keeps serialized state per session/key, mirroring the real
// store's JSON round trip so corrupt-shape behavior is exercised too.
type fakeStore struct {
	data map[string][]byte

	saveCalls     int
	clearCalls    int
	clearAllCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (f *fakeStore) key(sessionID, key string) string {
	return sessionID + "/" + key
}

func (f *fakeStore) Save(_ context.Context, sessionID, key string, state any) {
	f.saveCalls++
	payload, err := json.Marshal(state)
	if err != nil {
		return
	}
	f.data[f.key(sessionID, key)] = payload
}

func (f *fakeStore) Load(_ context.Context, sessionID, key string, dest any) bool {
	payload, ok := f.data[f.key(sessionID, key)]
	if !ok {
		return false
	}
	return json.Unmarshal(payload, dest) == nil
}

func (f *fakeStore) Clear(_ context.Context, sessionID, key string) {
	f.clearCalls++
	delete(f.data, f.key(sessionID, key))
}

func (f *fakeStore) ClearAll(_ context.Context, sessionID string) {
	f.clearAllCalls++
	delete(f.data, f.key(sessionID, KeyTopicSelection))
	delete(f.data, f.key(sessionID, KeyQuizConfiguration))
}

func (f *fakeStore) has(sessionID, key string) bool {
	_, ok := f.data[f.key(sessionID, key)]
	return ok
}

func (f *fakeStore) put(sessionID, key string, state any) {
	payload, _ := json.Marshal(state)
	f.data[f.key(sessionID, key)] = payload
}

type fakeCourseRepo struct {
	levels  map[string]dbEntity.EducationLevel
	courses map[string]dbEntity.Course
	topics  []dbEntity.Topic

	courseErr error
	topicsErr error
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{
		levels:  make(map[string]dbEntity.EducationLevel),
		courses: make(map[string]dbEntity.Course),
	}
}

func (f *fakeCourseRepo) addCourse(courseID, name, levelID, levelName string) {
	f.courses[courseID] = dbEntity.Course{CourseID: courseID, Name: name, LevelID: levelID}
	f.levels[levelID] = dbEntity.EducationLevel{LevelID: levelID, Name: levelName}
}

func (f *fakeCourseRepo) FindAllLevels(_ *gorm.DB) ([]dbEntity.EducationLevel, error) {
	out := make([]dbEntity.EducationLevel, 0, len(f.levels))
	for _, l := range f.levels {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeCourseRepo) FindLevelByLevelID(_ *gorm.DB, levelID string) (*dbEntity.EducationLevel, error) {
	level, ok := f.levels[levelID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &level, nil
}

func (f *fakeCourseRepo) FindAllCourses(_ *gorm.DB, levelID string) ([]dbEntity.Course, error) {
	out := make([]dbEntity.Course, 0, len(f.courses))
	for _, c := range f.courses {
		if levelID == "" || c.LevelID == levelID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) FindCourseByCourseID(_ *gorm.DB, courseID string) (*dbEntity.Course, error) {
	if f.courseErr != nil {
		return nil, f.courseErr
	}
	course, ok := f.courses[courseID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &course, nil
}

func (f *fakeCourseRepo) FindTopicsByCourseID(_ *gorm.DB, courseID string) ([]dbEntity.Topic, error) {
	if f.topicsErr != nil {
		return nil, f.topicsErr
	}
	out := make([]dbEntity.Topic, 0)
	for _, t := range f.topics {
		if t.CourseID == courseID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) FindTopicsByTopicIDs(_ *gorm.DB, topicIDs []string) ([]dbEntity.Topic, error) {
	if f.topicsErr != nil {
		return nil, f.topicsErr
	}
	wanted := make(map[string]bool, len(topicIDs))
	for _, id := range topicIDs {
		wanted[id] = true
	}
	out := make([]dbEntity.Topic, 0)
	for _, t := range f.topics {
		if wanted[t.TopicID] {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeResultRepo struct {
	records    []*dbEntity.QuizResultRecord
	createErr  error
	createCall int
}

func (f *fakeResultRepo) CreateResult(_ *gorm.DB, record *dbEntity.QuizResultRecord) error {
	f.createCall++
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.records {
		if existing.QuizID == record.QuizID {
			return nil
		}
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeResultRepo) FindResultByQuizID(_ *gorm.DB, quizID string) (*dbEntity.QuizResultRecord, error) {
	for _, record := range f.records {
		if record.QuizID == quizID {
			return record, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeResultRepo) FindResultsByFlowSessionID(_ *gorm.DB, flowSessionID string) ([]dbEntity.QuizResultRecord, error) {
	out := make([]dbEntity.QuizResultRecord, 0)
	for _, record := range f.records {
		if record.FlowSessionID == flowSessionID {
			out = append(out, *record)
		}
	}
	return out, nil
}

type fakeGenerator struct {
	questions []entity.Question
	err       error
	calls     int

	lastConfig entity.QuizConfiguration
}

func (f *fakeGenerator) GenerateQuiz(_ context.Context, cfg entity.QuizConfiguration, _ []entity.Topic) ([]entity.Question, error) {
	f.calls++
	f.lastConfig = cfg
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

// makeQuestions builds n questions whose correct answer is always "A".
func makeQuestions(n int) []entity.Question {
	questions := make([]entity.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, entity.Question{
			Prompt: fmt.Sprintf("Soru %d", i+1),
			Options: []entity.Option{
				{Letter: "A", Text: "doğru"},
				{Letter: "B", Text: "yanlış"},
				{Letter: "C", Text: "yanlış"},
				{Letter: "D", Text: "yanlış"},
			},
			CorrectLetter: "A",
			TopicID:       "t-1",
		})
	}
	return questions
}
