package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/entity"
	dbEntity "github.com/mehdiozdemir/EduAI-sub002/internal/entity"
)

func testConfig(questionCount int) entity.QuizConfiguration {
	return entity.QuizConfiguration{
		CourseID:      "mat-5",
		TopicIDs:      []string{"mat-5-kesirler"},
		Difficulty:    entity.DifficultyMedium,
		QuestionCount: questionCount,
	}
}

func newTestUsecase(gen *fakeGenerator) (*quizSessionUsecase, *fakeCourseRepo, *fakeResultRepo, *fakeStore) {
	courses := newFakeCourseRepo()
	courses.addCourse("mat-5", "Matematik", "ilkokul", "İlkokul")
	courses.topics = []dbEntity.Topic{
		{TopicID: "mat-5-kesirler", CourseID: "mat-5", Name: "Kesirler"},
	}
	results := &fakeResultRepo{}
	store := newFakeStore()
	u := NewQuizSessionUsecase(QuizSessionConfig{
		Generator: gen,
		Courses:   courses,
		Results:   results,
		Store:     store,
	}).(*quizSessionUsecase)
	return u, courses, results, store
}

func mustGenerate(t *testing.T, u *quizSessionUsecase, cfg entity.QuizConfiguration) *entity.QuizSessionView {
	t.Helper()
	view, err := u.Generate(context.Background(), "flow-1", cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	t.Cleanup(u.Shutdown)
	return view
}

func TestGenerateInitializesTimerBudget(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(10)}
	u, _, _, _ := newTestUsecase(gen)

	view := mustGenerate(t, u, testConfig(10))

	if view.RemainingSeconds != 10*SecondsPerQuestion {
		t.Errorf("remaining = %d, want %d", view.RemainingSeconds, 10*SecondsPerQuestion)
	}
	if view.Status != SessionStatusActive {
		t.Errorf("status = %q, want %q", view.Status, SessionStatusActive)
	}
	if view.QuestionCount != 10 {
		t.Errorf("question count = %d, want 10", view.QuestionCount)
	}
}

func TestGenerateRejectsInvalidConfiguration(t *testing.T) {
	cases := []struct {
		name string
		cfg  entity.QuizConfiguration
	}{
		{"bad difficulty", entity.QuizConfiguration{CourseID: "mat-5", TopicIDs: []string{"t"}, Difficulty: "imkansız", QuestionCount: 10}},
		{"bad count", entity.QuizConfiguration{CourseID: "mat-5", TopicIDs: []string{"t"}, Difficulty: entity.DifficultyEasy, QuestionCount: 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &fakeGenerator{questions: makeQuestions(10)}
			u, _, _, _ := newTestUsecase(gen)
			if _, err := u.Generate(context.Background(), "flow-1", tc.cfg); err == nil {
				t.Fatal("expected error")
			}
			if gen.calls != 0 {
				t.Errorf("generator called %d times for invalid config", gen.calls)
			}
		})
	}
}

func TestGenerateFailureCreatesNoSession(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream down")}
	u, _, _, _ := newTestUsecase(gen)

	_, err := u.Generate(context.Background(), "flow-1", testConfig(5))
	if err == nil {
		t.Fatal("expected error")
	}
	u.mu.Lock()
	n := len(u.sessions)
	u.mu.Unlock()
	if n != 0 {
		t.Errorf("sessions registered = %d, want 0", n)
	}
}

func TestGenerateClearsStoredConfiguration(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(5)}
	u, _, _, store := newTestUsecase(gen)
	store.put("flow-1", KeyQuizConfiguration, map[string]string{"any": "state"})

	mustGenerate(t, u, testConfig(5))

	if store.has("flow-1", KeyQuizConfiguration) {
		t.Error("stored configuration should be cleared on quiz entry")
	}
}

func TestScoreQuizCountsBlanksWrongsAndCorrects(t *testing.T) {
	questions := makeQuestions(5)
	answers := map[int]string{0: "A", 1: "B"}

	result := ScoreQuiz(questions, answers)

	if result.CorrectCount != 1 || result.WrongCount != 1 || result.BlankCount != 3 {
		t.Errorf("counts = %d/%d/%d, want 1/1/3",
			result.CorrectCount, result.WrongCount, result.BlankCount)
	}
	if result.Percentage != 20 {
		t.Errorf("percentage = %d, want 20", result.Percentage)
	}
	if len(result.PerQuestion) != 5 {
		t.Fatalf("per-question entries = %d, want 5", len(result.PerQuestion))
	}
	if !result.PerQuestion[0].IsCorrect || result.PerQuestion[0].IsBlank {
		t.Error("question 0 should be correct")
	}
	if result.PerQuestion[1].IsCorrect || result.PerQuestion[1].IsBlank {
		t.Error("question 1 should be wrong")
	}
	if !result.PerQuestion[4].IsBlank {
		t.Error("question 4 should be blank")
	}
}

func TestScoreQuizTreatsEmptyAnswerAsBlank(t *testing.T) {
	result := ScoreQuiz(makeQuestions(2), map[int]string{0: ""})
	if result.BlankCount != 2 {
		t.Errorf("blank = %d, want 2", result.BlankCount)
	}
}

func TestScoreQuizRoundsPercentage(t *testing.T) {
	// 1 of 3 correct rounds 33.33 down to 33.
	result := ScoreQuiz(makeQuestions(3), map[int]string{0: "A"})
	if result.Percentage != 33 {
		t.Errorf("percentage = %d, want 33", result.Percentage)
	}
	// 2 of 3 correct rounds 66.67 up to 67.
	result = ScoreQuiz(makeQuestions(3), map[int]string{0: "A", 1: "A"})
	if result.Percentage != 67 {
		t.Errorf("percentage = %d, want 67", result.Percentage)
	}
}

func TestTickCountsDownToTimeout(t *testing.T) {
	session := newQuizSession("flow-1", testConfig(5), makeQuestions(5))
	budget := 5 * SecondsPerQuestion

	for i := 0; i < budget-1; i++ {
		if session.Tick() {
			t.Fatalf("finished early at tick %d", i+1)
		}
	}
	if !session.Tick() {
		t.Fatal("final tick should finish the session")
	}
	if session.Status() != SessionStatusFinished {
		t.Errorf("status = %q, want finished", session.Status())
	}

	result := session.Score()
	if result.CompletionType != CompletionTimeout {
		t.Errorf("completion = %q, want timeout", result.CompletionType)
	}
	if result.BlankCount != 5 {
		t.Errorf("blank = %d, want 5: timeout keeps unanswered questions blank", result.BlankCount)
	}
}

func TestTickAfterFinishIsNoOp(t *testing.T) {
	session := newQuizSession("flow-1", testConfig(5), makeQuestions(5))
	session.Finish()

	if !session.Tick() {
		t.Error("tick on a finished session should report finished")
	}
	if session.Score().CompletionType != CompletionSubmitted {
		t.Error("late tick must not overwrite the submitted completion type")
	}
}

func TestSelectAnswerAfterFinishIsRejected(t *testing.T) {
	session := newQuizSession("flow-1", testConfig(5), makeQuestions(5))
	session.SelectAnswer(0, "A")
	session.Finish()

	if session.SelectAnswer(1, "B") {
		t.Error("answer after finish should be dropped")
	}
	result := session.Score()
	if result.CorrectCount != 1 || result.BlankCount != 4 {
		t.Errorf("counts = %d correct / %d blank, want 1/4",
			result.CorrectCount, result.BlankCount)
	}
}

func TestSelectAnswerOverwrites(t *testing.T) {
	session := newQuizSession("flow-1", testConfig(5), makeQuestions(5))
	session.SelectAnswer(0, "B")
	session.SelectAnswer(0, "A")

	if got := session.Score().CorrectCount; got != 1 {
		t.Errorf("correct = %d, want 1 after overwrite", got)
	}
}

func TestSelectAnswerRejectsOutOfRange(t *testing.T) {
	session := newQuizSession("flow-1", testConfig(5), makeQuestions(5))
	if session.SelectAnswer(-1, "A") {
		t.Error("negative index accepted")
	}
	if session.SelectAnswer(5, "A") {
		t.Error("index past the last question accepted")
	}
}

func TestNavigationClampsAtBoundaries(t *testing.T) {
	session := newQuizSession("flow-1", testConfig(5), makeQuestions(3))

	session.Previous()
	if got := session.view().CurrentIndex; got != 0 {
		t.Errorf("index = %d after Previous at start, want 0", got)
	}

	for i := 0; i < 10; i++ {
		session.Next()
	}
	if got := session.view().CurrentIndex; got != 2 {
		t.Errorf("index = %d after repeated Next, want 2", got)
	}

	session.Previous()
	if got := session.view().CurrentIndex; got != 1 {
		t.Errorf("index = %d, want 1", got)
	}
}

func TestViewHidesCorrectLetters(t *testing.T) {
	session := newQuizSession("flow-1", testConfig(5), makeQuestions(5))
	view := session.view()

	for i, q := range view.Questions {
		if q.CorrectLetter != "" {
			t.Errorf("question %d leaks the correct letter", i)
		}
		if q.Explanation != "" {
			t.Errorf("question %d leaks the explanation", i)
		}
	}
}

func TestFinishPersistsResultRecord(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(5)}
	u, _, results, _ := newTestUsecase(gen)
	view := mustGenerate(t, u, testConfig(5))

	if _, err := u.SelectAnswer(view.QuizID, entity.SelectAnswerRequest{QuestionIndex: 0, OptionLetter: "A"}); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	result, err := u.Finish(context.Background(), view.QuizID)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if result.CompletionType != CompletionSubmitted {
		t.Errorf("completion = %q, want submitted", result.CompletionType)
	}

	if len(results.records) != 1 {
		t.Fatalf("persisted records = %d, want 1", len(results.records))
	}
	record := results.records[0]
	if record.QuizID != view.QuizID || record.FlowSessionID != "flow-1" {
		t.Errorf("record identity = %s/%s", record.QuizID, record.FlowSessionID)
	}
	if record.CorrectCount != 1 || record.Percentage != 20 {
		t.Errorf("record score = %d correct, %d%%, want 1, 20%%", record.CorrectCount, record.Percentage)
	}
}

func TestFinishSurvivesPersistenceFailure(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(5)}
	u, _, results, _ := newTestUsecase(gen)
	results.createErr = errors.New("db down")
	view := mustGenerate(t, u, testConfig(5))

	result, err := u.Finish(context.Background(), view.QuizID)
	if err != nil {
		t.Fatalf("Finish should not fail on persistence error: %v", err)
	}
	if result.Total != 5 {
		t.Errorf("total = %d, want 5", result.Total)
	}
}

func TestResultRequiresFinishedSession(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(5)}
	u, _, _, _ := newTestUsecase(gen)
	view := mustGenerate(t, u, testConfig(5))

	if _, err := u.Result(context.Background(), view.QuizID); err == nil {
		t.Error("result of an active session should be an error")
	}

	if _, err := u.Finish(context.Background(), view.QuizID); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if _, err := u.Result(context.Background(), view.QuizID); err != nil {
		t.Errorf("result after finish: %v", err)
	}
}

func TestResultSurvivesSessionTeardown(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(5)}
	u, _, _, _ := newTestUsecase(gen)
	view := mustGenerate(t, u, testConfig(5))

	if _, err := u.SelectAnswer(view.QuizID, entity.SelectAnswerRequest{QuestionIndex: 0, OptionLetter: "A"}); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	if _, err := u.Finish(context.Background(), view.QuizID); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	u.Shutdown()

	result, err := u.Result(context.Background(), view.QuizID)
	if err != nil {
		t.Fatalf("Result after shutdown: %v", err)
	}
	if result.CorrectCount != 1 || result.Percentage != 20 {
		t.Errorf("stored result = %+v", result)
	}
	if len(result.PerQuestion) != 5 {
		t.Errorf("per-question entries = %d, want 5", len(result.PerQuestion))
	}
}

func TestResultOfUnknownQuizIsNotFound(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(5)}
	u, _, _, _ := newTestUsecase(gen)

	if _, err := u.Result(context.Background(), "yok"); !errors.Is(err, ErrQuizSessionNotFound) {
		t.Errorf("err = %v, want ErrQuizSessionNotFound", err)
	}
}

func TestAnswerOnFinishedSessionReturnsErrQuizFinished(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(5)}
	u, _, _, _ := newTestUsecase(gen)
	view := mustGenerate(t, u, testConfig(5))

	if _, err := u.Finish(context.Background(), view.QuizID); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	_, err := u.SelectAnswer(view.QuizID, entity.SelectAnswerRequest{QuestionIndex: 0, OptionLetter: "A"})
	if !errors.Is(err, ErrQuizFinished) {
		t.Errorf("err = %v, want ErrQuizFinished", err)
	}
}

func TestUnknownQuizIDReturnsNotFound(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(5)}
	u, _, _, _ := newTestUsecase(gen)

	if _, err := u.GetSession("yok-boyle-bir-sinav"); !errors.Is(err, ErrQuizSessionNotFound) {
		t.Errorf("err = %v, want ErrQuizSessionNotFound", err)
	}
}

func TestAbandonDiscardsSession(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(5)}
	u, _, results, _ := newTestUsecase(gen)
	view := mustGenerate(t, u, testConfig(5))

	if err := u.Abandon(view.QuizID); err != nil {
		t.Fatalf("Abandon: %v", err)
	}
	if _, err := u.GetSession(view.QuizID); !errors.Is(err, ErrQuizSessionNotFound) {
		t.Errorf("err = %v, want ErrQuizSessionNotFound", err)
	}
	if len(results.records) != 0 {
		t.Error("abandon must not persist a result")
	}
	if err := u.Abandon(view.QuizID); !errors.Is(err, ErrQuizSessionNotFound) {
		t.Errorf("second abandon err = %v, want ErrQuizSessionNotFound", err)
	}
}

func TestHistoryReturnsPersistedResults(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(5)}
	u, _, _, _ := newTestUsecase(gen)
	view := mustGenerate(t, u, testConfig(5))

	if _, err := u.Finish(context.Background(), view.QuizID); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	items, err := u.History(context.Background(), "flow-1")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].QuizID != view.QuizID || items[0].CourseID != "mat-5" {
		t.Errorf("item = %+v", items[0])
	}
}
