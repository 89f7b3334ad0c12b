package entity

type Difficulty string

const (
	DifficultyEasy   Difficulty = "kolay"
	DifficultyMedium Difficulty = "orta"
	DifficultyHard   Difficulty = "zor"
)

// AllowedQuestionCounts are the only counts the configuration step offers.
var AllowedQuestionCounts = []int{5, 10, 15, 20}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type EducationLevel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LevelID     string `json:"level_id,omitempty"`
}

type Topic struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DifficultyLevel  int    `json:"difficulty_level,omitempty"`
	EstimatedMinutes int    `json:"estimated_minutes,omitempty"`
}

// QuizConfiguration is what the generation step actually submits. Both
// difficulty and question count are mandatory.
type QuizConfiguration struct {
	CourseID      string     `json:"course_id" validate:"required"`
	TopicIDs      []string   `json:"topic_ids" validate:"required,min=1,dive,required"`
	Difficulty    Difficulty `json:"difficulty" validate:"required"`
	QuestionCount int        `json:"question_count" validate:"required"`
}

// Check covers the domain rules the struct tags cannot express.
func (c *QuizConfiguration) Check() string {
	if c == nil {
		return "yapılandırma eksik"
	}
	if !c.Difficulty.Valid() {
		return "zorluk seviyesi kolay, orta veya zor olmalı"
	}
	for _, n := range AllowedQuestionCounts {
		if c.QuestionCount == n {
			return ""
		}
	}
	return "soru sayısı 5, 10, 15 veya 20 olmalı"
}

type Option struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// Question is immutable once generated.
type Question struct {
	Prompt        string   `json:"prompt"`
	Options       []Option `json:"options"`
	CorrectLetter string   `json:"correct_letter,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
	TopicID       string   `json:"topic_id,omitempty"`
}

// PerQuestionResult pairs a user's answer (empty = blank) with the outcome.
type PerQuestionResult struct {
	Index         int    `json:"index"`
	UserAnswer    string `json:"user_answer,omitempty"`
	CorrectLetter string `json:"correct_letter"`
	IsCorrect     bool   `json:"is_correct"`
	IsBlank       bool   `json:"is_blank"`
}

// QuizResult is derived on demand from a session's answers; it is never the
// source of truth.
type QuizResult struct {
	QuizID         string              `json:"quiz_id,omitempty"`
	CorrectCount   int                 `json:"correct_count"`
	WrongCount     int                 `json:"wrong_count"`
	BlankCount     int                 `json:"blank_count"`
	Total          int                 `json:"total"`
	Percentage     int                 `json:"percentage"`
	CompletionType string              `json:"completion_type,omitempty"` // submitted, timeout
	PerQuestion    []PerQuestionResult `json:"per_question"`
}

// QuizSessionView is the client-facing snapshot of a running session. The
// correct letters never travel in it.
type QuizSessionView struct {
	QuizID           string     `json:"quiz_id"`
	Status           string     `json:"status"`
	CurrentIndex     int        `json:"current_index"`
	QuestionCount    int        `json:"question_count"`
	RemainingSeconds int        `json:"remaining_seconds"`
	Answers          map[int]string `json:"answers"`
	Questions        []Question `json:"questions"`
}

type SelectAnswerRequest struct {
	QuestionIndex int    `json:"question_index" validate:"min=0"`
	OptionLetter  string `json:"option_letter" validate:"required,len=1"`
}

type ResultHistoryItem struct {
	QuizID         string `json:"quiz_id"`
	CourseID       string `json:"course_id"`
	Difficulty     string `json:"difficulty"`
	QuestionCount  int    `json:"question_count"`
	CorrectCount   int    `json:"correct_count"`
	Percentage     int    `json:"percentage"`
	CompletionType string `json:"completion_type"`
	FinishedAt     string `json:"finished_at"`
}
