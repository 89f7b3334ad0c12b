package entity

import (
	"time"

	"gorm.io/gorm"
)

// EducationLevel - Kademe (ilkokul, ortaokul, lise)
type EducationLevel struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	LevelID     string         `gorm:"uniqueIndex;size:50;not null" json:"level_id"` // e.g. "ilkokul"
	Name        string         `gorm:"size:100;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (EducationLevel) TableName() string {
	return "education_levels"
}

// Course - Ders (Matematik, Fen Bilimleri, ...)
type Course struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CourseID    string         `gorm:"uniqueIndex;size:50;not null" json:"course_id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	LevelID     string         `gorm:"size:50;not null;index" json:"level_id"` // FK to education_levels
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// Topic - Konu; belongs to exactly one course
type Topic struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	TopicID          string         `gorm:"uniqueIndex;size:50;not null" json:"topic_id"`
	CourseID         string         `gorm:"size:50;not null;index" json:"course_id"`
	Name             string         `gorm:"size:150;not null" json:"name"`
	DifficultyLevel  int            `gorm:"not null;default:1" json:"difficulty_level"` // ordinal 1-3
	EstimatedMinutes int            `gorm:"default:0" json:"estimated_minutes"`         // 0 = unknown
	SortOrder        int            `gorm:"default:0" json:"sort_order"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Topic) TableName() string {
	return "topics"
}

// QuizResultRecord - Tamamlanan sınavın kalıcı kaydı (history/detail view)
type QuizResultRecord struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	QuizID         string         `gorm:"uniqueIndex;size:100;not null" json:"quiz_id"`
	FlowSessionID  string         `gorm:"size:100;not null;index" json:"flow_session_id"`
	CourseID       string         `gorm:"size:50;not null;index" json:"course_id"`
	TopicIDs       string         `gorm:"type:text;not null" json:"topic_ids"` // JSON array of topic ids
	Difficulty     string         `gorm:"size:20;not null" json:"difficulty"`  // kolay, orta, zor
	QuestionCount  int            `gorm:"not null" json:"question_count"`
	CorrectCount   int            `gorm:"not null" json:"correct_count"`
	WrongCount     int            `gorm:"not null" json:"wrong_count"`
	BlankCount     int            `gorm:"not null" json:"blank_count"`
	Percentage     int            `gorm:"not null" json:"percentage"`
	CompletionType string         `gorm:"size:20;not null" json:"completion_type"` // submitted, timeout
	StartedAt      time.Time      `json:"started_at"`
	FinishedAt     time.Time      `json:"finished_at"`
	Answers        string         `gorm:"type:text" json:"answers"` // JSON array of per-question records
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (QuizResultRecord) TableName() string {
	return "quiz_result_records"
}
