package repository

import (
	"github.com/mehdiozdemir/EduAI-sub002/internal/entity"
	"gorm.io/gorm"
)

type (
	ResultRepository interface {
		CreateResult(db *gorm.DB, record *entity.QuizResultRecord) error
		FindResultByQuizID(db *gorm.DB, quizID string) (*entity.QuizResultRecord, error)
		FindResultsByFlowSessionID(db *gorm.DB, flowSessionID string) ([]entity.QuizResultRecord, error)
	}

	resultRepository struct {
		db *gorm.DB
	}
)

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) CreateResult(db *gorm.DB, record *entity.QuizResultRecord) error {
	if db == nil {
		db = r.db
	}
	// A re-scored session must not produce a second row.
	return db.Where("quiz_id = ?", record.QuizID).FirstOrCreate(record).Error
}

func (r *resultRepository) FindResultByQuizID(db *gorm.DB, quizID string) (*entity.QuizResultRecord, error) {
	if db == nil {
		db = r.db
	}
	var record entity.QuizResultRecord
	err := db.Where("quiz_id = ?", quizID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *resultRepository) FindResultsByFlowSessionID(db *gorm.DB, flowSessionID string) ([]entity.QuizResultRecord, error) {
	if db == nil {
		db = r.db
	}
	var records []entity.QuizResultRecord
	err := db.Where("flow_session_id = ?", flowSessionID).Order("finished_at DESC").Find(&records).Error
	return records, err
}
