package database

import (
	"github.com/mehdiozdemir/EduAI-sub002/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.EducationLevel{},
		&entity.Course{},
		&entity.Topic{},
		&entity.QuizResultRecord{},
	)
}
