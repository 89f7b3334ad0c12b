package repository

import (
	"github.com/mehdiozdemir/EduAI-sub002/internal/entity"
	"gorm.io/gorm"
)

type (
	CourseRepository interface {
		// Education level operations
		FindAllLevels(db *gorm.DB) ([]entity.EducationLevel, error)
		FindLevelByLevelID(db *gorm.DB, levelID string) (*entity.EducationLevel, error)

		// Course operations
		FindAllCourses(db *gorm.DB, levelID string) ([]entity.Course, error)
		FindCourseByCourseID(db *gorm.DB, courseID string) (*entity.Course, error)

		// Topic operations
		FindTopicsByCourseID(db *gorm.DB, courseID string) ([]entity.Topic, error)
		FindTopicsByTopicIDs(db *gorm.DB, topicIDs []string) ([]entity.Topic, error)
	}

	courseRepository struct {
		db *gorm.DB
	}
)

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// Education level operations
func (r *courseRepository) FindAllLevels(db *gorm.DB) ([]entity.EducationLevel, error) {
	if db == nil {
		db = r.db
	}
	var levels []entity.EducationLevel
	err := db.Order("sort_order ASC").Find(&levels).Error
	return levels, err
}

func (r *courseRepository) FindLevelByLevelID(db *gorm.DB, levelID string) (*entity.EducationLevel, error) {
	if db == nil {
		db = r.db
	}
	var level entity.EducationLevel
	err := db.Where("level_id = ?", levelID).First(&level).Error
	if err != nil {
		return nil, err
	}
	return &level, nil
}

// Course operations
func (r *courseRepository) FindAllCourses(db *gorm.DB, levelID string) ([]entity.Course, error) {
	if db == nil {
		db = r.db
	}
	var courses []entity.Course
	query := db.Order("name ASC")
	if levelID != "" {
		query = query.Where("level_id = ?", levelID)
	}
	err := query.Find(&courses).Error
	return courses, err
}

func (r *courseRepository) FindCourseByCourseID(db *gorm.DB, courseID string) (*entity.Course, error) {
	if db == nil {
		db = r.db
	}
	var course entity.Course
	err := db.Where("course_id = ?", courseID).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Topic operations
func (r *courseRepository) FindTopicsByCourseID(db *gorm.DB, courseID string) ([]entity.Topic, error) {
	if db == nil {
		db = r.db
	}
	var topics []entity.Topic
	err := db.Where("course_id = ?", courseID).Order("sort_order ASC").Find(&topics).Error
	return topics, err
}

func (r *courseRepository) FindTopicsByTopicIDs(db *gorm.DB, topicIDs []string) ([]entity.Topic, error) {
	if db == nil {
		db = r.db
	}
	var topics []entity.Topic
	err := db.Where("topic_id IN ?", topicIDs).Order("sort_order ASC").Find(&topics).Error
	return topics, err
}
