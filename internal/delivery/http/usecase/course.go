package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/entity"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/repository"
	"github.com/mehdiozdemir/EduAI-sub002/internal/pkg/mapper"
	"gorm.io/gorm"
)

var ErrCourseNotFound = errors.New("course not found")

type CourseUsecase interface {
	ListLevels(ctx context.Context) ([]entity.EducationLevel, error)
	ListCourses(ctx context.Context, levelID string) ([]entity.Course, error)
	GetCourse(ctx context.Context, courseID string) (*entity.Course, error)
	GetCourseTopics(ctx context.Context, courseID string) ([]entity.Topic, error)
}

type CourseConfig struct {
	DB         *gorm.DB
	Repository repository.CourseRepository
}

type courseUsecase struct {
	cfg CourseConfig
}

func NewCourseUsecase(cfg CourseConfig) CourseUsecase {
	return &courseUsecase{cfg: cfg}
}

func (u *courseUsecase) ListLevels(ctx context.Context) ([]entity.EducationLevel, error) {
	levels, err := u.cfg.Repository.FindAllLevels(u.cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch education levels: %w", err)
	}
	out := make([]entity.EducationLevel, 0, len(levels))
	for i := range levels {
		out = append(out, mapper.ToLevel(&levels[i]))
	}
	return out, nil
}

func (u *courseUsecase) ListCourses(ctx context.Context, levelID string) ([]entity.Course, error) {
	courses, err := u.cfg.Repository.FindAllCourses(u.cfg.DB, levelID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}
	out := make([]entity.Course, 0, len(courses))
	for i := range courses {
		out = append(out, mapper.ToCourse(&courses[i]))
	}
	return out, nil
}

func (u *courseUsecase) GetCourse(ctx context.Context, courseID string) (*entity.Course, error) {
	course, err := u.cfg.Repository.FindCourseByCourseID(u.cfg.DB, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to fetch course: %w", err)
	}
	mapped := mapper.ToCourse(course)
	return &mapped, nil
}

// GetCourseTopics returns the course's topics in catalog order.
func (u *courseUsecase) GetCourseTopics(ctx context.Context, courseID string) ([]entity.Topic, error) {
	if _, err := u.GetCourse(ctx, courseID); err != nil {
		return nil, err
	}
	topics, err := u.cfg.Repository.FindTopicsByCourseID(u.cfg.DB, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch topics: %w", err)
	}
	return mapper.ToTopics(topics), nil
}
