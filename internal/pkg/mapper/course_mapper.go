package mapper

import (
	"encoding/json"

	apiEntity "github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/entity"
	dbEntity "github.com/mehdiozdemir/EduAI-sub002/internal/entity"
)

func ToLevel(level *dbEntity.EducationLevel) apiEntity.EducationLevel {
	return apiEntity.EducationLevel{
		ID:          level.LevelID,
		Name:        level.Name,
		Description: level.Description,
	}
}

func ToCourse(course *dbEntity.Course) apiEntity.Course {
	return apiEntity.Course{
		ID:          course.CourseID,
		Name:        course.Name,
		Description: course.Description,
		LevelID:     course.LevelID,
	}
}

func ToTopic(topic *dbEntity.Topic) apiEntity.Topic {
	return apiEntity.Topic{
		ID:               topic.TopicID,
		Name:             topic.Name,
		DifficultyLevel:  topic.DifficultyLevel,
		EstimatedMinutes: topic.EstimatedMinutes,
	}
}

func ToTopics(topics []dbEntity.Topic) []apiEntity.Topic {
	out := make([]apiEntity.Topic, 0, len(topics))
	for i := range topics {
		out = append(out, ToTopic(&topics[i]))
	}
	return out
}

// ToResultRecord flattens a scored session into its persisted form. Topic
// ids and per-question records go in as JSON text columns.
func ToResultRecord(flowSessionID string, cfg apiEntity.QuizConfiguration, result *apiEntity.QuizResult) (*dbEntity.QuizResultRecord, error) {
	topicIDs, err := json.Marshal(cfg.TopicIDs)
	if err != nil {
		return nil, err
	}
	answers, err := json.Marshal(result.PerQuestion)
	if err != nil {
		return nil, err
	}

	return &dbEntity.QuizResultRecord{
		QuizID:         result.QuizID,
		FlowSessionID:  flowSessionID,
		CourseID:       cfg.CourseID,
		TopicIDs:       string(topicIDs),
		Difficulty:     string(cfg.Difficulty),
		QuestionCount:  result.Total,
		CorrectCount:   result.CorrectCount,
		WrongCount:     result.WrongCount,
		BlankCount:     result.BlankCount,
		Percentage:     result.Percentage,
		CompletionType: result.CompletionType,
		Answers:        string(answers),
	}, nil
}
