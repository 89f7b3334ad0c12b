package entity

// Step-scoped navigation state. These shapes arrive from the request
// payload, the durable state store, or fallback reconstruction, and all
// three go through the same structural checks. A shape that fails its
// check is treated as absent, never as an error.

// TopicSelectionState is the prerequisite for the topic selection step.
type TopicSelectionState struct {
	Course         Course         `json:"course"`
	EducationLevel EducationLevel `json:"education_level"`
}

// QuizConfigurationState is the prerequisite for the configuration step:
// the topic selection plus a non-empty ordered set of selected topics.
type QuizConfigurationState struct {
	TopicSelectionState
	SelectedTopics []Topic `json:"selected_topics"`
}

func (s *TopicSelectionState) Valid() bool {
	if s == nil {
		return false
	}
	if s.Course.ID == "" || s.Course.Name == "" {
		return false
	}
	return s.EducationLevel.ID != "" && s.EducationLevel.Name != ""
}

func (s *QuizConfigurationState) Valid() bool {
	if s == nil || !s.TopicSelectionState.Valid() {
		return false
	}
	if len(s.SelectedTopics) == 0 {
		return false
	}
	for _, t := range s.SelectedTopics {
		if t.ID == "" || t.Name == "" {
			return false
		}
	}
	return true
}

// Back-navigation from configuration to topic selection keeps the course
// and level but drops the selection (a selection is not required going
// backward).
func (s *QuizConfigurationState) ToTopicSelection() TopicSelectionState {
	return s.TopicSelectionState
}
