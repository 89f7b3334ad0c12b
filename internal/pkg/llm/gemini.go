package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/entity"
	openai "github.com/sashabaranov/go-openai"
)

// GeminiClient talks to a Gemini deployment through its OpenAI-compatible
// endpoint and turns a quiz configuration into a question set.
type GeminiClient struct {
	APIKey  string
	BaseURL string
	Model   string
	client  *openai.Client
}

func NewGeminiClient(apiKey string, model string, baseURL string) *GeminiClient {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &GeminiClient{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: baseURL,
		client:  openai.NewClientWithConfig(config),
	}
}

type generatedOptionJSON struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

type generatedQuestionJSON struct {
	Prompt        string                `json:"prompt"`
	Options       []generatedOptionJSON `json:"options"`
	CorrectLetter string                `json:"correctLetter"`
	Explanation   string                `json:"explanation"`
	TopicID       string                `json:"topicId"`
}

type generatedQuizJSON struct {
	Status    string                  `json:"status"`
	Error     string                  `json:"error"`
	Questions []generatedQuestionJSON `json:"questions"`
}

// GenerateQuiz asks the model for the full question set in one call. An
// explicit non-success status in the payload is an error; no partial quiz
// is ever returned.
func (c *GeminiClient) GenerateQuiz(ctx context.Context, cfg entity.QuizConfiguration, topics []entity.Topic) ([]entity.Question, error) {
	if c.client == nil {
		return nil, fmt.Errorf("client not initialized")
	}

	prompt := buildQuizPrompt(cfg, topics)
	text, err := c.generateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return parseQuizPayload(text, cfg.QuestionCount)
}

// parseQuizPayload turns the model's raw output into exactly want
// questions. Malformed entries are skipped; too few usable questions is an
// error, never a partial quiz.
func parseQuizPayload(text string, want int) ([]entity.Question, error) {
	clean := stripCodeFences(text)

	var parsed generatedQuizJSON
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return nil, fmt.Errorf("AI output is not valid json: %w", err)
	}
	if parsed.Status != "" && parsed.Status != "success" {
		if parsed.Error != "" {
			return nil, fmt.Errorf("generator refused: %s", parsed.Error)
		}
		return nil, fmt.Errorf("generator returned status %q", parsed.Status)
	}
	if len(parsed.Questions) == 0 {
		return nil, fmt.Errorf("AI returned no questions")
	}

	questions := make([]entity.Question, 0, len(parsed.Questions))
	for _, q := range parsed.Questions {
		if q.Prompt == "" || len(q.Options) < 2 || q.CorrectLetter == "" {
			continue // skip malformed entries, keep the rest
		}
		options := make([]entity.Option, 0, len(q.Options))
		correctSeen := false
		for i, opt := range q.Options {
			letter := strings.ToUpper(strings.TrimSpace(opt.Letter))
			if letter == "" {
				letter = string(rune('A' + i))
			}
			if letter == strings.ToUpper(q.CorrectLetter) {
				correctSeen = true
			}
			options = append(options, entity.Option{Letter: letter, Text: opt.Text})
		}
		if !correctSeen {
			continue
		}
		questions = append(questions, entity.Question{
			Prompt:        q.Prompt,
			Options:       options,
			CorrectLetter: strings.ToUpper(q.CorrectLetter),
			Explanation:   q.Explanation,
			TopicID:       q.TopicID,
		})
	}

	if len(questions) < want {
		return nil, fmt.Errorf("generator produced %d usable questions, need %d", len(questions), want)
	}

	return questions[:want], nil
}

func (c *GeminiClient) generateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.Model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.4,
			TopP:        0.95,
			MaxTokens:   2048 * 4,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("gemini returned no choices")
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("gemini returned empty response")
	}

	return text, nil
}

// Some models wrap JSON in markdown fences even when asked not to.
func stripCodeFences(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

func buildQuizPrompt(cfg entity.QuizConfiguration, topics []entity.Topic) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are generating a multiple-choice quiz in TURKISH for secondary-school students.

Course id: %s
Difficulty: %s (kolay=easy, orta=medium, zor=hard)
Question count: %d

Topics (use each topic's id in the "topicId" field):
`, cfg.CourseID, cfg.Difficulty, cfg.QuestionCount)

	for _, t := range topics {
		fmt.Fprintf(&b, "- id=%s name=%s\n", t.ID, t.Name)
	}

	fmt.Fprintf(&b, `
Rules:
1. Write EXACTLY %d questions, all in Turkish, distributed across the topics.
2. Each question has 4 options lettered A, B, C, D with UNIQUE texts.
3. Include a short Turkish explanation of the correct answer.
4. Match the requested difficulty.

IMPORTANT: Return ONLY valid JSON, NO markdown, NO code blocks.
JSON format:
{"status":"success","questions":[{"prompt":"...","options":[{"letter":"A","text":"..."},{"letter":"B","text":"..."},{"letter":"C","text":"..."},{"letter":"D","text":"..."}],"correctLetter":"B","explanation":"...","topicId":"..."}]}
If you cannot produce the quiz, return {"status":"error","error":"reason"}.`, cfg.QuestionCount)

	return b.String()
}
