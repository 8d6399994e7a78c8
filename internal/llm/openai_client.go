package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// difficultyLabels map the stored difficulty values to the wording used in
// prompts.
var difficultyLabels = map[string]string{
	"easy":         "entry-level (easy)",
	"intermediate": "mid-level (intermediate)",
	"advanced":     "senior-level (advanced)",
}

// Client talks to an OpenAI-compatible chat completion API. It implements
// both QuestionGenerator and AnswerScorer.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a provider client. baseURL may point at any
// OpenAI-compatible endpoint; an empty baseURL uses the default.
func NewClient(baseURL, apiKey, modelName string, timeout time.Duration) *Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if timeout > 0 {
		config.HTTPClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		api:   openai.NewClientWithConfig(config),
		model: modelName,
	}
}

// GenerateQuestions asks the provider for count interview questions on the
// topic. Questions listed in avoid are excluded so repeat sessions stay
// fresh.
func (c *Client) GenerateQuestions(ctx context.Context, topic, difficulty, questionType string, count int, avoid []string) ([]string, error) {
	label, ok := difficultyLabels[strings.ToLower(difficulty)]
	if !ok {
		label = difficultyLabels["intermediate"]
	}

	prompt := fmt.Sprintf(
		"Generate %d concise, clear, professional %s interview questions on the topic %q at the %s difficulty level. "+
			"Limit each question to 20 words. "+
			`Respond with a JSON object of the form {"questions": ["...", "..."]}.`,
		count, strings.ToLower(questionType), topic, label)
	if len(avoid) > 0 {
		prompt += fmt.Sprintf(" Do not repeat any of these previously asked questions: %s.", strings.Join(avoid, " | "))
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are an experienced technical interviewer."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("question generation call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("question generation returned no choices")
	}

	var parsed struct {
		Questions []string `json:"questions"`
	}
	raw := stripCodeFence(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("parse question generation response: %w", err)
	}

	questions := make([]string, 0, len(parsed.Questions))
	for _, q := range parsed.Questions {
		if s := strings.TrimSpace(q); s != "" {
			questions = append(questions, s)
		}
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("question generation returned no questions")
	}
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

// ScoreAnswer asks the provider to evaluate a single answer and returns the
// tagged parse result. A transport failure is returned as an error; an
// unparseable response is returned as an unparseable ScoreResult.
func (c *Client) ScoreAnswer(ctx context.Context, question, answer, topic, difficulty string) (ScoreResult, error) {
	prompt := fmt.Sprintf(
		"Evaluate this interview answer.\nTopic: %s\nDifficulty: %s\nQuestion: %s\nAnswer: %s\n\n"+
			`Respond with a JSON object: {"accuracy": <0-100>, "correct": <bool>, "explanation": "...", "strengths": ["..."], "improvements": ["..."]}. `+
			"Mark correct true only when accuracy is 70 or above.",
		topic, difficulty, question, answer)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a strict but fair technical interviewer grading answers."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.3,
	})
	if err != nil {
		return ScoreResult{}, fmt.Errorf("answer scoring call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return ScoreResult{}, fmt.Errorf("answer scoring returned no choices")
	}

	return ParseFeedback(resp.Choices[0].Message.Content), nil
}
