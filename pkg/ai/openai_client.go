// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"eduassist/entities"
)

const (
	answerContextLimit = 3000
	quizContentLimit   = 2500

	answerTimeout = 30 * time.Second
	quizTimeout   = 45 * time.Second
)

type openAI struct {
	baseURL string
	key     string
	model   string
}

func NewOpenAI(baseURL, key, model string) Client {
	return &openAI{baseURL: baseURL, key: key, model: model}
}

type chatReq struct {
	Model       string              `json:"model"`
	Messages    []map[string]string `json:"messages"`
	MaxTokens   int                 `json:"max_tokens"`
	Temperature float64             `json:"temperature"`
}

func (c *openAI) AnswerQuestion(ctx context.Context, question, content string, maxTokens int) string {
	if maxTokens <= 0 {
		maxTokens = 500
	}
	// Truncate context to avoid token limits. Hard character cut.
	if len(content) > answerContextLimit {
		content = content[:answerContextLimit]
	}

	reqBody := chatReq{
		Model: c.model,
		Messages: []map[string]string{
			{"role": "system", "content": "You are an expert educational assistant. Answer based on the provided context. If the answer is not found in the context, say so."},
			{"role": "user", "content": fmt.Sprintf("Module Content:\n%s\n\nQuestion: %s", content, question)},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.7,
	}

	status, body, err := c.post(ctx, reqBody, answerTimeout)
	if err != nil {
		return fmt.Sprintf("Error generating answer: %v", err)
	}
	if status != http.StatusOK {
		return fmt.Sprintf("Error from OpenAI API: %d - %s", status, body)
	}
	text, err := chatContent(body)
	if err != nil {
		return fmt.Sprintf("Error generating answer: %v", err)
	}
	return text
}

func (c *openAI) GenerateMCQs(ctx context.Context, content string, count int) []entities.MCQ {
	if count <= 0 {
		count = 5
	}
	if len(content) > quizContentLimit {
		content = content[:quizContentLimit]
	}

	reqBody := chatReq{
		Model: c.model,
		Messages: []map[string]string{
			{"role": "system", "content": "You are a quiz generator. Return only JSON."},
			{"role": "user", "content": fmt.Sprintf("Content:\n%s\n\nTask: Generate %d MCQs with 'question','options','correct','difficulty','explanation'. Return only JSON list.", content, count)},
		},
		MaxTokens:   1500,
		Temperature: 0.8,
	}

	status, body, err := c.post(ctx, reqBody, quizTimeout)
	if err != nil || status != http.StatusOK {
		return fallbackMCQs()
	}
	text, err := chatContent(body)
	if err != nil {
		return fallbackMCQs()
	}

	var mcqs []entities.MCQ
	if err := json.Unmarshal([]byte(unwrapFence(text)), &mcqs); err != nil || len(mcqs) == 0 {
		return fallbackMCQs()
	}
	return mcqs
}

// post sends one chat-completions request and returns the raw status and body.
func (c *openAI) post(ctx context.Context, reqBody chatReq, timeout time.Duration) (int, []byte, error) {
	b, _ := json.Marshal(reqBody)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.baseURL, "/")+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

func chatContent(body []byte) (string, error) {
	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return out.Choices[0].Message.Content, nil
}

func fallbackMCQs() []entities.MCQ {
	return []entities.MCQ{{
		Question:    "What is the main subject of this module?",
		Options:     []string{"The uploaded document", "Unrelated trivia", "Random numbers", "None of these"},
		Correct:     "A",
		Difficulty:  "easy",
		Explanation: "Quiz generation was unavailable, so a generic question was returned.",
	}}
}
