package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedReq struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

func chatServer(t *testing.T, status int, body string, got *capturedReq) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if got != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func chatReply(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{{"message": map[string]any{"content": content}}},
	})
	return string(b)
}

func TestOpenAIAnswerQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns content verbatim", func(t *testing.T) {
		var got capturedReq
		srv := chatServer(t, http.StatusOK, chatReply("Paris."), &got)
		defer srv.Close()

		llm := NewOpenAI(srv.URL, "test-key", "gpt-3.5-turbo")
		answer := llm.AnswerQuestion(ctx, "Capital of France?", "Paris is the capital.", 0)

		assert.Equal(t, "Paris.", answer)
		assert.Equal(t, "gpt-3.5-turbo", got.Model)
		require.Len(t, got.Messages, 2)
		assert.Equal(t, "system", got.Messages[0].Role)
		assert.Contains(t, got.Messages[1].Content, "Question: Capital of France?")
		assert.Equal(t, 500, got.MaxTokens) // default
		assert.Equal(t, 0.7, got.Temperature)
	})

	t.Run("context truncated to 3000 characters", func(t *testing.T) {
		var got capturedReq
		srv := chatServer(t, http.StatusOK, chatReply("ok"), &got)
		defer srv.Close()

		llm := NewOpenAI(srv.URL, "test-key", "m")
		llm.AnswerQuestion(ctx, "q", strings.Repeat("x", 3500), 100)

		require.Len(t, got.Messages, 2)
		assert.Equal(t, 3000, strings.Count(got.Messages[1].Content, "x"))
	})

	t.Run("non-200 embeds status and body", func(t *testing.T) {
		srv := chatServer(t, http.StatusTeapot, "rate limited", nil)
		defer srv.Close()

		llm := NewOpenAI(srv.URL, "test-key", "m")
		answer := llm.AnswerQuestion(ctx, "q", "c", 0)

		assert.Contains(t, answer, "418")
		assert.Contains(t, answer, "rate limited")
	})

	t.Run("transport failure degrades to string", func(t *testing.T) {
		srv := chatServer(t, http.StatusOK, "", nil)
		srv.Close() // connection refused from here on

		llm := NewOpenAI(srv.URL, "test-key", "m")
		answer := llm.AnswerQuestion(ctx, "q", "c", 0)

		assert.Contains(t, answer, "Error generating answer:")
	})

	t.Run("malformed body degrades to string", func(t *testing.T) {
		srv := chatServer(t, http.StatusOK, "{not json", nil)
		defer srv.Close()

		llm := NewOpenAI(srv.URL, "test-key", "m")
		answer := llm.AnswerQuestion(ctx, "q", "c", 0)

		assert.Contains(t, answer, "Error generating answer:")
	})

	t.Run("trailing slash on base url", func(t *testing.T) {
		srv := chatServer(t, http.StatusOK, chatReply("ok"), nil)
		defer srv.Close()

		llm := NewOpenAI(srv.URL+"/", "test-key", "m")
		assert.Equal(t, "ok", llm.AnswerQuestion(ctx, "q", "c", 0))
	})
}

func TestOpenAIGenerateMCQs(t *testing.T) {
	ctx := context.Background()

	mcqJSON := `[{"question":"Q1","options":["a","b","c","d"],"correct":"B","difficulty":"medium","explanation":"why"}]`

	t.Run("parses fenced JSON reply", func(t *testing.T) {
		var got capturedReq
		srv := chatServer(t, http.StatusOK, chatReply("```json\n"+mcqJSON+"\n```"), &got)
		defer srv.Close()

		llm := NewOpenAI(srv.URL, "test-key", "m")
		mcqs := llm.GenerateMCQs(ctx, strings.Repeat("z", 2600), 3)

		require.Len(t, mcqs, 1)
		assert.Equal(t, "Q1", mcqs[0].Question)
		assert.Equal(t, "B", mcqs[0].Correct)
		assert.Equal(t, 1500, got.MaxTokens)
		assert.Equal(t, 0.8, got.Temperature)
		// content truncated to 2500 characters
		assert.Equal(t, 2500, strings.Count(got.Messages[1].Content, "z"))
	})

	t.Run("parses bare JSON reply", func(t *testing.T) {
		srv := chatServer(t, http.StatusOK, chatReply(mcqJSON), nil)
		defer srv.Close()

		llm := NewOpenAI(srv.URL, "test-key", "m")
		mcqs := llm.GenerateMCQs(ctx, "content", 1)
		require.Len(t, mcqs, 1)
		assert.Equal(t, "Q1", mcqs[0].Question)
	})

	t.Run("malformed generated JSON falls back", func(t *testing.T) {
		srv := chatServer(t, http.StatusOK, chatReply("sorry, no JSON today"), nil)
		defer srv.Close()

		llm := NewOpenAI(srv.URL, "test-key", "m")
		mcqs := llm.GenerateMCQs(ctx, "content", 5)

		require.Len(t, mcqs, 1)
		assert.Equal(t, "What is the main subject of this module?", mcqs[0].Question)
		assert.Len(t, mcqs[0].Options, 4)
		assert.Equal(t, "A", mcqs[0].Correct)
	})

	t.Run("non-200 falls back", func(t *testing.T) {
		srv := chatServer(t, http.StatusInternalServerError, "boom", nil)
		defer srv.Close()

		llm := NewOpenAI(srv.URL, "test-key", "m")
		mcqs := llm.GenerateMCQs(ctx, "content", 5)
		require.Len(t, mcqs, 1)
		assert.Equal(t, "A", mcqs[0].Correct)
	})

	t.Run("transport failure falls back", func(t *testing.T) {
		srv := chatServer(t, http.StatusOK, "", nil)
		srv.Close()

		llm := NewOpenAI(srv.URL, "test-key", "m")
		mcqs := llm.GenerateMCQs(ctx, "content", 5)
		require.Len(t, mcqs, 1)
	})
}
