// pkg/ai/client.go

package ai

import (
	"context"

	"eduassist/entities"
)

// Client resolves questions and generates quizzes against a body of
// reference text. Implementations are total: every failure degrades to
// a descriptive answer string or a fallback MCQ list, never an error.
type Client interface {
	AnswerQuestion(ctx context.Context, question, content string, maxTokens int) string
	GenerateMCQs(ctx context.Context, content string, count int) []entities.MCQ
}
