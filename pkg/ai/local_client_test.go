package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalAnswerQuestion(t *testing.T) {
	llm := NewLocal()
	ctx := context.Background()

	t.Run("no content", func(t *testing.T) {
		got := llm.AnswerQuestion(ctx, "What is this?", "   \n\n  \n", 500)
		assert.Equal(t, "I couldn't find any content in this module to search.", got)
	})

	t.Run("punctuation-only question", func(t *testing.T) {
		got := llm.AnswerQuestion(ctx, "??? !!!", "Some real paragraph here.", 500)
		assert.Equal(t, "Please ask a question containing words found in the document.", got)
	})

	t.Run("matching paragraph returned verbatim", func(t *testing.T) {
		content := "Paris is the capital of France.\n\nBerlin is in Germany."
		got := llm.AnswerQuestion(ctx, "What is the capital of France?", content, 500)
		assert.Contains(t, got, "Paris is the capital of France.")
		assert.NotContains(t, got, "Berlin")
		assert.Contains(t, got, "keyword search mode")
	})

	t.Run("no match mentions the question", func(t *testing.T) {
		got := llm.AnswerQuestion(ctx, "quasar?", "Sugar dissolves in water.", 500)
		assert.Contains(t, got, "couldn't find a specific answer")
		assert.Contains(t, got, "quasar?")
	})

	t.Run("first paragraph wins ties", func(t *testing.T) {
		content := "alpha one.\n\nalpha two."
		got := llm.AnswerQuestion(ctx, "alpha", content, 500)
		assert.Contains(t, got, "alpha one.")
		assert.NotContains(t, got, "alpha two.")
	})

	t.Run("exact phrase bonus beats token hits", func(t *testing.T) {
		// Both paragraphs contain every question token, only the second
		// contains the question verbatim.
		content := "cats sometimes sleep where it is warm and do nothing.\n\n" +
			"People often wonder where do cats sleep at night."
		got := llm.AnswerQuestion(ctx, "where do cats sleep?", content, 500)
		assert.Contains(t, got, "People often wonder")
	})

	t.Run("case insensitive matching", func(t *testing.T) {
		got := llm.AnswerQuestion(ctx, "PHOTOSYNTHESIS?", "photosynthesis converts light to energy.", 500)
		assert.Contains(t, got, "photosynthesis converts light to energy.")
	})
}

func TestLocalGenerateMCQs(t *testing.T) {
	llm := NewLocal()
	ctx := context.Background()

	t.Run("samples sentences when enough qualify", func(t *testing.T) {
		var b strings.Builder
		for i := 0; i < 8; i++ {
			b.WriteString("This is a deliberately long sentence about topic number ")
			b.WriteString(strings.Repeat("x", 10))
			b.WriteString(" used for sampling. ")
		}
		mcqs := llm.GenerateMCQs(ctx, b.String(), 5)
		require.Len(t, mcqs, 5)
		for _, q := range mcqs {
			assert.Len(t, q.Options, 4)
			assert.Equal(t, []string{"Yes", "No", "Maybe", "Unknown"}, q.Options)
			assert.Equal(t, "A", q.Correct)
			assert.Equal(t, "easy", q.Difficulty)
			assert.Contains(t, q.Question, "Is this statement found in the text")
		}
	})

	t.Run("generic record when too few sentences", func(t *testing.T) {
		mcqs := llm.GenerateMCQs(ctx, "Short. Tiny. Nope.", 5)
		require.Len(t, mcqs, 1)
		assert.Equal(t, "What does this module primarily cover?", mcqs[0].Question)
		assert.Len(t, mcqs[0].Options, 4)
		assert.Equal(t, "A", mcqs[0].Correct)
	})

	t.Run("default count", func(t *testing.T) {
		mcqs := llm.GenerateMCQs(ctx, "", 0)
		require.Len(t, mcqs, 1) // falls back to the generic record
	})
}
