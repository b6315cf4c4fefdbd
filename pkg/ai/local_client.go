// pkg/ai/local_client.go

package ai

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"eduassist/entities"
)

// localClient answers questions with an in-process keyword search and
// generates pseudo-MCQs by sampling sentences. Used when no API key is
// configured.
type localClient struct{}

func NewLocal() Client { return &localClient{} }

func (l *localClient) AnswerQuestion(ctx context.Context, question, content string, maxTokens int) string {
	paragraphs := []string{}
	for _, p := range strings.Split(content, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	if len(paragraphs) == 0 {
		return "I couldn't find any content in this module to search."
	}

	// Lowercase question words with surrounding punctuation stripped.
	// No stopword filtering or stemming: every word counts.
	qWords := map[string]bool{}
	for _, w := range strings.Fields(question) {
		if w = strings.Trim(strings.ToLower(w), "?,.! "); w != "" {
			qWords[w] = true
		}
	}
	if len(qWords) == 0 {
		return "Please ask a question containing words found in the document."
	}

	phrase := strings.Trim(strings.ToLower(question), "?")

	var best string
	maxScore := 0
	for _, para := range paragraphs {
		paraLower := strings.ToLower(para)
		score := 0
		for w := range qWords {
			if strings.Contains(paraLower, w) {
				score++
			}
		}
		// Boost for exact phrase matches.
		if strings.Contains(paraLower, phrase) {
			score += 5
		}
		// Strictly greater, so the first of equally scored paragraphs wins.
		if score > maxScore {
			maxScore = score
			best = para
		}
	}

	if maxScore > 0 {
		return fmt.Sprintf("[Local Search Result] Found in document:\n\n%s\n\n(Note: Using keyword search mode because no API key is configured.)", best)
	}
	return fmt.Sprintf("I couldn't find a specific answer to %q in the text using keyword search.", question)
}

func (l *localClient) GenerateMCQs(ctx context.Context, content string, count int) []entities.MCQ {
	if count <= 0 {
		count = 5
	}

	normalized := strings.NewReplacer("!", ".", "?", ".").Replace(content)
	sentences := []string{}
	for _, s := range strings.Split(normalized, ".") {
		if s = strings.TrimSpace(s); len(s) > 50 {
			sentences = append(sentences, s)
		}
	}

	if len(sentences) < count {
		return []entities.MCQ{{
			Question:    "What does this module primarily cover?",
			Options:     []string{"The uploaded PDF content", "General Knowledge", "Math", "Science"},
			Correct:     "A",
			Difficulty:  "easy",
			Explanation: "This module covers the content of the uploaded PDF.",
		}}
	}

	mcqs := make([]entities.MCQ, 0, count)
	for _, idx := range rand.Perm(len(sentences))[:count] {
		mcqs = append(mcqs, entities.MCQ{
			Question:    fmt.Sprintf("Is this statement found in the text: \"%s...\"?", clip(sentences[idx], 100)),
			Options:     []string{"Yes", "No", "Maybe", "Unknown"},
			Correct:     "A",
			Difficulty:  "easy",
			Explanation: "This sentence is present in the document.",
		})
	}
	return mcqs
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
