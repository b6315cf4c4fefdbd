// pkg/ai/fence.go

package ai

import "strings"

// unwrapFence strips an optional markdown code fence from a model reply
// so the remainder can be decoded as JSON. Checks for a ```json fence
// first, then a bare ``` fence, otherwise returns the input trimmed.
func unwrapFence(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "```json"); i >= 0 {
		s = s[i+len("```json"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
		return strings.TrimSpace(s)
	}
	if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+len("```"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
		return strings.TrimSpace(s)
	}
	return s
}
