package entities

// MCQ is a generated multiple-choice quiz item. Not persisted.
// Options always has exactly four entries; Correct is one of A/B/C/D.
type MCQ struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     string   `json:"correct"`
	Difficulty  string   `json:"difficulty"`
	Explanation string   `json:"explanation"`
}
