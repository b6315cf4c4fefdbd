package entities

import "time"

// Module is one uploaded document and its extracted text.
// Rows are immutable after creation; deleting a module removes its
// conversations and the stored file.
type Module struct {
	ModuleID    uint      `gorm:"primaryKey" json:"module_id"`
	ModuleName  string    `json:"module_name"`
	Filename    string    `json:"filename"`
	Filepath    string    `json:"-"`
	SourceURL   string    `json:"source_url,omitempty"`
	ContentText string    `json:"-"` // empty when extraction failed
	CreatedAt   time.Time `json:"created_at"`
}
