package entities

import "time"

// Conversation is one question/answer exchange tied to a module.
type Conversation struct {
	ConvID    uint      `gorm:"primaryKey" json:"conv_id"`
	ModuleID  uint      `gorm:"index" json:"module_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"timestamp"`
}
