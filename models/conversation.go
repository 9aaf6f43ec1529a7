package models

import "time"

// Conversation is one persisted chat exchange
type Conversation struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Intent    string    `gorm:"index:idx_intent" json:"intent"`
	CreatedAt time.Time `gorm:"index:idx_created" json:"created_at"`
}

// HistoryResponse represents the recent conversation log
type HistoryResponse struct {
	Conversations []Conversation `json:"conversations"`
	Count         int            `json:"count"`
}
