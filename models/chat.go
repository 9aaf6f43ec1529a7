package models

// ChatRequest represents an incoming chat message
type ChatRequest struct {
	Message      string `json:"message" binding:"required"`
	SystemPrompt string `json:"system_prompt"`
}

// ChatResponse represents the reply for a chat message
type ChatResponse struct {
	Response string `json:"response"`
	Intent   string `json:"intent"`
}

// SystemPromptRequest represents a system prompt update
type SystemPromptRequest struct {
	SystemPrompt string `json:"system_prompt" binding:"required"`
}

// SystemPromptResponse represents the current system prompt
type SystemPromptResponse struct {
	SystemPrompt string `json:"system_prompt"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Intent types
const (
	IntentWeather = "weather"
	IntentCrypto  = "crypto"
	IntentNews    = "news"
	IntentGeneral = "general"
)
