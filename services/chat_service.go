package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"chatbot-backend/config"
	"chatbot-backend/database"
	"chatbot-backend/models"
	"chatbot-backend/prompts"

	"github.com/google/uuid"
)

// ChatService orchestrates a chat request: classify the message, fetch
// external data for the detected intent, and generate the reply.
type ChatService struct {
	cfg     *config.Config
	llm     *LLMService
	weather *WeatherService
	crypto  *CryptoService
	news    *NewsService
	prompt  *PromptStore
}

// NewChatService creates a new chat service instance
func NewChatService(cfg *config.Config, llm *LLMService, weather *WeatherService, crypto *CryptoService, news *NewsService) *ChatService {
	return &ChatService{
		cfg:     cfg,
		llm:     llm,
		weather: weather,
		crypto:  crypto,
		news:    news,
		prompt:  NewPromptStore(prompts.DefaultSystemPrompt),
	}
}

// Chat handles one chat exchange end to end
func (s *ChatService) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if req.SystemPrompt != "" {
		s.prompt.Set(req.SystemPrompt)
	}

	lower := strings.ToLower(req.Message)
	intent := DetectIntent(lower)
	apiData := s.fetchForIntent(ctx, intent, req.Message)

	response := s.llm.GenerateResponse(ctx, req.Message, s.prompt.Get(), apiData)

	s.logConversation(req.Message, response, intent)

	return &models.ChatResponse{
		Response: response,
		Intent:   intent,
	}, nil
}

// fetchForIntent runs the provider matching the intent and folds the
// outcome into a ProviderResult. General intent needs no external data.
func (s *ChatService) fetchForIntent(ctx context.Context, intent, message string) *models.ProviderResult {
	switch intent {
	case models.IntentWeather:
		location := ExtractLocation(message)
		data, err := s.weather.CurrentConditions(ctx, location)
		return wrapResult(data, err, "Weather API error")

	case models.IntentCrypto:
		crypto := ExtractCrypto(message)
		data, err := s.crypto.Price(ctx, crypto)
		return wrapResult(data, err, "Crypto API error")

	case models.IntentNews:
		data, err := s.news.LatestHeadlines(ctx)
		return wrapResult(data, err, "News API error")

	default:
		return nil
	}
}

// wrapResult converts a provider's (record, error) pair into the variant
// the response generator consumes.
func wrapResult(data interface{}, err error, label string) *models.ProviderResult {
	if err != nil {
		log.Printf("%s: %v", label, err)
		return &models.ProviderResult{Error: fmt.Sprintf("%s: %v", label, err)}
	}
	return &models.ProviderResult{Data: data}
}

// logConversation persists the exchange, best effort
func (s *ChatService) logConversation(message, response, intent string) {
	conv := &models.Conversation{
		ID:        uuid.NewString(),
		Message:   message,
		Response:  response,
		Intent:    intent,
		CreatedAt: time.Now(),
	}
	if err := database.SaveConversation(conv); err != nil {
		log.Printf("Failed to log conversation: %v", err)
	}
}

// SystemPrompt returns the current system prompt
func (s *ChatService) SystemPrompt() string {
	return s.prompt.Get()
}

// SetSystemPrompt overwrites the system prompt
func (s *ChatService) SetSystemPrompt(prompt string) {
	s.prompt.Set(prompt)
}

// History returns the most recent chat exchanges
func (s *ChatService) History(limit int) ([]models.Conversation, error) {
	if limit <= 0 || limit > s.cfg.HistoryLimit {
		limit = s.cfg.HistoryLimit
	}
	return database.RecentConversations(limit)
}
