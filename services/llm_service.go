package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"chatbot-backend/config"
	"chatbot-backend/models"
	"chatbot-backend/prompts"

	openai "github.com/sashabaranov/go-openai"
)

type LLMService struct {
	client *openai.Client
	cfg    *config.Config
}

// NewLLMService creates a new LLM service instance
func NewLLMService(cfg *config.Config) *LLMService {
	var client *openai.Client

	switch cfg.LLMProvider {
	case "openai":
		clientConfig := openai.DefaultConfig(cfg.OpenAIKey)
		client = openai.NewClientWithConfig(clientConfig)
	case "groq":
		clientConfig := openai.DefaultConfig(cfg.GroqKey)
		clientConfig.BaseURL = cfg.LLMBaseURL
		client = openai.NewClientWithConfig(clientConfig)
	default:
		log.Fatalf("Invalid LLM provider: %s", cfg.LLMProvider)
	}

	return &LLMService{
		client: client,
		cfg:    cfg,
	}
}

// buildContext assembles the user-role content sent to the model: the raw
// message plus whatever the external data fetch produced.
func buildContext(userMessage string, apiData *models.ProviderResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User message: %s\n", userMessage)

	switch {
	case apiData == nil:
		b.WriteString(prompts.NoDataInstruction)
	case apiData.Failed():
		fmt.Fprintf(&b, "API Error: %s\n", apiData.Error)
		b.WriteString(prompts.ErrorInstruction)
	default:
		fmt.Fprintf(&b, "API Data: %s\n", apiData.DataJSON())
		b.WriteString(prompts.DataInstruction)
	}

	return b.String()
}

// GenerateResponse produces a natural-language reply for the user message,
// optionally grounded in fetched external data. Failures resolve to an
// apologetic fallback string, never an error.
func (s *LLMService) GenerateResponse(ctx context.Context, userMessage, systemPrompt string, apiData *models.ProviderResult) string {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.LLMTimeout)*time.Second)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.cfg.ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildContext(userMessage, apiData)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: float32(s.cfg.Temperature),
	})

	if err != nil {
		log.Printf("LLM completion error: %v", err)
		return fmt.Sprintf("I'm having trouble connecting to the language model. Error: %v", err)
	}

	if len(resp.Choices) == 0 {
		log.Printf("LLM returned no choices")
		return "I'm having trouble connecting to the language model. Error: empty completion"
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
