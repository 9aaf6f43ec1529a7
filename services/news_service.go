package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"chatbot-backend/config"
	"chatbot-backend/models"
	"chatbot-backend/utils"
)

const (
	maxHeadlines     = 5
	descriptionLimit = 100
)

// fallbackHeadlines is served when the upstream returns a non-success
// status, so the chat still has something to talk about.
var fallbackHeadlines = []models.Headline{
	{Title: "Tech Industry News", Description: "Latest developments in technology sector..."},
	{Title: "Market Updates", Description: "Financial markets showing positive trends..."},
}

// NewsService fetches latest headlines from the Currents API
type NewsService struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewNewsService creates a new news service instance
func NewNewsService(cfg *config.Config) *NewsService {
	return &NewsService{
		client:  &http.Client{Timeout: time.Duration(cfg.ProviderTimeout) * time.Second},
		baseURL: cfg.NewsBaseURL,
		apiKey:  cfg.NewsAPIKey,
	}
}

type currentsResponse struct {
	News []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"news"`
}

// LatestHeadlines returns up to five recent headlines with truncated
// descriptions. A bad upstream status degrades to canned headlines; only
// transport and parse failures return an error.
func (s *NewsService) LatestHeadlines(ctx context.Context) (*models.NewsData, error) {
	reqURL := fmt.Sprintf("%s/v1/latest-news?language=en&apiKey=%s", s.baseURL, url.QueryEscape(s.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("news request failed: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &models.NewsData{Headlines: fallbackHeadlines}, nil
	}

	var payload currentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse news response: %w", err)
	}

	headlines := make([]models.Headline, 0, maxHeadlines)
	for _, article := range payload.News {
		if len(headlines) == maxHeadlines {
			break
		}
		headlines = append(headlines, models.Headline{
			Title:       article.Title,
			Description: utils.Truncate(article.Description, descriptionLimit),
		})
	}

	return &models.NewsData{Headlines: headlines}, nil
}
