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
)

// WeatherService fetches current conditions from wttr.in
type WeatherService struct {
	client  *http.Client
	baseURL string
}

// NewWeatherService creates a new weather service instance
func NewWeatherService(cfg *config.Config) *WeatherService {
	return &WeatherService{
		client:  &http.Client{Timeout: time.Duration(cfg.ProviderTimeout) * time.Second},
		baseURL: cfg.WeatherBaseURL,
	}
}

// wttrResponse mirrors the slice of the wttr.in JSON payload we consume
type wttrResponse struct {
	CurrentCondition []struct {
		TempC       string `json:"temp_C"`
		Humidity    string `json:"humidity"`
		WindSpeed   string `json:"windspeedKmph"`
		WeatherDesc []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`
}

// CurrentConditions returns the current weather for a location
func (s *WeatherService) CurrentConditions(ctx context.Context, location string) (*models.WeatherData, error) {
	reqURL := fmt.Sprintf("%s/%s?format=j1", s.baseURL, url.PathEscape(location))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather data not available (status %d)", resp.StatusCode)
	}

	var payload wttrResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse weather response: %w", err)
	}
	if len(payload.CurrentCondition) == 0 {
		return nil, fmt.Errorf("weather data not available")
	}

	current := payload.CurrentCondition[0]
	condition := ""
	if len(current.WeatherDesc) > 0 {
		condition = current.WeatherDesc[0].Value
	}

	return &models.WeatherData{
		Location:    location,
		Temperature: current.TempC,
		Condition:   condition,
		Humidity:    current.Humidity,
		WindSpeed:   current.WindSpeed,
	}, nil
}
