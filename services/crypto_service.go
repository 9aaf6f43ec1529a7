package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"chatbot-backend/config"
	"chatbot-backend/models"
)

// CryptoService fetches spot prices from the CoinGecko simple price API
type CryptoService struct {
	client  *http.Client
	baseURL string
}

// NewCryptoService creates a new crypto price service instance
func NewCryptoService(cfg *config.Config) *CryptoService {
	return &CryptoService{
		client:  &http.Client{Timeout: time.Duration(cfg.ProviderTimeout) * time.Second},
		baseURL: cfg.CryptoBaseURL,
	}
}

// Price returns the current USD/INR quote and 24h change for a coin.
// Fields missing from the response default to zero.
func (s *CryptoService) Price(ctx context.Context, crypto string) (*models.CryptoData, error) {
	reqURL := fmt.Sprintf(
		"%s/api/v3/simple/price?ids=%s&vs_currencies=usd,inr&include_24hr_change=true",
		s.baseURL, url.QueryEscape(crypto),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("crypto request failed: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("crypto request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cryptocurrency data not available (status %d)", resp.StatusCode)
	}

	var payload map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse crypto response: %w", err)
	}

	quote, ok := payload[crypto]
	if !ok {
		return nil, fmt.Errorf("cryptocurrency data not available")
	}

	return &models.CryptoData{
		Crypto:    capitalize(crypto),
		PriceUSD:  quote["usd"],
		PriceINR:  quote["inr"],
		Change24h: quote["usd_24h_change"],
	}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
