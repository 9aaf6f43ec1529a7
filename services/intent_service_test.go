package services

import (
	"strings"
	"testing"

	"chatbot-backend/models"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{
			name:     "Weather keyword",
			message:  "what's the weather in delhi?",
			expected: models.IntentWeather,
		},
		{
			name:     "Temperature keyword",
			message:  "current temperature please",
			expected: models.IntentWeather,
		},
		{
			name:     "Crypto keyword",
			message:  "how much is bitcoin worth",
			expected: models.IntentCrypto,
		},
		{
			name:     "Price keyword",
			message:  "price of gold",
			expected: models.IntentCrypto,
		},
		{
			name:     "News keyword",
			message:  "show me the headlines",
			expected: models.IntentNews,
		},
		{
			name:     "Multi-word news keyword",
			message:  "any current events?",
			expected: models.IntentNews,
		},
		{
			name:     "Weather beats crypto when both match",
			message:  "weather and bitcoin price",
			expected: models.IntentWeather,
		},
		{
			name:     "Crypto beats news when both match",
			message:  "latest crypto movements",
			expected: models.IntentCrypto,
		},
		{
			name:     "No keyword falls back to general",
			message:  "tell me a joke",
			expected: models.IntentGeneral,
		},
		{
			name:     "Empty message is general",
			message:  "",
			expected: models.IntentGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectIntent(strings.ToLower(tt.message))
			if result != tt.expected {
				t.Errorf("DetectIntent(%q) = %q, expected %q", tt.message, result, tt.expected)
			}
		})
	}
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{
			name:     "Location with trailing punctuation",
			message:  "What's the weather in Mumbai?",
			expected: "Mumbai",
		},
		{
			name:     "Lowercase location keeps original casing",
			message:  "weather in london today",
			expected: "london",
		},
		{
			name:     "No location defaults to Delhi",
			message:  "weather today",
			expected: "Delhi",
		},
		{
			name:     "Two-word location",
			message:  "is it raining in New York?",
			expected: "New York",
		},
		{
			name:     "First location wins",
			message:  "compare Paris and Tokyo weather",
			expected: "Paris",
		},
		{
			name:     "Empty message defaults to Delhi",
			message:  "",
			expected: "Delhi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractLocation(tt.message)
			if result != tt.expected {
				t.Errorf("ExtractLocation(%q) = %q, expected %q", tt.message, result, tt.expected)
			}
		})
	}
}

func TestExtractCrypto(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{
			name:     "Ethereum symbol",
			message:  "price of eth",
			expected: "ethereum",
		},
		{
			name:     "Ethereum full name",
			message:  "what is Ethereum trading at",
			expected: "ethereum",
		},
		{
			name:     "Bitcoin symbol",
			message:  "BTC to the moon",
			expected: "bitcoin",
		},
		{
			name:     "Bitcoin wins over ethereum",
			message:  "bitcoin vs ethereum",
			expected: "bitcoin",
		},
		{
			name:     "No match defaults to bitcoin",
			message:  "any crypto news",
			expected: "bitcoin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractCrypto(tt.message)
			if result != tt.expected {
				t.Errorf("ExtractCrypto(%q) = %q, expected %q", tt.message, result, tt.expected)
			}
		})
	}
}
