package services

import (
	"strings"

	"chatbot-backend/models"
)

// intentKeywords maps each intent to its trigger keywords. Order matters:
// the first intent with any matching keyword wins.
var intentKeywords = []struct {
	Intent   string
	Keywords []string
}{
	{models.IntentWeather, []string{"weather", "temperature", "forecast", "climate", "rain", "sunny", "cloudy"}},
	{models.IntentCrypto, []string{"bitcoin", "btc", "ethereum", "eth", "crypto", "cryptocurrency", "price"}},
	{models.IntentNews, []string{"news", "headlines", "latest", "today", "current events"}},
}

// knownLocations is the allow-list for location extraction
var knownLocations = []string{"delhi", "mumbai", "bangalore", "london", "paris", "tokyo", "new york"}

// DetectIntent classifies a lower-cased user message into one of the intent
// categories by keyword containment. Returns IntentGeneral when nothing matches.
func DetectIntent(message string) string {
	for _, group := range intentKeywords {
		for _, keyword := range group.Keywords {
			if strings.Contains(message, keyword) {
				return group.Intent
			}
		}
	}
	return models.IntentGeneral
}

// ExtractLocation finds the first known location mentioned in the message,
// returned with its original casing. Tokens are trimmed of surrounding
// punctuation, and adjacent token pairs are checked so that two-word
// locations like "New York" match. Defaults to "Delhi".
func ExtractLocation(message string) string {
	words := strings.Fields(message)
	tokens := make([]string, len(words))
	for i, word := range words {
		tokens[i] = strings.Trim(word, ".,!?;:'\"()")
	}

	for i, token := range tokens {
		for _, location := range knownLocations {
			if strings.EqualFold(token, location) {
				return token
			}
			if i+1 < len(tokens) {
				pair := token + " " + tokens[i+1]
				if strings.EqualFold(pair, location) {
					return pair
				}
			}
		}
	}

	return "Delhi"
}

// ExtractCrypto resolves the cryptocurrency identifier mentioned in the
// message. Defaults to "bitcoin".
func ExtractCrypto(message string) string {
	lower := strings.ToLower(message)
	if strings.Contains(lower, "bitcoin") || strings.Contains(lower, "btc") {
		return "bitcoin"
	}
	if strings.Contains(lower, "ethereum") || strings.Contains(lower, "eth") {
		return "ethereum"
	}
	return "bitcoin"
}
