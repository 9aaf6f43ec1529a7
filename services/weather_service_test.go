package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatbot-backend/config"
)

const wttrPayload = `{
	"current_condition": [
		{
			"temp_C": "25",
			"humidity": "40",
			"windspeedKmph": "10",
			"weatherDesc": [{"value": "Sunny"}]
		}
	]
}`

func testProviderConfig(baseURL string) *config.Config {
	return &config.Config{
		WeatherBaseURL:  baseURL,
		CryptoBaseURL:   baseURL,
		NewsBaseURL:     baseURL,
		NewsAPIKey:      "demo",
		ProviderTimeout: 5,
	}
}

func TestWeatherServiceCurrentConditions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("format") != "j1" {
			t.Errorf("expected format=j1 query, got %q", r.URL.RawQuery)
		}
		w.Write([]byte(wttrPayload))
	}))
	defer server.Close()

	service := NewWeatherService(testProviderConfig(server.URL))
	data, err := service.CurrentConditions(context.Background(), "Delhi")
	if err != nil {
		t.Fatalf("CurrentConditions() error = %v", err)
	}

	if data.Location != "Delhi" {
		t.Errorf("Location = %q, expected Delhi", data.Location)
	}
	if data.Temperature != "25" {
		t.Errorf("Temperature = %q, expected 25", data.Temperature)
	}
	if data.Condition != "Sunny" {
		t.Errorf("Condition = %q, expected Sunny", data.Condition)
	}
	if data.Humidity != "40" {
		t.Errorf("Humidity = %q, expected 40", data.Humidity)
	}
	if data.WindSpeed != "10" {
		t.Errorf("WindSpeed = %q, expected 10", data.WindSpeed)
	}
}

func TestWeatherServiceUpstreamFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "Server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "Malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
		{
			name: "Empty conditions",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"current_condition": []}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			service := NewWeatherService(testProviderConfig(server.URL))
			_, err := service.CurrentConditions(context.Background(), "Delhi")
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if err.Error() == "" {
				t.Error("expected a non-empty error message")
			}
		})
	}
}

func TestWeatherServiceUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // reuse the now-dead address

	service := NewWeatherService(testProviderConfig(server.URL))
	_, err := service.CurrentConditions(context.Background(), "Delhi")
	if err == nil {
		t.Fatal("expected an error for unreachable host, got nil")
	}
}
