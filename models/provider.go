package models

import "encoding/json"

// WeatherData holds current conditions for a location.
// Values stay as strings because wttr.in reports them that way.
type WeatherData struct {
	Location    string `json:"location"`
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    string `json:"humidity"`
	WindSpeed   string `json:"wind_speed"`
}

// CryptoData holds a spot price quote for a cryptocurrency
type CryptoData struct {
	Crypto    string  `json:"crypto"`
	PriceUSD  float64 `json:"price_usd"`
	PriceINR  float64 `json:"price_inr"`
	Change24h float64 `json:"change_24h"`
}

// Headline is a single news headline with a truncated description
type Headline struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NewsData holds the latest headlines
type NewsData struct {
	Headlines []Headline `json:"headlines"`
}

// ProviderResult is the outcome of an external data fetch.
// Exactly one of Data or Error is set.
type ProviderResult struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Failed reports whether the fetch resolved to an error
func (r *ProviderResult) Failed() bool {
	return r != nil && r.Error != ""
}

// DataJSON serializes the fetched record for inclusion in an LLM context
func (r *ProviderResult) DataJSON() string {
	raw, err := json.Marshal(r.Data)
	if err != nil {
		return "{}"
	}
	return string(raw)
}
