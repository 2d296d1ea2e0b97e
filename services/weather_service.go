package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// The forecast location is fixed to Liberec; the app has no location input.
const (
	weatherLat = "50.7677"
	weatherLon = "15.0594"

	defaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
)

type WeatherService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewWeatherService initializes the client with the API key from the
// environment.
func NewWeatherService() *WeatherService {
	base := os.Getenv("WEATHER_BASE_URL")
	if base == "" {
		base = defaultWeatherBaseURL
	}
	return &WeatherService{
		apiKey:  os.Getenv("WEATHER_API_KEY"),
		baseURL: base,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// ForecastError carries the upstream status code when the weather call
// came back non-2xx.
type ForecastError struct {
	StatusCode int
	Message    string
}

func (e *ForecastError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("weather API error %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// ForecastSummary is the first forecast entry reduced to what the app
// shows, plus the resolved place name.
type ForecastSummary struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Time        string  `json:"time"`
}

type forecastResponse struct {
	List []struct {
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		DtTxt string `json:"dt_txt"`
	} `json:"list"`
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}

// FetchForecast calls the forecast endpoint with metric units and reduces
// the response to its first entry.
func (s *WeatherService) FetchForecast() (*ForecastSummary, error) {
	q := url.Values{}
	q.Set("lat", weatherLat)
	q.Set("lon", weatherLon)
	q.Set("units", "metric")
	q.Set("appid", s.apiKey)

	resp, err := s.client.Get(s.baseURL + "/forecast?" + q.Encode())
	if err != nil {
		return nil, &ForecastError{Message: fmt.Sprintf("failed to call weather API: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ForecastError{Message: fmt.Sprintf("failed to read weather response: %v", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ForecastError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var fr forecastResponse
	if err := json.Unmarshal(body, &fr); err != nil {
		return nil, &ForecastError{Message: fmt.Sprintf("failed to parse weather JSON: %v", err)}
	}
	if len(fr.List) == 0 {
		return nil, &ForecastError{Message: "weather response contained no forecast entries"}
	}

	first := fr.List[0]
	summary := &ForecastSummary{
		City:      fr.City.Name,
		Country:   fr.City.Country,
		Temp:      first.Main.Temp,
		FeelsLike: first.Main.FeelsLike,
		Humidity:  first.Main.Humidity,
		Time:      first.DtTxt,
	}
	if len(first.Weather) > 0 {
		summary.Description = first.Weather[0].Description
		summary.Icon = first.Weather[0].Icon
	}
	return summary, nil
}

// Recommend maps the forecast temperature to drinking advice. Order
// matters: 30 and 25 are exclusive on the high side, 10 on the low side.
func Recommend(temp float64) string {
	switch {
	case temp > 30:
		return "It is very hot! Drink about 50% more than usual and avoid physical activity around midday."
	case temp > 25:
		return "It is warm, drink about 25% more than usual. Keep up your regular fluid intake."
	case temp < 10:
		return "It is cold, but drinking enough still matters. Warm beverages are a good choice."
	default:
		return "Keep your normal drinking routine. The temperature is comfortable."
	}
}
