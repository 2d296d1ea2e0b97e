package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	defaultHealthBaseURL = "https://trackapi.nutritionix.com/v2"
	defaultHealthQuery   = "1 cup water"
)

// HealthService looks up nutrient facts for free-text queries, used for
// the hydration tips card.
type HealthService struct {
	appID  string
	appKey string

	baseURL string
	client  *http.Client
}

func NewHealthService() *HealthService {
	base := os.Getenv("HEALTH_API_URL")
	if base == "" {
		base = defaultHealthBaseURL
	}
	return &HealthService{
		appID:   os.Getenv("HEALTH_APP_ID"),
		appKey:  os.Getenv("HEALTH_APP_KEY"),
		baseURL: base,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type HealthTip struct {
	FoodName           string  `json:"food_name"`
	Calories           float64 `json:"nf_calories"`
	WaterGrams         float64 `json:"nf_water_grams"`
	ServingWeightGrams float64 `json:"serving_weight_grams"`
	ServingQty         float64 `json:"serving_qty"`
	ServingUnit        string  `json:"serving_unit"`
}

type healthSearchResponse struct {
	Foods []HealthTip `json:"foods"`
}

// LookupTips queries the nutrient database. An empty query falls back to
// the stock "1 cup water" lookup.
func (s *HealthService) LookupTips(query string) ([]HealthTip, error) {
	if strings.TrimSpace(query) == "" {
		query = defaultHealthQuery
	}

	u := fmt.Sprintf("%s/natural/nutrients?query=%s", s.baseURL, url.QueryEscape(query))
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create health request: %w", err)
	}
	req.Header.Set("x-app-id", s.appID)
	req.Header.Set("x-app-key", s.appKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call health API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read health response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("health API error %d: %s", resp.StatusCode, string(body))
	}

	var sr healthSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse health JSON: %w", err)
	}
	return sr.Foods, nil
}
