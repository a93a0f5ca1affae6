package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/airaware/cleanmap-backend-go/internal/models"
)

const openWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// OpenWeatherSource fetches current conditions from OpenWeatherMap.
type OpenWeatherSource struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

var _ WeatherSource = (*OpenWeatherSource)(nil)

// NewOpenWeatherSource creates an OpenWeatherMap client.
func NewOpenWeatherSource(apiKey string) *OpenWeatherSource {
	return &OpenWeatherSource{
		apiKey:  apiKey,
		baseURL: openWeatherBaseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Name returns the name of this data source
func (o *OpenWeatherSource) Name() string {
	return "OpenWeatherMap"
}

// openWeatherResponse is the slice of the current-weather payload we use.
type openWeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
}

// FetchCurrent fetches the city name, temperature (°C) and humidity for
// the anchor.
func (o *OpenWeatherSource) FetchCurrent(ctx context.Context, anchor models.Anchor) (models.WeatherObservation, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", anchor.Lat))
	q.Set("lon", fmt.Sprintf("%f", anchor.Lon))
	q.Set("appid", o.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return models.WeatherObservation{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return models.WeatherObservation{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.WeatherObservation{}, fmt.Errorf("OpenWeatherMap returned non-200 status: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.WeatherObservation{}, fmt.Errorf("failed to read response body: %w", err)
	}

	var parsed openWeatherResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return models.WeatherObservation{}, fmt.Errorf("failed to parse weather response: %w", err)
	}

	city := parsed.Name
	if city == "" {
		city = "Unknown Location"
	}
	return models.WeatherObservation{
		City:        city,
		Temperature: parsed.Main.Temp,
		Humidity:    parsed.Main.Humidity,
	}, nil
}
