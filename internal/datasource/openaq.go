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
	"github.com/airaware/cleanmap-backend-go/internal/spatial"
)

const openAQBaseURL = "https://api.openaq.org/v2/latest"

// OpenAQ station search radius in meters.
const openAQRadiusMeters = 25000

// OpenAQSource fetches the latest measurements from the nearest OpenAQ
// station.
type OpenAQSource struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

var _ AirQualitySource = (*OpenAQSource)(nil)

// NewOpenAQSource creates an OpenAQ client. apiKey may be empty; the
// v2 latest endpoint accepts anonymous requests at a lower quota.
func NewOpenAQSource(apiKey string) *OpenAQSource {
	return &OpenAQSource{
		apiKey:  apiKey,
		baseURL: openAQBaseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Name returns the name of this data source
func (o *OpenAQSource) Name() string {
	return "OpenAQ"
}

// openAQResponse is the slice of the /v2/latest payload we consume.
type openAQResponse struct {
	Results []struct {
		Location    string `json:"location"`
		Coordinates struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"coordinates"`
		Measurements []struct {
			Parameter string  `json:"parameter"`
			Value     float64 `json:"value"`
			Unit      string  `json:"unit"`
		} `json:"measurements"`
	} `json:"results"`
}

// FetchReadings queries stations within 25 km, picks the one nearest to
// the anchor, and maps its measurements onto the recognized pollutant
// kinds. Parameters we do not visualize are dropped, as are negative
// sensor glitches.
func (o *OpenAQSource) FetchReadings(ctx context.Context, anchor models.Anchor) (models.ReadingSet, error) {
	q := url.Values{}
	q.Set("coordinates", fmt.Sprintf("%f,%f", anchor.Lat, anchor.Lon))
	q.Set("radius", fmt.Sprintf("%d", openAQRadiusMeters))
	q.Set("limit", "5")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if o.apiKey != "" {
		req.Header.Set("X-API-Key", o.apiKey)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenAQ returned non-200 status: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var parsed openAQResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAQ response: %w", err)
	}

	readings := make(models.ReadingSet)
	if len(parsed.Results) == 0 {
		return readings, nil
	}

	// Nearest station wins; the API does not guarantee distance order.
	best := 0
	bestDist := spatial.Distance(anchor, models.Anchor{
		Lat: parsed.Results[0].Coordinates.Latitude,
		Lon: parsed.Results[0].Coordinates.Longitude,
	})
	for i := 1; i < len(parsed.Results); i++ {
		d := spatial.Distance(anchor, models.Anchor{
			Lat: parsed.Results[i].Coordinates.Latitude,
			Lon: parsed.Results[i].Coordinates.Longitude,
		})
		if d < bestDist {
			best, bestDist = i, d
		}
	}

	for _, m := range parsed.Results[best].Measurements {
		kind := models.Kind(m.Parameter)
		if !kind.Valid() || m.Value < 0 {
			continue
		}
		readings[kind] = m.Value
	}
	return readings, nil
}
