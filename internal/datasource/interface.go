// Package datasource wraps the external APIs the service polls: OpenAQ
// for pollutant readings, OpenWeatherMap for current conditions, and
// NASA FIRMS for active-fire detections. The rest of the codebase only
// sees these interfaces.
package datasource

import (
	"context"

	"github.com/airaware/cleanmap-backend-go/internal/models"
)

// AirQualitySource supplies the latest pollutant readings near a point.
type AirQualitySource interface {
	Name() string
	FetchReadings(ctx context.Context, anchor models.Anchor) (models.ReadingSet, error)
}

// WeatherSource supplies current conditions for a point.
type WeatherSource interface {
	Name() string
	FetchCurrent(ctx context.Context, anchor models.Anchor) (models.WeatherObservation, error)
}

// FireSource supplies active-fire detections inside a bounding box.
type FireSource interface {
	Name() string
	FetchFires(ctx context.Context, bbox models.BBox, days int) ([]models.FirePoint, error)
}
