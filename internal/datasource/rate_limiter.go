package datasource

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/airaware/cleanmap-backend-go/internal/models"
)

// RateLimitedAirQualitySource wraps an AirQualitySource with rate limiting
type RateLimitedAirQualitySource struct {
	source  AirQualitySource
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedAirQualitySource creates a new rate limited air quality source.
// rps is the maximum requests per second allowed (can be fractional for less
// than 1 request per second), burst is the maximum burst size allowed.
func NewRateLimitedAirQualitySource(source AirQualitySource, rps float64, burst int) *RateLimitedAirQualitySource {
	return &RateLimitedAirQualitySource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// FetchReadings fetches readings, respecting rate limits
func (r *RateLimitedAirQualitySource) FetchReadings(ctx context.Context, anchor models.Anchor) (models.ReadingSet, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.source.FetchReadings(ctx, anchor)
}

// Name returns the source name
func (r *RateLimitedAirQualitySource) Name() string {
	return r.name
}

// RateLimitedWeatherSource wraps a WeatherSource with rate limiting
type RateLimitedWeatherSource struct {
	source  WeatherSource
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedWeatherSource creates a new rate limited weather source
func NewRateLimitedWeatherSource(source WeatherSource, rps float64, burst int) *RateLimitedWeatherSource {
	return &RateLimitedWeatherSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// FetchCurrent fetches current conditions, respecting rate limits
func (r *RateLimitedWeatherSource) FetchCurrent(ctx context.Context, anchor models.Anchor) (models.WeatherObservation, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.WeatherObservation{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.source.FetchCurrent(ctx, anchor)
}

// Name returns the source name
func (r *RateLimitedWeatherSource) Name() string {
	return r.name
}

// RateLimitedFireSource wraps a FireSource with rate limiting
type RateLimitedFireSource struct {
	source  FireSource
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedFireSource creates a new rate limited fire source
func NewRateLimitedFireSource(source FireSource, rps float64, burst int) *RateLimitedFireSource {
	return &RateLimitedFireSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// FetchFires fetches fire detections, respecting rate limits
func (r *RateLimitedFireSource) FetchFires(ctx context.Context, bbox models.BBox, days int) ([]models.FirePoint, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.source.FetchFires(ctx, bbox, days)
}

// Name returns the source name
func (r *RateLimitedFireSource) Name() string {
	return r.name
}

// Verify that the rate limited types implement the source interfaces
var (
	_ AirQualitySource = (*RateLimitedAirQualitySource)(nil)
	_ WeatherSource    = (*RateLimitedWeatherSource)(nil)
	_ FireSource       = (*RateLimitedFireSource)(nil)
)
