package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/airaware/cleanmap-backend-go/internal/aqi"
	"github.com/airaware/cleanmap-backend-go/internal/datasource"
	"github.com/airaware/cleanmap-backend-go/internal/models"
	"github.com/airaware/cleanmap-backend-go/internal/repository"
)

// How long a cached reading set stays fresh.
const readingCacheTTL = 10 * time.Minute

// Demo values served when no station is nearby or the upstream fails,
// so the map always has something to shade.
var (
	demoNoStation = demoReading{pm25: 15.0, aqiValue: 55, category: "Moderate (Demo Data)"}
	demoAPIError  = demoReading{pm25: 10.0, aqiValue: 42, category: "Good (Demo Data)"}
)

type demoReading struct {
	pm25     float64
	aqiValue int
	category string
}

// AirQualityService combines weather and pollutant readings into the
// payload the map frontend polls.
type AirQualityService struct {
	air     datasource.AirQualitySource
	weather datasource.WeatherSource
	repo    *repository.ReadingRepository
}

// NewAirQualityService creates a new air quality service
func NewAirQualityService(air datasource.AirQualitySource, weather datasource.WeatherSource, repo *repository.ReadingRepository) *AirQualityService {
	return &AirQualityService{air: air, weather: weather, repo: repo}
}

// Readings returns the reading set for an anchor, from cache when fresh.
func (s *AirQualityService) Readings(ctx context.Context, anchor models.Anchor) (models.ReadingSet, error) {
	if !anchor.Valid() {
		return nil, fmt.Errorf("anchor out of range: lat=%v lon=%v", anchor.Lat, anchor.Lon)
	}

	if cached, ok, err := s.repo.Get(anchor, readingCacheTTL); err != nil {
		log.Printf("[AirQualityService] reading cache lookup failed: %v", err)
	} else if ok {
		return cached, nil
	}

	readings, err := s.air.FetchReadings(ctx, anchor)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch readings from %s: %w", s.air.Name(), err)
	}

	if err := s.repo.Put(anchor, readings); err != nil {
		log.Printf("[AirQualityService] failed to cache readings: %v", err)
	}
	return readings, nil
}

// Summary builds the combined city/AQI/weather payload. Weather and
// air quality fail independently: a dead weather API still returns
// pollutant data, and a dead air API falls back to demo values rather
// than an empty map.
func (s *AirQualityService) Summary(ctx context.Context, anchor models.Anchor) (*models.AirQualitySummary, error) {
	if !anchor.Valid() {
		return nil, fmt.Errorf("anchor out of range: lat=%v lon=%v", anchor.Lat, anchor.Lon)
	}

	summary := &models.AirQualitySummary{
		City:     "Unknown Location",
		Category: "Unknown",
	}

	if obs, err := s.weather.FetchCurrent(ctx, anchor); err != nil {
		log.Printf("[AirQualityService] weather fetch failed: %v", err)
	} else {
		summary.City = obs.City
		t := obs.Temperature
		h := obs.Humidity
		summary.Temperature = &t
		summary.Humidity = &h
	}

	readings, err := s.Readings(ctx, anchor)
	switch {
	case err != nil:
		log.Printf("[AirQualityService] air quality fetch failed: %v", err)
		s.applyDemo(summary, demoAPIError)
	case len(readings) == 0:
		log.Printf("[AirQualityService] no stations near lat=%v lon=%v", anchor.Lat, anchor.Lon)
		s.applyDemo(summary, demoNoStation)
	default:
		summary.Readings = readings
		if pm25, ok := readings[models.KindPM25]; ok {
			v := pm25
			a := aqi.FromPM25(pm25)
			summary.PM25 = &v
			summary.AQI = &a
			summary.Category = aqi.Category(a)
		}
	}
	return summary, nil
}

func (s *AirQualityService) applyDemo(summary *models.AirQualitySummary, d demoReading) {
	pm25 := d.pm25
	a := d.aqiValue
	summary.PM25 = &pm25
	summary.AQI = &a
	summary.Category = d.category
}
