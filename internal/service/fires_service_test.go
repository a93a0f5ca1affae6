package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/airaware/cleanmap-backend-go/internal/models"
	"github.com/airaware/cleanmap-backend-go/internal/repository"
)

type stubFireSource struct {
	fires []models.FirePoint
	err   error
	calls int
}

func (s *stubFireSource) Name() string { return "stub-fires" }

func (s *stubFireSource) FetchFires(ctx context.Context, bbox models.BBox, days int) ([]models.FirePoint, error) {
	s.calls++
	return s.fires, s.err
}

func newFireDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec(`CREATE TABLE fire_cache (cache_key TEXT PRIMARY KEY, payload TEXT NOT NULL, fetched_at INTEGER NOT NULL)`)
	require.NoError(t, err)
	return db
}

var testBBox = models.BBox{MinLon: -122.6, MinLat: 37.2, MaxLon: -121.8, MaxLat: 37.9}

func TestFiresReturnsGeoJSON(t *testing.T) {
	source := &stubFireSource{fires: []models.FirePoint{
		{Lat: 37.5, Lon: -122.0, Confidence: "high", FRP: 20.1},
		{Lat: 37.6, Lon: -122.1, Confidence: "low", FRP: 6.3},
	}}
	svc := NewFiresService(source, repository.NewFireRepository(newFireDB(t)))

	fc, err := svc.Fires(context.Background(), testBBox, 7)
	require.NoError(t, err)

	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, [2]float64{-122.0, 37.5}, fc.Features[0].Geometry.Coordinates)
	assert.Equal(t, "high", fc.Features[0].Properties["confidence"])
}

func TestFiresServedFromCache(t *testing.T) {
	source := &stubFireSource{fires: []models.FirePoint{{Lat: 37.5, Lon: -122.0}}}
	svc := NewFiresService(source, repository.NewFireRepository(newFireDB(t)))

	_, err := svc.Fires(context.Background(), testBBox, 7)
	require.NoError(t, err)
	_, err = svc.Fires(context.Background(), testBBox, 7)
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls, "second request must hit the cache")
}

func TestFiresDemoFallback(t *testing.T) {
	svc := NewFiresService(&stubFireSource{err: errors.New("firms down")},
		repository.NewFireRepository(newFireDB(t)))

	fc, err := svc.Fires(context.Background(), testBBox, 7)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(fc.Features), 2)
	assert.LessOrEqual(t, len(fc.Features), 5)
	for _, f := range fc.Features {
		lon, lat := f.Geometry.Coordinates[0], f.Geometry.Coordinates[1]
		assert.GreaterOrEqual(t, lat, testBBox.MinLat)
		assert.LessOrEqual(t, lat, testBBox.MaxLat)
		assert.GreaterOrEqual(t, lon, testBBox.MinLon)
		assert.LessOrEqual(t, lon, testBBox.MaxLon)
	}
}

func TestFiresInvalidBBox(t *testing.T) {
	svc := NewFiresService(&stubFireSource{}, repository.NewFireRepository(newFireDB(t)))

	_, err := svc.Fires(context.Background(), models.BBox{MinLon: 1, MinLat: 1, MaxLon: 0, MaxLat: 0}, 7)
	assert.Error(t, err)
}

func TestWMSInfo(t *testing.T) {
	svc := NewFiresService(&stubFireSource{}, repository.NewFireRepository(newFireDB(t)))

	info := svc.WMSInfo()
	assert.Contains(t, info.WMSURL, "firms.modaps.eosdis.nasa.gov/wms")
	assert.Contains(t, info.WMSURL, "{bbox}")
	assert.Equal(t, "VIIRS_SNPP_NPP", info.LayerName)
	assert.NotEmpty(t, info.TimeRange)
}
