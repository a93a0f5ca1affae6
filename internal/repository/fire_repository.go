package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/airaware/cleanmap-backend-go/internal/models"
)

// FireRepository caches FIRMS responses per bounding box and look-back
// window. Fire data moves slowly, so entries stay valid for hours.
type FireRepository struct {
	db *sql.DB
}

// NewFireRepository creates a new fire cache repository
func NewFireRepository(db *sql.DB) *FireRepository {
	return &FireRepository{db: db}
}

// FireCacheKey identifies one bbox + window combination.
func FireCacheKey(bbox models.BBox, days int) string {
	return fmt.Sprintf("firms_%.2f_%.2f_%.2f_%.2f_%dd",
		bbox.MinLat, bbox.MinLon, bbox.MaxLat, bbox.MaxLon, days)
}

// Get returns the cached GeoJSON for a bbox if younger than maxAge.
func (r *FireRepository) Get(bbox models.BBox, days int, maxAge time.Duration) (*models.FeatureCollection, bool, error) {
	var payload string
	var fetchedAt int64
	err := r.db.QueryRow(
		"SELECT payload, fetched_at FROM fire_cache WHERE cache_key = ?",
		FireCacheKey(bbox, days),
	).Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query fire cache: %w", err)
	}

	if time.Since(time.Unix(fetchedAt, 0)) > maxAge {
		return nil, false, nil
	}

	var fc models.FeatureCollection
	if err := json.Unmarshal([]byte(payload), &fc); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached fires: %w", err)
	}
	return &fc, true, nil
}

// Put stores the GeoJSON for a bbox, replacing any older entry.
func (r *FireRepository) Put(bbox models.BBox, days int, fc models.FeatureCollection) error {
	payload, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("failed to encode fires: %w", err)
	}
	_, err = r.db.Exec(
		"INSERT OR REPLACE INTO fire_cache (cache_key, payload, fetched_at) VALUES (?, ?, ?)",
		FireCacheKey(bbox, days), string(payload), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write fire cache: %w", err)
	}
	return nil
}
