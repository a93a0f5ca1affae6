package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/airaware/cleanmap-backend-go/internal/models"
)

// ReadingRepository caches fetched pollutant readings per rounded
// anchor so rapid map refreshes do not hammer the upstream API.
type ReadingRepository struct {
	db *sql.DB
}

// NewReadingRepository creates a new reading cache repository
func NewReadingRepository(db *sql.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

// CacheKey buckets nearby anchors together; three decimals is ~110 m,
// well inside the 25 km station search radius.
func CacheKey(anchor models.Anchor) string {
	return fmt.Sprintf("aq_%.3f_%.3f", anchor.Lat, anchor.Lon)
}

// Get returns the cached reading set for an anchor if one exists and is
// younger than maxAge.
func (r *ReadingRepository) Get(anchor models.Anchor, maxAge time.Duration) (models.ReadingSet, bool, error) {
	var payload string
	var fetchedAt int64
	err := r.db.QueryRow(
		"SELECT payload, fetched_at FROM reading_cache WHERE cache_key = ?",
		CacheKey(anchor),
	).Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query reading cache: %w", err)
	}

	if time.Since(time.Unix(fetchedAt, 0)) > maxAge {
		return nil, false, nil
	}

	var readings models.ReadingSet
	if err := json.Unmarshal([]byte(payload), &readings); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached readings: %w", err)
	}
	return readings, true, nil
}

// Put stores the reading set for an anchor, replacing any older entry.
func (r *ReadingRepository) Put(anchor models.Anchor, readings models.ReadingSet) error {
	payload, err := json.Marshal(readings)
	if err != nil {
		return fmt.Errorf("failed to encode readings: %w", err)
	}
	_, err = r.db.Exec(
		"INSERT OR REPLACE INTO reading_cache (cache_key, payload, fetched_at) VALUES (?, ?, ?)",
		CacheKey(anchor), string(payload), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write reading cache: %w", err)
	}
	return nil
}
