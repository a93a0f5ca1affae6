package datasource

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/airaware/cleanmap-backend-go/internal/models"
)

const firmsBaseURL = "https://firms.modaps.eosdis.nasa.gov/api"

// MaxFireDays caps the FIRMS look-back window; the API rejects more.
const MaxFireDays = 31

// FIRMSSource fetches active-fire detections from the NASA FIRMS area
// CSV API (VIIRS 375m).
type FIRMSSource struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

var _ FireSource = (*FIRMSSource)(nil)

// NewFIRMSSource creates a FIRMS client.
func NewFIRMSSource(apiKey string) *FIRMSSource {
	return &FIRMSSource{
		apiKey:  apiKey,
		baseURL: firmsBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Name returns the name of this data source
func (f *FIRMSSource) Name() string {
	return "NASA FIRMS"
}

// FetchFires fetches fire detections inside bbox for the past `days`
// days. The CSV columns vary between VIIRS and MODIS products, so rows
// are read by header name and unknown columns are ignored.
func (f *FIRMSSource) FetchFires(ctx context.Context, bbox models.BBox, days int) ([]models.FirePoint, error) {
	if days > MaxFireDays {
		days = MaxFireDays
	}
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	url := fmt.Sprintf("%s/area/csv/%s/VIIRS_SNPP_NPP/%s/%s",
		f.baseURL, f.apiKey,
		start.Format("2006-01-02"), end.Format("2006-01-02"))
	url += fmt.Sprintf("?area=%f,%f,%f,%f", bbox.MinLat, bbox.MinLon, bbox.MaxLat, bbox.MaxLon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FIRMS returned non-200 status: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return ParseFireCSV(string(raw))
}

// ParseFireCSV parses the FIRMS area CSV into fire points. A body with
// only a header (or nothing) yields an empty slice, not an error.
func ParseFireCSV(body string) ([]models.FirePoint, error) {
	r := csv.NewReader(strings.NewReader(body))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse FIRMS CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[strings.TrimSpace(name)] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	num := func(row []string, name string) float64 {
		v, _ := strconv.ParseFloat(field(row, name), 64)
		return v
	}

	var fires []models.FirePoint
	for _, row := range records[1:] {
		lat := field(row, "latitude")
		lon := field(row, "longitude")
		if lat == "" || lon == "" {
			continue
		}
		latF, err1 := strconv.ParseFloat(lat, 64)
		lonF, err2 := strconv.ParseFloat(lon, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		brightness := num(row, "bright_ti4")
		if brightness == 0 {
			brightness = num(row, "brightness")
		}
		fires = append(fires, models.FirePoint{
			Lat:        latF,
			Lon:        lonF,
			Confidence: field(row, "confidence"),
			Brightness: brightness,
			FRP:        num(row, "frp"),
			AcqDate:    field(row, "acq_date"),
			AcqTime:    field(row, "acq_time"),
			Satellite:  field(row, "satellite"),
			Instrument: field(row, "instrument"),
			DayNight:   field(row, "daynight"),
		})
	}
	return fires, nil
}
