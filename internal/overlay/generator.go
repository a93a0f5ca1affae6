package overlay

import (
	"fmt"
	"math"

	"github.com/airaware/cleanmap-backend-go/internal/models"
)

// Geometry and style constants for the pollution footprint.
const (
	// BaseRadiusMeters is the fixed ambient-area radius: 0.05° at
	// ~111km per degree.
	BaseRadiusMeters = baseRadiusDeg * metersPerDegree

	baseRadiusDeg   = 0.05
	metersPerDegree = 111000.0

	baseOpacity   = 0.3
	markerOpacity = 0.9

	// MarkerRadiusMeters is the fixed radius of the center marker.
	MarkerRadiusMeters = 80.0

	hotspotMinRadiusM = 200.0
	hotspotMaxRadiusM = 1000.0

	// Hotspot centers stay within this fraction of the base radius.
	maxOffsetFactor = 0.8
)

// ShapeTag marks every shape produced by this engine so lifecycle
// bookkeeping never touches foreign shapes on a shared surface.
const ShapeTag = "aq-overlay"

// Shape is one renderable circle. Shapes are value objects; the engine
// never mutates one after creation.
type Shape struct {
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	RadiusMeters float64 `json:"radius_m"`
	Color        string  `json:"color"`
	Opacity      float64 `json:"opacity"`
	Tag          string  `json:"tag"`
}

// Overlay is the ordered shape sequence for one (anchor, reading) pair:
// one base region, zero or more hotspots, then the center marker. Order
// is draw order only.
type Overlay []Shape

// Generate produces the pollution footprint for a reading, styled with
// the kind's palette color. It is pure: the same (anchor, kind, value)
// always yields a bit-identical Overlay.
func Generate(anchor models.Anchor, kind models.Kind, value float64) (Overlay, error) {
	c, err := Color(kind)
	if err != nil {
		return nil, err
	}
	return generate(anchor, kind, value, c)
}

// GenerateUnstyled produces the same footprint geometry with the
// neutral gray fill. Threshold-driven sizing still applies, so an
// unknown kind fails here exactly as it does in Generate.
func GenerateUnstyled(anchor models.Anchor, kind models.Kind, value float64) (Overlay, error) {
	if _, err := Color(kind); err != nil {
		return nil, err
	}
	return generate(anchor, kind, value, NeutralColor)
}

func generate(anchor models.Anchor, kind models.Kind, value float64, color string) (Overlay, error) {
	if !anchor.Valid() {
		return nil, fmt.Errorf("%w: lat=%v lon=%v", ErrInvalidAnchor, anchor.Lat, anchor.Lon)
	}
	if value < 0 {
		return nil, fmt.Errorf("%w: concentration %v is negative", ErrInvalidReading, value)
	}
	ts, err := Thresholds(kind)
	if err != nil {
		return nil, err
	}

	rng := newSeq(anchor, kind)
	n := hotspotCount(value, ts, rng)

	ov := make(Overlay, 0, n+2)
	ov = append(ov, Shape{
		Lat:          anchor.Lat,
		Lon:          anchor.Lon,
		RadiusMeters: BaseRadiusMeters,
		Color:        color,
		Opacity:      baseOpacity,
		Tag:          ShapeTag,
	})

	opacity := 0.4 + 0.5*math.Min(1, value/ts.High)
	for i := 0; i < n; i++ {
		angle := rng.between(0, 2*math.Pi)
		dist := rng.between(0, maxOffsetFactor*baseRadiusDeg)
		radius := rng.between(hotspotMinRadiusM, hotspotMaxRadiusM)
		ov = append(ov, Shape{
			Lat:          anchor.Lat + dist*math.Cos(angle),
			Lon:          anchor.Lon + dist*math.Sin(angle),
			RadiusMeters: radius,
			Color:        color,
			Opacity:      opacity,
			Tag:          ShapeTag,
		})
	}

	ov = append(ov, Shape{
		Lat:          anchor.Lat,
		Lon:          anchor.Lon,
		RadiusMeters: MarkerRadiusMeters,
		Color:        markerColor,
		Opacity:      markerOpacity,
		Tag:          ShapeTag,
	})
	return ov, nil
}

// hotspotCount picks the hotspot count for the tier value falls into.
// The count is drawn from the seeded sequence so it is stable per
// (anchor, kind) while ranges step up with intensity.
func hotspotCount(value float64, ts ThresholdSet, rng *seq) int {
	var lo, hi int
	switch {
	case value <= ts.Low:
		lo, hi = 0, 2
	case value <= ts.Medium:
		lo, hi = 3, 6
	case value <= ts.High:
		lo, hi = 6, 9
	default:
		lo, hi = 8, 12
	}
	return lo + rng.intn(hi-lo+1)
}
