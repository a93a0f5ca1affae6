package overlay

import (
	"fmt"

	"github.com/airaware/cleanmap-backend-go/internal/models"
)

// ThresholdSet holds the ascending intensity breakpoints for one
// pollutant kind, in the pollutant's native unit. Low < Medium < High,
// all positive; fixed for the process lifetime.
type ThresholdSet struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

// NeutralColor is the cosmetic gray used only by the explicit unstyled
// render path. It is never substituted for a missing palette entry.
const NeutralColor = "#9e9e9e"

const markerColor = "#ffffff"

type kindStyle struct {
	thresholds ThresholdSet
	color      string
}

// Breakpoints per kind in native units. pm10 uses the EPA 24h PM10
// breakpoints; the rest match the frontend legend.
var styles = map[models.Kind]kindStyle{
	models.KindPM25: {ThresholdSet{12, 35, 55}, "#e53935"},
	models.KindPM10: {ThresholdSet{54, 154, 254}, "#fb8c00"},
	models.KindNO2:  {ThresholdSet{40, 80, 180}, "#1e88e5"},
	models.KindO3:   {ThresholdSet{100, 160, 240}, "#43a047"},
	models.KindSO2:  {ThresholdSet{20, 80, 250}, "#8e24aa"},
	models.KindCO:   {ThresholdSet{4, 9, 15}, "#6d4c41"},
}

// Thresholds returns the breakpoints for a pollutant kind.
func Thresholds(kind models.Kind) (ThresholdSet, error) {
	s, ok := styles[kind]
	if !ok {
		return ThresholdSet{}, fmt.Errorf("%w: %q", ErrUnsupportedPollutantKind, kind)
	}
	return s.thresholds, nil
}

// Color returns the display color for a pollutant kind.
func Color(kind models.Kind) (string, error) {
	s, ok := styles[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPollutantKind, kind)
	}
	return s.color, nil
}
