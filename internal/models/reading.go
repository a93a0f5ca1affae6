package models

// Kind identifies one of the raw measured pollutants.
// The derived AQI summary index is not a Kind; it is computed from pm25
// and only appears in the combined air-quality response.
type Kind string

const (
	KindPM25 Kind = "pm25"
	KindPM10 Kind = "pm10"
	KindNO2  Kind = "no2"
	KindO3   Kind = "o3"
	KindSO2  Kind = "so2"
	KindCO   Kind = "co"
)

// Kinds lists every recognized pollutant kind in a stable order.
var Kinds = []Kind{KindPM25, KindPM10, KindNO2, KindO3, KindSO2, KindCO}

// Valid reports whether k is one of the recognized pollutant kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindPM25, KindPM10, KindNO2, KindO3, KindSO2, KindCO:
		return true
	}
	return false
}

// Anchor is the geographic point a reading is centered on.
type Anchor struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the anchor lies in the valid lat/lon ranges.
func (a Anchor) Valid() bool {
	return a.Lat >= -90 && a.Lat <= 90 && a.Lon >= -180 && a.Lon <= 180
}

// Reading is a single concentration measurement in the pollutant's
// native unit. A value of 0 means "no measurement", which is rendered
// at minimum intensity rather than treated as an error.
type Reading struct {
	Kind  Kind    `json:"kind"`
	Value float64 `json:"value"`
}

// ReadingSet keys the latest measured concentration by pollutant kind.
// Kinds with no nearby measurement are absent.
type ReadingSet map[Kind]float64
