package models

// WeatherObservation is the current-conditions slice of a weather
// provider response that the combined endpoint needs.
type WeatherObservation struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"` // °C
	Humidity    int     `json:"humidity"`    // percent
}

// AirQualitySummary is the combined payload served to the map frontend.
// Field names mirror what the frontend already consumes. AQI and PM25 are
// pointers so "no station nearby" serializes as null, not zero.
type AirQualitySummary struct {
	City        string     `json:"city"`
	AQI         *int       `json:"aqi"`
	PM25        *float64   `json:"pm25"`
	Temperature *float64   `json:"temperature"`
	Humidity    *int       `json:"humidity"`
	Category    string     `json:"category"`
	Readings    ReadingSet `json:"readings,omitempty"`
}
