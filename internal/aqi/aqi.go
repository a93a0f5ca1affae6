// Package aqi converts PM2.5 concentrations (µg/m³) to the US EPA AQI
// summary index shown in the frontend header. The index is presentation
// only; the overlay engine works on raw concentrations.
package aqi

import "math"

// FromPM25 converts a PM2.5 concentration to an AQI value using the
// simplified US EPA piecewise-linear formula.
func FromPM25(pm25 float64) int {
	switch {
	case pm25 <= 12.0:
		return round((50 / 12.0) * pm25)
	case pm25 <= 35.4:
		return round((100-51)/(35.4-12.1)*(pm25-12.1) + 51)
	case pm25 <= 55.4:
		return round((150-101)/(55.4-35.5)*(pm25-35.5) + 101)
	case pm25 <= 150.4:
		return round((200-151)/(150.4-55.5)*(pm25-55.5) + 151)
	default:
		return round((300-201)/(250.4-150.5)*(pm25-150.5) + 201)
	}
}

// Category names the health band for an AQI value.
func Category(aqi int) string {
	switch {
	case aqi <= 50:
		return "Good"
	case aqi <= 100:
		return "Moderate"
	case aqi <= 150:
		return "Unhealthy for Sensitive Groups"
	case aqi <= 200:
		return "Unhealthy"
	case aqi <= 300:
		return "Very Unhealthy"
	default:
		return "Hazardous"
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
