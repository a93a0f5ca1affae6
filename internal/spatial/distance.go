// Package spatial holds the little geodesy this service needs: distance
// between an anchor and a monitoring station, and offsetting an anchor
// by a bearing and range.
package spatial

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/airaware/cleanmap-backend-go/internal/models"
)

// EarthRadiusMeters is the Earth's mean radius.
const EarthRadiusMeters = 6371000.0

// Distance returns the great-circle distance between two anchors in meters.
func Distance(a, b models.Anchor) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Offset returns the anchor reached by travelling distance meters from a
// on the given initial bearing (degrees clockwise from north).
func Offset(a models.Anchor, bearing, distance float64) models.Anchor {
	bearingRad := bearing * math.Pi / 180
	angular := distance / EarthRadiusMeters

	latRad := a.Lat * math.Pi / 180
	lonRad := a.Lon * math.Pi / 180

	lat2 := math.Asin(math.Sin(latRad)*math.Cos(angular) +
		math.Cos(latRad)*math.Sin(angular)*math.Cos(bearingRad))
	lon2 := lonRad + math.Atan2(
		math.Sin(bearingRad)*math.Sin(angular)*math.Cos(latRad),
		math.Cos(angular)-math.Sin(latRad)*math.Sin(lat2))

	return models.Anchor{Lat: lat2 * 180 / math.Pi, Lon: lon2 * 180 / math.Pi}
}
