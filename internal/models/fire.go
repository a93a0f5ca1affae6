package models

// BBox is a geographic bounding box in EPSG:4326,
// ordered minLon, minLat, maxLon, maxLat as the fires API expects it.
type BBox struct {
	MinLon float64 `json:"min_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLon float64 `json:"max_lon"`
	MaxLat float64 `json:"max_lat"`
}

// Valid reports whether the box is well formed and inside lat/lon ranges.
func (b BBox) Valid() bool {
	return b.MinLat >= -90 && b.MaxLat <= 90 &&
		b.MinLon >= -180 && b.MaxLon <= 180 &&
		b.MinLat < b.MaxLat && b.MinLon < b.MaxLon
}

// FirePoint is one active-fire detection from the FIRMS satellite feed.
type FirePoint struct {
	Lat        float64 `json:"latitude"`
	Lon        float64 `json:"longitude"`
	Confidence string  `json:"confidence"`
	Brightness float64 `json:"brightness"`
	FRP        float64 `json:"frp"` // fire radiative power, MW
	AcqDate    string  `json:"acq_date"`
	AcqTime    string  `json:"acq_time"`
	Satellite  string  `json:"satellite"`
	Instrument string  `json:"instrument"`
	DayNight   string  `json:"daynight"`
}

// Feature is a GeoJSON point feature.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   PointGeometry          `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// PointGeometry is a GeoJSON point geometry, coordinates are [lon, lat].
type PointGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// FeatureCollection is a GeoJSON feature collection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection converts fire detections into GeoJSON for the map.
func NewFeatureCollection(fires []FirePoint) FeatureCollection {
	fc := FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}
	for _, f := range fires {
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Geometry: PointGeometry{
				Type:        "Point",
				Coordinates: [2]float64{f.Lon, f.Lat},
			},
			Properties: map[string]interface{}{
				"confidence": f.Confidence,
				"brightness": f.Brightness,
				"frp":        f.FRP,
				"acq_date":   f.AcqDate,
				"acq_time":   f.AcqTime,
				"satellite":  f.Satellite,
				"instrument": f.Instrument,
				"daynight":   f.DayNight,
			},
		})
	}
	return fc
}

// WMSInfo describes the FIRMS WMS tile layer for direct frontend use.
type WMSInfo struct {
	WMSURL      string `json:"wms_url"`
	LayerName   string `json:"layer_name"`
	TimeRange   string `json:"time_range"`
	Description string `json:"description"`
}
