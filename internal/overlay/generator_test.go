package overlay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airaware/cleanmap-backend-go/internal/models"
)

var testAnchor = models.Anchor{Lat: 40.0, Lon: -74.0}

func TestGenerateDeterministic(t *testing.T) {
	first, err := Generate(testAnchor, models.KindPM25, 60)
	require.NoError(t, err)
	second, err := Generate(testAnchor, models.KindPM25, 60)
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated calls must produce bit-identical overlays")
}

func TestGenerateHighTierPM25(t *testing.T) {
	ov, err := Generate(testAnchor, models.KindPM25, 60)
	require.NoError(t, err)

	base := ov[0]
	assert.Equal(t, testAnchor.Lat, base.Lat)
	assert.Equal(t, testAnchor.Lon, base.Lon)
	assert.InDelta(t, 5550.0, base.RadiusMeters, 0.001)
	assert.InDelta(t, 0.3, base.Opacity, 1e-9)
	assert.Equal(t, "#e53935", base.Color)

	// 60 µg/m³ is above the pm25 high breakpoint of 55
	n := len(ov) - 2
	assert.GreaterOrEqual(t, n, 8)
	assert.LessOrEqual(t, n, 12)

	for _, hs := range ov[1 : len(ov)-1] {
		assert.InDelta(t, 0.9, hs.Opacity, 1e-9)
		assert.Equal(t, "#e53935", hs.Color)
		assert.GreaterOrEqual(t, hs.RadiusMeters, 200.0)
		assert.LessOrEqual(t, hs.RadiusMeters, 1000.0)
	}

	marker := ov[len(ov)-1]
	assert.Equal(t, testAnchor.Lat, marker.Lat)
	assert.Equal(t, testAnchor.Lon, marker.Lon)
	assert.Equal(t, "#ffffff", marker.Color)
	assert.InDelta(t, 0.9, marker.Opacity, 1e-9)
	assert.Equal(t, MarkerRadiusMeters, marker.RadiusMeters)
}

func TestGenerateZeroValueMinimumIntensity(t *testing.T) {
	ov, err := Generate(models.Anchor{Lat: 0, Lon: 0}, models.KindO3, 0)
	require.NoError(t, err)

	n := len(ov) - 2
	assert.GreaterOrEqual(t, n, 0)
	assert.LessOrEqual(t, n, 2)

	for _, hs := range ov[1 : len(ov)-1] {
		assert.InDelta(t, 0.4, hs.Opacity, 1e-9)
	}

	again, err := Generate(models.Anchor{Lat: 0, Lon: 0}, models.KindO3, 0)
	require.NoError(t, err)
	assert.Equal(t, ov, again)
}

func TestGenerateShapeCountBounds(t *testing.T) {
	for _, kind := range models.Kinds {
		for _, value := range []float64{0, 1, 10, 50, 100, 300, 1000} {
			ov, err := Generate(testAnchor, kind, value)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(ov), 2, "kind %s value %v", kind, value)
			assert.LessOrEqual(t, len(ov), 14, "kind %s value %v", kind, value)
		}
	}
}

func TestGenerateTierRanges(t *testing.T) {
	// pm25 thresholds are 12/35/55; counts must land in the tier range.
	cases := []struct {
		value  float64
		lo, hi int
	}{
		{5, 0, 2},
		{12, 0, 2},
		{20, 3, 6},
		{35, 3, 6},
		{50, 6, 9},
		{55, 6, 9},
		{60, 8, 12},
	}
	for _, tc := range cases {
		ov, err := Generate(testAnchor, models.KindPM25, tc.value)
		require.NoError(t, err)
		n := len(ov) - 2
		assert.GreaterOrEqual(t, n, tc.lo, "value %v", tc.value)
		assert.LessOrEqual(t, n, tc.hi, "value %v", tc.value)
	}
}

func TestGenerateHotspotContainment(t *testing.T) {
	ov, err := Generate(testAnchor, models.KindNO2, 200)
	require.NoError(t, err)

	// Hotspot centers stay within 0.8 of the base radius in degree space.
	maxOffset := 0.8 * 0.05
	for _, hs := range ov[1 : len(ov)-1] {
		dLat := hs.Lat - testAnchor.Lat
		dLon := hs.Lon - testAnchor.Lon
		assert.LessOrEqual(t, math.Hypot(dLat, dLon), maxOffset+1e-12)
	}
}

func TestGenerateOpacityScaling(t *testing.T) {
	// no2 high breakpoint is 180; value 90 sits halfway.
	ov, err := Generate(testAnchor, models.KindNO2, 90)
	require.NoError(t, err)
	for _, hs := range ov[1 : len(ov)-1] {
		assert.InDelta(t, 0.4+0.5*(90.0/180.0), hs.Opacity, 1e-9)
	}

	// Opacity saturates at 0.9 far beyond the high breakpoint.
	ov, err = Generate(testAnchor, models.KindNO2, 5000)
	require.NoError(t, err)
	for _, hs := range ov[1 : len(ov)-1] {
		assert.InDelta(t, 0.9, hs.Opacity, 1e-9)
	}
}

func TestGenerateDistinctLayouts(t *testing.T) {
	a, err := Generate(models.Anchor{Lat: 40.0, Lon: -74.0}, models.KindPM25, 60)
	require.NoError(t, err)
	b, err := Generate(models.Anchor{Lat: 41.0, Lon: -74.0}, models.KindPM25, 60)
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "different anchors must produce different layouts")

	c, err := Generate(models.Anchor{Lat: 40.0, Lon: -74.0}, models.KindPM10, 60)
	require.NoError(t, err)
	assert.NotEqual(t, geometryOf(a), geometryOf(c), "different kinds must produce different layouts")
}

// geometryOf strips style so layouts can be compared across kinds.
func geometryOf(ov Overlay) [][3]float64 {
	out := make([][3]float64, len(ov))
	for i, s := range ov {
		out[i] = [3]float64{s.Lat, s.Lon, s.RadiusMeters}
	}
	return out
}

func TestGenerateUnstyledSameGeometry(t *testing.T) {
	styled, err := Generate(testAnchor, models.KindSO2, 100)
	require.NoError(t, err)
	unstyled, err := GenerateUnstyled(testAnchor, models.KindSO2, 100)
	require.NoError(t, err)

	require.Equal(t, len(styled), len(unstyled))
	assert.Equal(t, geometryOf(styled), geometryOf(unstyled))

	assert.Equal(t, NeutralColor, unstyled[0].Color)
	for _, hs := range unstyled[1 : len(unstyled)-1] {
		assert.Equal(t, NeutralColor, hs.Color)
	}
	// The marker stays white on both paths.
	assert.Equal(t, "#ffffff", unstyled[len(unstyled)-1].Color)

	_, err = GenerateUnstyled(testAnchor, models.Kind("xenon"), 1)
	assert.ErrorIs(t, err, ErrUnsupportedPollutantKind)
}

func TestGenerateValidation(t *testing.T) {
	_, err := Generate(models.Anchor{Lat: 999, Lon: 0}, models.KindPM25, 10)
	assert.ErrorIs(t, err, ErrInvalidAnchor)

	_, err = Generate(models.Anchor{Lat: 0, Lon: -200}, models.KindPM25, 10)
	assert.ErrorIs(t, err, ErrInvalidAnchor)

	_, err = Generate(testAnchor, models.Kind("xenon"), 10)
	assert.ErrorIs(t, err, ErrUnsupportedPollutantKind)

	_, err = Generate(testAnchor, models.KindPM25, -5)
	assert.ErrorIs(t, err, ErrInvalidReading)
}

func TestGenerateAllShapesTagged(t *testing.T) {
	ov, err := Generate(testAnchor, models.KindCO, 12)
	require.NoError(t, err)
	for _, s := range ov {
		assert.Equal(t, ShapeTag, s.Tag)
	}
}
