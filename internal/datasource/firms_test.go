package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const firmsFixture = `latitude,longitude,bright_ti4,scan,track,acq_date,acq_time,satellite,instrument,confidence,version,bright_ti5,frp,daynight
38.5,-121.2,340.1,0.39,0.36,2024-08-12,0512,NPP,VIIRS,nominal,2.0NRT,290.4,12.3,N
38.7,-121.4,352.8,0.41,0.37,2024-08-12,0512,NPP,VIIRS,high,2.0NRT,295.1,40.0,D
`

func TestParseFireCSV(t *testing.T) {
	fires, err := ParseFireCSV(firmsFixture)
	require.NoError(t, err)
	require.Len(t, fires, 2)

	assert.Equal(t, 38.5, fires[0].Lat)
	assert.Equal(t, -121.2, fires[0].Lon)
	assert.Equal(t, 340.1, fires[0].Brightness)
	assert.Equal(t, 12.3, fires[0].FRP)
	assert.Equal(t, "nominal", fires[0].Confidence)
	assert.Equal(t, "VIIRS", fires[0].Instrument)
	assert.Equal(t, "N", fires[0].DayNight)

	assert.Equal(t, "high", fires[1].Confidence)
}

func TestParseFireCSVHeaderOnly(t *testing.T) {
	fires, err := ParseFireCSV("latitude,longitude,frp\n")
	require.NoError(t, err)
	assert.Empty(t, fires)

	fires, err = ParseFireCSV("")
	require.NoError(t, err)
	assert.Empty(t, fires)
}

func TestParseFireCSVSkipsBadRows(t *testing.T) {
	body := "latitude,longitude,frp\n,-121.2,5.0\nnotanumber,-121.2,5.0\n39.0,-120.9,7.5\n"
	fires, err := ParseFireCSV(body)
	require.NoError(t, err)
	require.Len(t, fires, 1)
	assert.Equal(t, 39.0, fires[0].Lat)
	assert.Equal(t, 7.5, fires[0].FRP)
}
