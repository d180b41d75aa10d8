package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	p := Point{Lat: 33.6844, Lng: 73.0479}
	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistance_Symmetric(t *testing.T) {
	a := Point{Lat: 33.6844, Lng: 73.0479}
	b := Point{Lat: 33.7294, Lng: 73.0931}
	assert.Equal(t, Distance(a, b), Distance(b, a))
}

func TestDistance_OneDegreeAtEquator(t *testing.T) {
	// One degree of longitude on the equator is R * pi/180 km.
	got := Distance(Point{Lat: 0, Lng: 0}, Point{Lat: 0, Lng: 1})
	assert.Equal(t, 111.19, got)
}

func TestDistance_RoundedToTwoDecimals(t *testing.T) {
	got := Distance(Point{Lat: 33.6844, Lng: 73.0479}, Point{Lat: 33.7294, Lng: 73.0931})
	assert.Equal(t, got, float64(int(got*100))/100)
	assert.Greater(t, got, 0.0)
}

func TestParsePoint_ShortKeys(t *testing.T) {
	p, err := ParsePoint(map[string]float64{"lat": 33.7, "lng": 73.05})
	require.NoError(t, err)
	assert.Equal(t, Point{Lat: 33.7, Lng: 73.05}, p)
}

func TestParsePoint_LongKeys(t *testing.T) {
	p, err := ParsePoint(map[string]float64{"latitude": 33.7, "longitude": 73.05})
	require.NoError(t, err)
	assert.Equal(t, Point{Lat: 33.7, Lng: 73.05}, p)
}

func TestParsePoint_ShortKeysTakePrecedence(t *testing.T) {
	p, err := ParsePoint(map[string]float64{
		"lat": 1, "lng": 2,
		"latitude": 3, "longitude": 4,
	})
	require.NoError(t, err)
	assert.Equal(t, Point{Lat: 1, Lng: 2}, p)
}

func TestParsePoint_MissingKeys(t *testing.T) {
	_, err := ParsePoint(map[string]float64{"lng": 73.05})
	assert.ErrorIs(t, err, ErrMissingLatitude)

	_, err = ParsePoint(map[string]float64{"lat": 33.7})
	assert.ErrorIs(t, err, ErrMissingLongitude)

	_, err = ParsePoint(nil)
	assert.ErrorIs(t, err, ErrMissingLatitude)
}
