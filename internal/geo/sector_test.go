package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySector_KnownPoints(t *testing.T) {
	cases := []struct {
		name string
		p    Point
		want string
	}{
		{"center of G8", Point{Lat: 33.695, Lng: 73.075}, "G8"},
		{"center of F10", Point{Lat: 33.670, Lng: 73.055}, "F10"},
		{"center of I9", Point{Lat: 33.680, Lng: 73.095}, "I9"},
		{"center of Blue Area", Point{Lat: 33.720, Lng: 73.040}, "Blue Area"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifySector(tc.p))
		})
	}
}

func TestClassifySector_OutsideAllBoxes(t *testing.T) {
	assert.Equal(t, SectorUnknown, ClassifySector(Point{Lat: 0, Lng: 0}))
	assert.Equal(t, SectorUnknown, ClassifySector(Point{Lat: 40.0, Lng: 73.05}))
}

func TestClassifySector_JustBelowBoundIsUnknownColumn(t *testing.T) {
	// Lat 33.70 sits just under F7's lower bound of 33.7001, so the point
	// falls into F8 (which spans up to 33.7032), not F7.
	got := ClassifySector(Point{Lat: 33.70, Lng: 73.05})
	assert.NotEqual(t, "F7", got)
	assert.Equal(t, "F8", got)
}

func TestClassifySector_BoundsInclusive(t *testing.T) {
	var g6 Sector
	for _, s := range Sectors() {
		if s.Name == "G6" {
			g6 = s
		}
	}
	require.NotEmpty(t, g6.Name)

	assert.Equal(t, "G6", ClassifySector(Point{Lat: g6.MinLat, Lng: g6.MinLng}))
	assert.Equal(t, "G6", ClassifySector(Point{Lat: g6.MaxLat, Lng: g6.MaxLng}))
}

func TestClassifySector_OverlapFirstDeclaredWins(t *testing.T) {
	// G6 and G7 overlap on the lat band [33.7126, 33.7156] in the same
	// longitude column. G6 is declared first, so it wins.
	assert.Equal(t, "G6", ClassifySector(Point{Lat: 33.714, Lng: 73.07}))
}

func TestSectors_ReturnsCopy(t *testing.T) {
	before := ClassifySector(Point{Lat: 33.714, Lng: 73.07})

	got := Sectors()
	require.NotEmpty(t, got)
	got[0].Name = "mutated"

	assert.Equal(t, before, ClassifySector(Point{Lat: 33.714, Lng: 73.07}))
}
