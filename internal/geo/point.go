package geo

import "errors"

// Point is a geographic position in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

var (
	// ErrMissingLatitude is returned when neither latitude key is present.
	ErrMissingLatitude = errors.New("missing latitude coordinate")

	// ErrMissingLongitude is returned when neither longitude key is present.
	ErrMissingLongitude = errors.New("missing longitude coordinate")
)

// ParsePoint resolves a coordinate map into a Point. Both key conventions
// used by clients are accepted: {lat, lng} and {latitude, longitude}, with
// the short form taking precedence when both are present.
func ParsePoint(coords map[string]float64) (Point, error) {
	lat, ok := coords["lat"]
	if !ok {
		if lat, ok = coords["latitude"]; !ok {
			return Point{}, ErrMissingLatitude
		}
	}

	lng, ok := coords["lng"]
	if !ok {
		if lng, ok = coords["longitude"]; !ok {
			return Point{}, ErrMissingLongitude
		}
	}

	return Point{Lat: lat, Lng: lng}, nil
}
