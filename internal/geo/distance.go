package geo

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Distance returns the great-circle distance between two points in
// kilometres, rounded to two decimal places. It is a pure function and
// never fails for numeric input; Distance(p, p) is 0 and the result is
// symmetric in its arguments.
func Distance(p1, p2 Point) float64 {
	dLat := degreesToRadians(p2.Lat - p1.Lat)
	dLng := degreesToRadians(p2.Lng - p1.Lng)

	rLat1 := degreesToRadians(p1.Lat)
	rLat2 := degreesToRadians(p2.Lat)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return round2(earthRadiusKm * c)
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
