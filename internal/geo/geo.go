package geo

import "math"

const earthRadiusM = 6371000.0

// Point is a WGS84 coordinate pair. Callers validate ranges at the boundary;
// functions here assume finite lat in [-90,90] and lng in [-180,180].
type Point struct {
	Lat float64
	Lng float64
}

// DistanceMeters returns the great-circle distance between a and b on a
// spherical Earth. Mapping-grade accuracy, not survey-grade.
func DistanceMeters(a, b Point) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusM * c
}

func WithinRadius(a, b Point, radiusM float64) bool {
	return DistanceMeters(a, b) <= radiusM
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
