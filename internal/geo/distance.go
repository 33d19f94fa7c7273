// Package geo holds the great-circle math used to rank attractions by
// proximity to a device.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius.
const EarthRadiusKm = 6371.0

type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Distance returns the haversine distance between from and to in kilometers,
// rounded to one decimal. An unknown origin yields 0.
func Distance(from *Point, to Point) float64 {
	if from == nil {
		return 0
	}

	lat1, lat2 := toRad(from.Latitude), toRad(to.Latitude)
	dLat := lat2 - lat1
	dLon := toRad(to.Longitude - from.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push h just past 1 for antipodal points
	h = math.Min(1, h)

	km := 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
	return math.Round(km*10) / 10
}

// ValidCoordinates reports whether lat and lon are decimal degrees in range.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
