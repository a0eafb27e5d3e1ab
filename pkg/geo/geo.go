package geo

import "math"

const (
	earthRadiusKm = 6371.0
	// Meridian and equator circumferences in meters, used by the fast
	// equirectangular approximation.
	earthCircPolesM   = 40007863
	earthCircEquatorM = 40075017
)

// Point represents a geographic coordinate in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// DistanceKm calculates the Haversine (great-circle) distance between two
// points in kilometers. Symmetric; zero for identical points. Used wherever
// reported accuracy matters.
func DistanceKm(p1, p2 Point) float64 {
	dLat := (p2.Lat - p1.Lat) * (math.Pi / 180.0)
	dLon := (p2.Lon - p1.Lon) * (math.Pi / 180.0)
	lat1 := p1.Lat * (math.Pi / 180.0)
	lat2 := p2.Lat * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// PlanarDistanceM calculates an equirectangular approximation of the
// distance between two points in meters, scaling the longitude delta by the
// cosine of the mean latitude. Only accurate for displacements under roughly
// a kilometer; it exists for the hot paths (closing-point scan, triangle
// enumeration) where the haversine formula is materially slower.
func PlanarDistanceM(p1, p2 Point) float64 {
	dLatM := (p2.Lat - p1.Lat) / 360 * earthCircPolesM
	dLonM := (p2.Lon - p1.Lon) / 360 * earthCircEquatorM * math.Cos((p1.Lat+p2.Lat)/2*math.Pi/180)
	return math.Sqrt(dLatM*dLatM + dLonM*dLonM)
}

// Bearing calculates the initial bearing (forward azimuth) from p1 to p2 in
// degrees.
func Bearing(p1, p2 Point) float64 {
	lat1 := p1.Lat * (math.Pi / 180.0)
	lat2 := p2.Lat * (math.Pi / 180.0)
	dLon := (p2.Lon - p1.Lon) * (math.Pi / 180.0)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	brng := math.Atan2(y, x)

	return math.Mod(brng*(180.0/math.Pi)+360.0, 360.0)
}
