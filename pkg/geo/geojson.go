package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// OrbPoint converts a Point to orb's lon/lat ordering.
func OrbPoint(p Point) orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

// LineFeature builds a GeoJSON LineString feature from an ordered point
// sequence, e.g. a flight track for a map overlay.
func LineFeature(points []Point, props map[string]interface{}) *geojson.Feature {
	ls := make(orb.LineString, len(points))
	for i, p := range points {
		ls[i] = OrbPoint(p)
	}
	f := geojson.NewFeature(ls)
	for k, v := range props {
		f.Properties[k] = v
	}
	return f
}

// MarkerFeature builds a GeoJSON Point feature.
func MarkerFeature(p Point, props map[string]interface{}) *geojson.Feature {
	f := geojson.NewFeature(OrbPoint(p))
	for k, v := range props {
		f.Properties[k] = v
	}
	return f
}

// TriangleFeature builds a closed GeoJSON Polygon from three vertices.
func TriangleFeature(a, b, c Point, props map[string]interface{}) *geojson.Feature {
	ring := orb.Ring{OrbPoint(a), OrbPoint(b), OrbPoint(c), OrbPoint(a)}
	f := geojson.NewFeature(orb.Polygon{ring})
	for k, v := range props {
		f.Properties[k] = v
	}
	return f
}
