package geo

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name string
		p1   Point
		p2   Point
		want float64 // km
	}{
		{
			name: "Same Point",
			p1:   Point{Lat: 46.5, Lon: 6.5},
			p2:   Point{Lat: 46.5, Lon: 6.5},
			want: 0,
		},
		{
			name: "London to Paris",
			p1:   Point{Lat: 51.5074, Lon: -0.1278},
			p2:   Point{Lat: 48.8566, Lon: 2.3522},
			want: 344,
		},
		{
			name: "Equator 1 degree",
			p1:   Point{Lat: 0, Lon: 0},
			p2:   Point{Lat: 0, Lon: 1},
			want: 111.319,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.p1, tt.p2)
			// Allow 1% margin due to earth radius variation
			margin := tt.want * 0.01
			if math.Abs(got-tt.want) > margin && tt.want != 0 {
				t.Errorf("DistanceKm() = %v, want %v (+/- %v)", got, tt.want, margin)
			}
		})
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	p1 := Point{Lat: 45.931, Lon: 6.628} // Annecy
	p2 := Point{Lat: 45.899, Lon: 6.712}
	if d1, d2 := DistanceKm(p1, p2), DistanceKm(p2, p1); d1 != d2 {
		t.Errorf("DistanceKm not symmetric: %v != %v", d1, d2)
	}
}

func TestPlanarDistanceM(t *testing.T) {
	// At short range the approximation must agree with haversine closely.
	p1 := Point{Lat: 45.9310, Lon: 6.6280}
	p2 := Point{Lat: 45.9355, Lon: 6.6340}

	planar := PlanarDistanceM(p1, p2)
	haversine := DistanceKm(p1, p2) * 1000

	if math.Abs(planar-haversine) > haversine*0.01 {
		t.Errorf("PlanarDistanceM() = %v, haversine = %v, diverge > 1%%", planar, haversine)
	}
	if planar <= 0 {
		t.Errorf("PlanarDistanceM() = %v, want > 0", planar)
	}
}

func TestPlanarDistanceMZero(t *testing.T) {
	p := Point{Lat: 45.9310, Lon: 6.6280}
	if d := PlanarDistanceM(p, p); d != 0 {
		t.Errorf("PlanarDistanceM(p, p) = %v, want 0", d)
	}
}

func TestBearing(t *testing.T) {
	tests := []struct {
		name string
		p1   Point
		p2   Point
		want float64 // degrees
	}{
		{"Due North", Point{Lat: 45, Lon: 6}, Point{Lat: 46, Lon: 6}, 0},
		{"Due East", Point{Lat: 0, Lon: 6}, Point{Lat: 0, Lon: 7}, 90},
		{"Due South", Point{Lat: 46, Lon: 6}, Point{Lat: 45, Lon: 6}, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bearing(tt.p1, tt.p2)
			if math.Abs(got-tt.want) > 0.5 {
				t.Errorf("Bearing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTriangleFeature(t *testing.T) {
	a := Point{Lat: 46, Lon: 6}
	b := Point{Lat: 46.1, Lon: 6}
	c := Point{Lat: 46.05, Lon: 6.1}

	f := TriangleFeature(a, b, c, map[string]interface{}{"perimeter_km": 30.0})
	if f.Geometry.GeoJSONType() != "Polygon" {
		t.Fatalf("geometry type = %s, want Polygon", f.Geometry.GeoJSONType())
	}
	if f.Properties["perimeter_km"] != 30.0 {
		t.Errorf("perimeter property = %v, want 30.0", f.Properties["perimeter_km"])
	}
}
