// Package closing finds and validates a genuine return-to-launch point.
package closing

import (
	"thermalyzer/pkg/geo"
	"thermalyzer/pkg/model"
)

// Find scans backward from the last point for the first point within
// maxDistanceM of launch (the first track point), then validates the
// candidate by requiring that some earlier point actually left the circle.
// Without that validation, ground handling or a short hop would count as a
// closed flight. Distances use the planar approximation: this is the hot
// path and every comparison is short-range.
func Find(t *model.Track, maxDistanceM float64) model.ClosingResult {
	if t.Len() < 2 {
		return model.ClosingResult{Closed: false, Reason: model.ClosingNoPointInRange}
	}

	launch := t.Point(0)
	launchPt := geo.Point{Lat: launch.Lat, Lon: launch.Lon}

	candidate := -1
	for i := t.Len() - 1; i > 0; i-- {
		p := t.Point(i)
		if geo.PlanarDistanceM(launchPt, geo.Point{Lat: p.Lat, Lon: p.Lon}) <= maxDistanceM {
			candidate = i
			break
		}
	}
	if candidate == -1 {
		return model.ClosingResult{Closed: false, Reason: model.ClosingNoPointInRange}
	}

	// Validate: the flight must have left the launch circle before the
	// candidate, otherwise it never went anywhere.
	for i := 0; i < candidate; i++ {
		p := t.Point(i)
		if geo.PlanarDistanceM(launchPt, geo.Point{Lat: p.Lat, Lon: p.Lon}) > maxDistanceM {
			return model.ClosingResult{Closed: true, Index: candidate, Reason: model.ClosingOK}
		}
	}
	return model.ClosingResult{Closed: false, Reason: model.ClosingStayedInCircle}
}
