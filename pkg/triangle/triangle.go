// Package triangle searches for the maximum-perimeter closed triangle over
// a time-sampled subset of the track.
//
// The search is a sampling-based heuristic, not a provably optimal
// algorithm: the sampling interval is the precision/performance knob, and
// shrinking it increases both precision and cost monotonically. Consumers
// rely on the scores it produces, so the heuristic is preserved as-is
// rather than upgraded to an exact method.
package triangle

import (
	"context"
	"time"

	"thermalyzer/pkg/config"
	"thermalyzer/pkg/geo"
	"thermalyzer/pkg/model"
)

// Optimizer holds the search parameters.
type Optimizer struct {
	// SampleInterval is the minimum time between consecutive samples.
	SampleInterval time.Duration
	// ClosingDistanceM is the launch-circle radius used to reject
	// degenerate results, in meters.
	ClosingDistanceM float64
}

// New builds an Optimizer from configuration.
func New(cfg *config.TriangleConfig) *Optimizer {
	return &Optimizer{
		SampleInterval:   cfg.SampleInterval.Std(),
		ClosingDistanceM: cfg.ClosingDistance.Meters(),
	}
}

// Search enumerates all ordered vertex triples over the sampled points with
// the cheap planar distance, re-measures the winner with the great-circle
// formula, and validates it against the launch circle. The context is
// checked between outer iterations so an interactive host can abort the
// O(m^3) scan.
func (o *Optimizer) Search(ctx context.Context, t *model.Track) (model.TriangleResult, error) {
	start := time.Now()
	samples := o.sampleIndexes(t)

	result := model.TriangleResult{
		Diagnostics: model.TriangleDiagnostics{
			SampleCount: len(samples),
			TotalPoints: t.Len(),
		},
	}

	if len(samples) < 3 {
		result.Reason = model.TriangleTooFewPoints
		result.Diagnostics.Elapsed = time.Since(start)
		return result, nil
	}

	coords := make([]geo.Point, len(samples))
	for i, idx := range samples {
		p := t.Point(idx)
		coords[i] = geo.Point{Lat: p.Lat, Lon: p.Lon}
	}

	var (
		bestPerimeter       float64
		bestI, bestJ, bestK = -1, -1, -1
	)
	for i := 0; i < len(samples)-2; i++ {
		select {
		case <-ctx.Done():
			result.Reason = model.TriangleCancelled
			result.Diagnostics.Elapsed = time.Since(start)
			return result, ctx.Err()
		default:
		}
		for j := i + 1; j < len(samples)-1; j++ {
			dij := geo.PlanarDistanceM(coords[i], coords[j])
			for k := j + 1; k < len(samples); k++ {
				perimeter := dij +
					geo.PlanarDistanceM(coords[j], coords[k]) +
					geo.PlanarDistanceM(coords[i], coords[k])
				result.Diagnostics.Comparisons++
				if perimeter > bestPerimeter {
					bestPerimeter = perimeter
					bestI, bestJ, bestK = i, j, k
				}
			}
		}
	}

	if bestI == -1 {
		result.Reason = model.TriangleDegenerate
		result.Diagnostics.Elapsed = time.Since(start)
		return result, nil
	}

	vertices := [3]model.TrackPoint{
		t.Point(samples[bestI]),
		t.Point(samples[bestJ]),
		t.Point(samples[bestK]),
	}

	// Degenerate unless at least two vertices cleared the launch circle:
	// otherwise the "triangle" is a near-zero artifact of ground handling.
	launch, _ := t.Launch()
	launchPt := geo.Point{Lat: launch.Lat, Lon: launch.Lon}
	cleared := 0
	for _, v := range vertices {
		if geo.PlanarDistanceM(launchPt, geo.Point{Lat: v.Lat, Lon: v.Lon}) > o.ClosingDistanceM {
			cleared++
		}
	}
	if cleared < 2 {
		result.Reason = model.TriangleDegenerate
		result.Diagnostics.Elapsed = time.Since(start)
		return result, nil
	}

	// Re-measure the winner with the great-circle formula for reporting.
	result.Valid = true
	result.Reason = model.TriangleOK
	result.Vertices = vertices
	result.VertexIndexes = [3]int{samples[bestI], samples[bestJ], samples[bestK]}
	result.PerimeterKm = geo.DistanceKm(coords[bestI], coords[bestJ]) +
		geo.DistanceKm(coords[bestJ], coords[bestK]) +
		geo.DistanceKm(coords[bestI], coords[bestK])
	result.Diagnostics.Elapsed = time.Since(start)
	return result, nil
}

// sampleIndexes reduces the track to the first point, every point at least
// SampleInterval after the previous sample, and always the final point.
func (o *Optimizer) sampleIndexes(t *model.Track) []int {
	if t.Len() == 0 {
		return nil
	}
	interval := o.SampleInterval.Seconds()
	samples := []int{0}
	last := 0
	for i := 1; i < t.Len(); i++ {
		if t.ElapsedSeconds(last, i) >= interval {
			samples = append(samples, i)
			last = i
		}
	}
	if samples[len(samples)-1] != t.Len()-1 {
		samples = append(samples, t.Len()-1)
	}
	return samples
}
