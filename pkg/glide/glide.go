// Package glide computes lift-to-drag ratios and glide-distance statistics
// during sink phases.
package glide

import (
	"gonum.org/v1/gonum/stat"

	"thermalyzer/pkg/config"
	"thermalyzer/pkg/geo"
	"thermalyzer/pkg/model"
)

// Analyze walks the track in order and classifies every transition by its
// long-window trailing rate and instantaneous ground speed: climbing resets
// the running glide accumulator, gliding accumulates distance and samples an
// L/D ratio, anything else is neutral. L/D samples outside the plausible
// (0, MaxLD) range are silently dropped per the documented policy; only
// their count is reported.
func Analyze(t *model.Track, rates []float64, cfg *config.GlideConfig) model.GlideStats {
	stats := model.GlideStats{}
	if t.Len() < 2 {
		return stats
	}

	var (
		currentGlideKm float64
		climbSeconds   float64
		ldSamples      []float64
	)

	for i := 1; i < t.Len(); i++ {
		elapsed := t.ElapsedSeconds(i-1, i)
		speedKmh := groundSpeedKmh(t, i, elapsed)

		switch {
		case rates[i] > cfg.ClimbRate:
			climbSeconds += elapsed
			if currentGlideKm > stats.LongestGlideKm {
				stats.LongestGlideKm = currentGlideKm
			}
			currentGlideKm = 0
		case rates[i] < cfg.SinkRate && speedKmh > cfg.MinGroundSpeedKmh:
			p1, p2 := t.Point(i-1), t.Point(i)
			currentGlideKm += geo.PlanarDistanceM(
				geo.Point{Lat: p1.Lat, Lon: p1.Lon},
				geo.Point{Lat: p2.Lat, Lon: p2.Lon}) / 1000

			ld := (speedKmh / 3.6) / -rates[i]
			if ld > 0 && ld < cfg.MaxLD {
				ldSamples = append(ldSamples, ld)
				if ld > stats.BestLD {
					stats.BestLD = ld
				}
			} else {
				stats.Dropped++
			}
		}
	}

	// Finalize the glide segment still open at the last point.
	if currentGlideKm > stats.LongestGlideKm {
		stats.LongestGlideKm = currentGlideKm
	}

	stats.Samples = len(ldSamples)
	if stats.Samples > 0 {
		stats.MeanLD = stat.Mean(ldSamples, nil)
	}
	if total := t.Duration().Seconds(); total > 0 {
		stats.ClimbPercent = climbSeconds / total * 100
	}
	return stats
}

// groundSpeedKmh is the instantaneous ground speed at point i, from the
// planar distance to the previous point. Fast approximation on purpose:
// consecutive fixes are well under the formula's range limit.
func groundSpeedKmh(t *model.Track, i int, elapsed float64) float64 {
	if elapsed <= 0 {
		return 0
	}
	p1, p2 := t.Point(i-1), t.Point(i)
	meters := geo.PlanarDistanceM(
		geo.Point{Lat: p1.Lat, Lon: p1.Lon},
		geo.Point{Lat: p2.Lat, Lon: p2.Lon})
	return meters / elapsed * 3.6
}
