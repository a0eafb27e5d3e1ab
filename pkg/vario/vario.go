// Package vario derives vertical-speed series from a track: instantaneous
// rates between consecutive points and trailing averages over arbitrary
// look-back windows.
package vario

import (
	"time"

	"thermalyzer/pkg/model"
)

// Canonical averaging windows consumed by the thermal and glide analyzers.
const (
	Window5s  = 5 * time.Second
	Window15s = 15 * time.Second
)

// InstantRates returns the instantaneous climb rate in m/s for each point.
// Index 0 has no history and is always 0. A non-positive elapsed time
// between points yields 0 rather than an undefined value.
func InstantRates(t *model.Track) []float64 {
	rates := make([]float64, t.Len())
	for i := 1; i < t.Len(); i++ {
		elapsed := t.ElapsedSeconds(i-1, i)
		if elapsed <= 0 {
			continue
		}
		rates[i] = t.AltitudeDelta(i-1, i) / elapsed
	}
	return rates
}

// TrailingRates returns the trailing-average climb rate over the given
// window for each point. For each index the scan walks backward until it
// finds a point at least the window duration in the past; with insufficient
// history the rate degrades to the instantaneous value.
func TrailingRates(t *model.Track, window time.Duration) []float64 {
	instant := InstantRates(t)
	rates := make([]float64, t.Len())
	w := window.Seconds()

	for i := 1; i < t.Len(); i++ {
		rates[i] = instant[i]
		for j := i - 1; j >= 0; j-- {
			elapsed := t.ElapsedSeconds(j, i)
			if elapsed >= w {
				rates[i] = t.AltitudeDelta(j, i) / elapsed
				break
			}
		}
	}
	return rates
}

// Extremes returns the maximum climb and maximum sink of a rate series.
// Both are 0 for an empty series.
func Extremes(series []float64) model.RateExtremes {
	var ex model.RateExtremes
	for _, r := range series {
		if r > ex.MaxClimb {
			ex.MaxClimb = r
		}
		if r < ex.MaxSink {
			ex.MaxSink = r
		}
	}
	return ex
}

// TrackExtremes reports climb/sink extremes for the instantaneous, 5 s and
// 15 s series separately.
func TrackExtremes(t *model.Track) model.ClimbExtremes {
	return model.ClimbExtremes{
		Instant: Extremes(InstantRates(t)),
		Avg5s:   Extremes(TrailingRates(t, Window5s)),
		Avg15s:  Extremes(TrailingRates(t, Window15s)),
	}
}
