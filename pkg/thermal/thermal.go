// Package thermal classifies contiguous climbing runs into discrete thermal
// events.
package thermal

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"thermalyzer/pkg/config"
	"thermalyzer/pkg/model"
)

// Segment walks the long-window trailing rate series and returns the kept
// thermal events. A point is in-thermal when its rate is at or above
// cfg.MinClimbRate; a contiguous run is kept when the elapsed time between
// its first and last point is at least cfg.MinDuration. A run still open at
// the final point is finalized by the same rule.
//
// Adjacent runs separated by even a single below-threshold point are not
// merged. That is a deliberate simplification of the segmentation, not a
// bug.
func Segment(t *model.Track, rates []float64, cfg *config.ThermalConfig) model.ThermalSummary {
	summary := model.ThermalSummary{}
	if t.Len() < 2 {
		return summary
	}

	runStart := -1
	for i := 0; i < t.Len(); i++ {
		inThermal := rates[i] >= cfg.MinClimbRate
		if inThermal && runStart == -1 {
			runStart = i
		}
		if runStart == -1 {
			continue
		}
		if inThermal && i < t.Len()-1 {
			continue
		}
		// Run ends here: either a below-threshold point, or the final point.
		runEnd := i - 1
		if inThermal {
			runEnd = i
		}
		if ev, ok := finalize(t, rates, runStart, runEnd, cfg.MinDuration.Std()); ok {
			summary.Events = append(summary.Events, ev)
		}
		runStart = -1
	}

	summary.Count = len(summary.Events)
	if summary.Count == 0 {
		return summary
	}

	strengths := make([]float64, summary.Count)
	for i := range summary.Events {
		ev := &summary.Events[i]
		strengths[i] = ev.AvgStrength
		summary.TotalTime += ev.Duration
		if summary.Strongest == nil || ev.AvgStrength > summary.Strongest.AvgStrength {
			summary.Strongest = ev
		}
	}
	summary.MeanStrength = stat.Mean(strengths, nil)
	return summary
}

// finalize applies the duration rule to a candidate run and computes its
// average strength from the in-run rates.
func finalize(t *model.Track, rates []float64, start, end int, minDuration time.Duration) (model.ThermalEvent, bool) {
	duration := time.Duration(t.ElapsedSeconds(start, end) * float64(time.Second))
	if duration < minDuration {
		return model.ThermalEvent{}, false
	}
	return model.ThermalEvent{
		StartIndex:  start,
		EndIndex:    end,
		Duration:    duration,
		AvgStrength: stat.Mean(rates[start:end+1], nil),
	}, true
}
