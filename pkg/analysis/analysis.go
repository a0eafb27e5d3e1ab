// Package analysis runs every analyzer over one immutable Track and
// assembles the full report.
package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"thermalyzer/pkg/closing"
	"thermalyzer/pkg/config"
	"thermalyzer/pkg/geo"
	"thermalyzer/pkg/glide"
	"thermalyzer/pkg/model"
	"thermalyzer/pkg/thermal"
	"thermalyzer/pkg/tracker"
	"thermalyzer/pkg/triangle"
	"thermalyzer/pkg/vario"
)

// Analyzer runs the full analysis pipeline. It holds no mutable state
// beyond outcome counters, so one Analyzer may serve many tracks
// concurrently.
type Analyzer struct {
	cfg *config.AnalysisConfig
	tr  *tracker.Tracker
	opt *triangle.Optimizer
}

// New creates an Analyzer from configuration.
func New(cfg *config.AnalysisConfig) *Analyzer {
	return &Analyzer{
		cfg: cfg,
		tr:  tracker.New(),
		opt: triangle.New(&cfg.Triangle),
	}
}

// Analyze derives all flight characteristics from the track. The input is
// read-only; every derived structure is fresh. The context is only consulted
// by the triangle search, the single superlinear component.
func (a *Analyzer) Analyze(ctx context.Context, t *model.Track) (*model.Report, error) {
	report := &model.Report{
		ID:       uuid.NewString(),
		Header:   t.Header,
		Points:   t.Len(),
		Duration: t.Duration(),
	}

	rates15 := vario.TrailingRates(t, a.cfg.Vario.LongWindow.Std())

	a.tr.TrackRun("vario")
	report.Extremes = vario.TrackExtremes(t)

	a.tr.TrackRun("thermal")
	report.Thermals = thermal.Segment(t, rates15, &a.cfg.Thermal)

	a.tr.TrackRun("glide")
	report.Glide = glide.Analyze(t, rates15, &a.cfg.Glide)

	a.tr.TrackRun("closing")
	report.Closing = closing.Find(t, a.cfg.Closing.MaxDistance.Meters())
	if !report.Closing.Closed {
		a.tr.TrackRejection("closing")
	}

	a.tr.TrackRun("triangle")
	result, err := a.opt.Search(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("triangle search aborted: %w", err)
	}
	report.Triangle = result
	if !result.Valid {
		a.tr.TrackRejection("triangle")
	}

	slog.Debug("track analyzed",
		"id", report.ID,
		"points", report.Points,
		"thermals", report.Thermals.Count,
		"closed", report.Closing.Closed,
		"triangle_km", report.Triangle.PerimeterKm)
	return report, nil
}

// Snapshot returns the per-component outcome counters.
func (a *Analyzer) Snapshot() map[string]tracker.ComponentStats {
	return a.tr.Snapshot()
}

// Overlay builds the GeoJSON overlay data for a report: the track line,
// thermal markers, the closing point and the triangle. Plain data for the
// external presentation layer; no rendering happens here.
func Overlay(t *model.Track, report *model.Report) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	line := make([]geo.Point, t.Len())
	for i := 0; i < t.Len(); i++ {
		p := t.Point(i)
		line[i] = geo.Point{Lat: p.Lat, Lon: p.Lon}
	}
	fc.Append(geo.LineFeature(line, map[string]interface{}{
		"kind":  "track",
		"pilot": t.Header.Pilot,
	}))

	for _, ev := range report.Thermals.Events {
		p := t.Point(ev.StartIndex)
		fc.Append(geo.MarkerFeature(geo.Point{Lat: p.Lat, Lon: p.Lon}, map[string]interface{}{
			"kind":         "thermal",
			"avg_strength": ev.AvgStrength,
			"duration_s":   ev.Duration.Seconds(),
		}))
	}

	if report.Closing.Closed {
		p := t.Point(report.Closing.Index)
		fc.Append(geo.MarkerFeature(geo.Point{Lat: p.Lat, Lon: p.Lon}, map[string]interface{}{
			"kind": "closing_point",
		}))
	}

	if report.Triangle.Valid {
		v := report.Triangle.Vertices
		fc.Append(geo.TriangleFeature(
			geo.Point{Lat: v[0].Lat, Lon: v[0].Lon},
			geo.Point{Lat: v[1].Lat, Lon: v[1].Lon},
			geo.Point{Lat: v[2].Lat, Lon: v[2].Lon},
			map[string]interface{}{
				"kind":         "triangle",
				"perimeter_km": report.Triangle.PerimeterKm,
			}))
	}

	return fc
}
