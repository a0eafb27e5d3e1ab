package model

import "time"

// ThermalEvent is one sustained climbing run. Derived, ephemeral: produced
// fresh on each analysis call, holds no reference to the Track.
type ThermalEvent struct {
	StartIndex  int           `json:"start_index"`
	EndIndex    int           `json:"end_index"`
	Duration    time.Duration `json:"duration"`
	AvgStrength float64       `json:"avg_strength"` // m/s
}

// ThermalSummary aggregates the thermal events of a flight.
type ThermalSummary struct {
	Events       []ThermalEvent `json:"events"`
	Count        int            `json:"count"`
	MeanStrength float64        `json:"mean_strength"` // mean across events, m/s
	TotalTime    time.Duration  `json:"total_time"`
	Strongest    *ThermalEvent  `json:"strongest,omitempty"`
}

// GlideStats holds glide performance results.
type GlideStats struct {
	BestLD         float64 `json:"best_ld"`
	MeanLD         float64 `json:"mean_ld"`
	LongestGlideKm float64 `json:"longest_glide_km"`
	ClimbPercent   float64 `json:"climb_percent"` // % of track time spent climbing
	Samples        int     `json:"samples"`       // kept L/D samples
	Dropped        int     `json:"dropped"`       // implausible L/D samples filtered out
}

// RateExtremes holds the max climb and max sink of one vertical-speed series.
type RateExtremes struct {
	MaxClimb float64 `json:"max_climb"` // m/s
	MaxSink  float64 `json:"max_sink"`  // m/s, negative or zero
}

// ClimbExtremes reports extremes for the instantaneous, 5 s and 15 s series
// separately.
type ClimbExtremes struct {
	Instant RateExtremes `json:"instant"`
	Avg5s   RateExtremes `json:"avg_5s"`
	Avg15s  RateExtremes `json:"avg_15s"`
}

// ClosingReason explains a closing-point decision.
type ClosingReason string

const (
	// ClosingOK marks a validated closing point.
	ClosingOK ClosingReason = "closed"
	// ClosingNoPointInRange means no point near launch was found.
	ClosingNoPointInRange ClosingReason = "no_point_in_range"
	// ClosingStayedInCircle means the flight never left the launch vicinity,
	// so the candidate is ground handling, not a closed flight.
	ClosingStayedInCircle ClosingReason = "stayed_in_circle"
)

// ClosingResult is a validated closing index or a structured rejection.
type ClosingResult struct {
	Closed bool          `json:"closed"`
	Index  int           `json:"index"` // valid only when Closed
	Reason ClosingReason `json:"reason"`
}

// TriangleReason explains a triangle-search outcome.
type TriangleReason string

const (
	// TriangleOK marks a valid triangle.
	TriangleOK TriangleReason = "ok"
	// TriangleTooFewPoints means the track has fewer than three samples.
	TriangleTooFewPoints TriangleReason = "too_few_points"
	// TriangleDegenerate means fewer than two vertices cleared the launch
	// circle; the figure is a near-zero artifact, not a flown triangle.
	TriangleDegenerate TriangleReason = "degenerate"
	// TriangleCancelled means the search was aborted via context.
	TriangleCancelled TriangleReason = "cancelled"
)

// TriangleDiagnostics supports performance regression testing.
type TriangleDiagnostics struct {
	Comparisons int64         `json:"comparisons"`
	SampleCount int           `json:"sample_count"`
	TotalPoints int           `json:"total_points"`
	Elapsed     time.Duration `json:"elapsed"`
}

// TriangleResult is the best closed three-vertex figure found, or an
// explicit rejection. Vertices are in track order.
type TriangleResult struct {
	Valid         bool                `json:"valid"`
	Vertices      [3]TrackPoint       `json:"vertices"`
	VertexIndexes [3]int              `json:"vertex_indexes"` // indexes into the full track
	PerimeterKm   float64             `json:"perimeter_km"`
	Reason        TriangleReason      `json:"reason"`
	Diagnostics   TriangleDiagnostics `json:"diagnostics"`
}

// Report is the full analysis output for one Track.
type Report struct {
	ID       string         `json:"id"`
	Header   TrackHeader    `json:"header"`
	Points   int            `json:"points"`
	Duration time.Duration  `json:"duration"`
	Extremes ClimbExtremes  `json:"extremes"`
	Thermals ThermalSummary `json:"thermals"`
	Glide    GlideStats     `json:"glide"`
	Closing  ClosingResult  `json:"closing"`
	Triangle TriangleResult `json:"triangle"`
}
