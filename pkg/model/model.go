package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRange is returned by Trim for out-of-bounds or inverted ranges.
var ErrInvalidRange = errors.New("invalid track range")

// halfDay is the threshold for the midnight-crossing correction: IGC-style
// loggers record time of day only, so a successor point that appears to be
// earlier than its predecessor by more than 12 hours crossed midnight.
const halfDay = 12 * time.Hour

// TrackPoint is one timestamped GPS+altitude sample.
// Pressure altitude is marked unavailable by the parser via a non-positive
// value; we carry an explicit validity flag instead of the sign sentinel.
type TrackPoint struct {
	Time             time.Time `json:"time"`
	Lat              float64   `json:"lat"`
	Lon              float64   `json:"lon"`
	PressureAlt      int       `json:"pressure_alt"`
	PressureAltValid bool      `json:"pressure_alt_valid"`
	GPSAlt           int       `json:"gps_alt"`
	Valid            bool      `json:"valid"` // GPS fix quality
}

// NewTrackPoint builds a point, mapping a non-positive pressure altitude to
// "unavailable".
func NewTrackPoint(ts time.Time, lat, lon float64, pressureAlt, gpsAlt int, valid bool) TrackPoint {
	return TrackPoint{
		Time:             ts,
		Lat:              lat,
		Lon:              lon,
		PressureAlt:      pressureAlt,
		PressureAltValid: pressureAlt > 0,
		GPSAlt:           gpsAlt,
		Valid:            valid,
	}
}

// TrackHeader holds flight metadata from the log header.
type TrackHeader struct {
	Date           time.Time      `json:"date"`
	Pilot          string         `json:"pilot"`
	Glider         string         `json:"glider"`
	GliderID       string         `json:"glider_id"`
	TimezoneOffset *time.Duration `json:"timezone_offset,omitempty"`
}

// Track is an immutable ordered sequence of TrackPoints plus header
// metadata. Points are non-decreasing by timestamp except across the
// documented midnight crossing. Once built, neither the sequence nor its
// points are ever mutated.
type Track struct {
	Header TrackHeader
	points []TrackPoint
}

// NewTrack builds a Track, copying the point slice so the caller cannot
// mutate it afterwards.
func NewTrack(header TrackHeader, points []TrackPoint) *Track {
	ps := make([]TrackPoint, len(points))
	copy(ps, points)
	return &Track{Header: header, points: ps}
}

// Len returns the number of points.
func (t *Track) Len() int {
	return len(t.points)
}

// Point returns the point at index i.
func (t *Track) Point(i int) TrackPoint {
	return t.points[i]
}

// Points returns a copy of the point sequence.
func (t *Track) Points() []TrackPoint {
	ps := make([]TrackPoint, len(t.points))
	copy(ps, t.points)
	return ps
}

// Launch returns the first point of the track.
func (t *Track) Launch() (TrackPoint, bool) {
	if len(t.points) == 0 {
		return TrackPoint{}, false
	}
	return t.points[0], true
}

// Trim returns a new Track restricted to [start, end] inclusive. The backing
// storage is deep-copied: Go slices alias, so sharing it would let another
// owner observe a mutation through the trimmed view.
func (t *Track) Trim(start, end int) (*Track, error) {
	if start < 0 || end >= len(t.points) || start > end {
		return nil, fmt.Errorf("%w: [%d, %d] of %d points", ErrInvalidRange, start, end, len(t.points))
	}
	ps := make([]TrackPoint, end-start+1)
	copy(ps, t.points[start:end+1])
	return &Track{Header: t.Header, points: ps}, nil
}

// ElapsedSeconds returns the elapsed time in seconds between points i and j
// (j after i), corrected for a midnight crossing.
func (t *Track) ElapsedSeconds(i, j int) float64 {
	d := t.points[j].Time.Sub(t.points[i].Time)
	if d < -halfDay {
		d += 24 * time.Hour
	}
	return d.Seconds()
}

// Duration returns the total flight duration. Tracks with fewer than 2
// points have zero duration.
func (t *Track) Duration() time.Duration {
	if len(t.points) < 2 {
		return 0
	}
	return time.Duration(t.ElapsedSeconds(0, len(t.points)-1) * float64(time.Second))
}

// AltitudeDelta returns the altitude difference in meters between points i
// and j, preferring pressure altitude when both points carry a valid one and
// falling back to GPS altitude otherwise.
func (t *Track) AltitudeDelta(i, j int) float64 {
	pi, pj := t.points[i], t.points[j]
	if pi.PressureAltValid && pj.PressureAltValid {
		return float64(pj.PressureAlt - pi.PressureAlt)
	}
	return float64(pj.GPSAlt - pi.GPSAlt)
}
