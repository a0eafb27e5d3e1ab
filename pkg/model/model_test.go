package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPoints(n int) []TrackPoint {
	start := time.Date(2026, 5, 14, 11, 0, 0, 0, time.UTC)
	points := make([]TrackPoint, n)
	for i := range points {
		points[i] = NewTrackPoint(start.Add(time.Duration(i)*time.Minute), 45.93, 6.63, 1000+i, 1010+i, true)
	}
	return points
}

func TestNewTrackPointPressureValidity(t *testing.T) {
	ts := time.Date(2026, 5, 14, 11, 0, 0, 0, time.UTC)

	p := NewTrackPoint(ts, 45.93, 6.63, 850, 900, true)
	assert.True(t, p.PressureAltValid)

	// Non-positive pressure altitude means "not available".
	p = NewTrackPoint(ts, 45.93, 6.63, 0, 900, true)
	assert.False(t, p.PressureAltValid)
	p = NewTrackPoint(ts, 45.93, 6.63, -1, 900, true)
	assert.False(t, p.PressureAltValid)
}

func TestNewTrackCopiesInput(t *testing.T) {
	points := testPoints(3)
	track := NewTrack(TrackHeader{}, points)

	// Mutating the caller's slice must not reach the track.
	points[0].GPSAlt = 9999
	assert.NotEqual(t, 9999, track.Point(0).GPSAlt)
}

func TestPointsReturnsCopy(t *testing.T) {
	track := NewTrack(TrackHeader{}, testPoints(3))

	ps := track.Points()
	ps[1].GPSAlt = 9999
	assert.NotEqual(t, 9999, track.Point(1).GPSAlt)
}

func TestTrim(t *testing.T) {
	track := NewTrack(TrackHeader{Pilot: "test"}, testPoints(5))

	sub, err := track.Trim(1, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, sub.Len())
	assert.Equal(t, track.Point(1), sub.Point(0))
	assert.Equal(t, track.Point(3), sub.Point(2))
	assert.Equal(t, "test", sub.Header.Pilot)
}

func TestTrimInvalidRanges(t *testing.T) {
	track := NewTrack(TrackHeader{}, testPoints(5))

	tests := []struct {
		name       string
		start, end int
	}{
		{"NegativeStart", -1, 3},
		{"EndOutOfBounds", 0, 5},
		{"StartAfterEnd", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := track.Trim(tt.start, tt.end)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestTrimFullRange(t *testing.T) {
	track := NewTrack(TrackHeader{}, testPoints(4))

	sub, err := track.Trim(0, 3)
	require.NoError(t, err)
	assert.Equal(t, track.Points(), sub.Points())
}

func TestDuration(t *testing.T) {
	track := NewTrack(TrackHeader{}, testPoints(11))
	assert.Equal(t, 10*time.Minute, track.Duration())

	assert.Equal(t, time.Duration(0), NewTrack(TrackHeader{}, nil).Duration())
	assert.Equal(t, time.Duration(0), NewTrack(TrackHeader{}, testPoints(1)).Duration())
}

func TestDurationMidnightCrossing(t *testing.T) {
	// Logger records time of day only: launch 23:50, land "00:10" the same
	// calendar day. Duration is 20 minutes, not negative.
	day := time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC)
	points := []TrackPoint{
		NewTrackPoint(day.Add(23*time.Hour+50*time.Minute), 45.93, 6.63, 800, 800, true),
		NewTrackPoint(day.Add(10*time.Minute), 45.93, 6.63, 795, 795, true),
	}
	track := NewTrack(TrackHeader{}, points)

	assert.Equal(t, 20*time.Minute, track.Duration())
	assert.Equal(t, 1200.0, track.ElapsedSeconds(0, 1))
}

func TestAltitudeDelta(t *testing.T) {
	ts := time.Date(2026, 5, 14, 11, 0, 0, 0, time.UTC)

	t.Run("PrefersPressure", func(t *testing.T) {
		points := []TrackPoint{
			NewTrackPoint(ts, 45.93, 6.63, 1000, 1100, true),
			NewTrackPoint(ts.Add(time.Minute), 45.93, 6.63, 1050, 1200, true),
		}
		track := NewTrack(TrackHeader{}, points)
		assert.Equal(t, 50.0, track.AltitudeDelta(0, 1))
	})

	t.Run("FallsBackToGPS", func(t *testing.T) {
		points := []TrackPoint{
			NewTrackPoint(ts, 45.93, 6.63, 1000, 1100, true),
			NewTrackPoint(ts.Add(time.Minute), 45.93, 6.63, 0, 1200, true), // baro lost
		}
		track := NewTrack(TrackHeader{}, points)
		assert.Equal(t, 100.0, track.AltitudeDelta(0, 1))
	})
}

func TestLaunch(t *testing.T) {
	track := NewTrack(TrackHeader{}, testPoints(2))
	launch, ok := track.Launch()
	assert.True(t, ok)
	assert.Equal(t, track.Point(0), launch)

	_, ok = NewTrack(TrackHeader{}, nil).Launch()
	assert.False(t, ok)
}
