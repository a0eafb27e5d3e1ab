package closing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"thermalyzer/pkg/model"
)

// latDeg converts a northward displacement in meters to degrees of latitude
// under the equirectangular approximation.
func latDeg(meters float64) float64 {
	return meters * 360.0 / 40007863.0
}

// trackAt builds a track from northward offsets in meters relative to
// launch, one point every 30 s.
func trackAt(offsets ...float64) *model.Track {
	start := time.Date(2026, 5, 14, 11, 0, 0, 0, time.UTC)
	points := make([]model.TrackPoint, len(offsets))
	for i, off := range offsets {
		points[i] = model.NewTrackPoint(
			start.Add(time.Duration(i*30)*time.Second),
			45.93+latDeg(off), 6.63, 1000, 1000, true)
	}
	return model.NewTrack(model.TrackHeader{}, points)
}

func TestFindOutAndReturn(t *testing.T) {
	// Out to 5 km, wanders, returns within 50 m: closed at the late index.
	track := trackAt(0, 300, 1200, 2500, 5000, 4200, 2600, 900, 250, 40, 20)

	res := Find(track, 100)

	assert.True(t, res.Closed)
	assert.Equal(t, model.ClosingOK, res.Reason)
	assert.Equal(t, 10, res.Index, "backward scan finds the last in-range point first")
}

func TestFindNoPointInRange(t *testing.T) {
	// Lands away from launch: nothing within the threshold.
	track := trackAt(0, 500, 1500, 3000, 2000, 800)

	res := Find(track, 100)

	assert.False(t, res.Closed)
	assert.Equal(t, model.ClosingNoPointInRange, res.Reason)
}

func TestFindStayedInCircle(t *testing.T) {
	// Ground handling: every point inside the circle. The candidate must be
	// rejected even though plenty of points are "in range".
	track := trackAt(0, 20, 45, 60, 30, 10)

	res := Find(track, 100)

	assert.False(t, res.Closed)
	assert.Equal(t, model.ClosingStayedInCircle, res.Reason)
}

func TestFindTwoPointsSameLocation(t *testing.T) {
	// Spec scenario: a 2-point track at an identical location is not closed.
	track := trackAt(0, 0)

	res := Find(track, 100)

	assert.False(t, res.Closed)
	assert.Equal(t, model.ClosingStayedInCircle, res.Reason)
}

func TestFindDegenerateTracks(t *testing.T) {
	empty := model.NewTrack(model.TrackHeader{}, nil)
	res := Find(empty, 100)
	assert.False(t, res.Closed)
	assert.Equal(t, model.ClosingNoPointInRange, res.Reason)

	single := trackAt(0)
	res = Find(single, 100)
	assert.False(t, res.Closed)
	assert.Equal(t, model.ClosingNoPointInRange, res.Reason)
}

func TestFindCandidateIsLatestInRange(t *testing.T) {
	// Returns within range twice; the later pass wins.
	track := trackAt(0, 800, 50, 900, 60)

	res := Find(track, 100)

	assert.True(t, res.Closed)
	assert.Equal(t, 4, res.Index)
}
