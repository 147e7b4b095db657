package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeline_MergesContiguousRunsOfSameProcess(t *testing.T) {
	p1 := NewProcess(0, 0, "", 0, 5)
	var tl Timeline

	tl.add(p1, 0, 1)
	tl.add(p1, 1, 2)
	tl.add(p1, 2, 4)

	assert.Equal(t, []Segment{{Start: 0, End: 4, Index: 0, PID: 1, Name: "P1"}}, tl.Segments)
}

func TestTimeline_SplitsAcrossIdleGapAndOtherProcesses(t *testing.T) {
	p1 := NewProcess(0, 0, "", 0, 6)
	p2 := NewProcess(1, 0, "", 0, 2)
	var tl Timeline

	tl.add(p1, 0, 2)
	tl.add(p2, 2, 4)
	tl.add(p1, 4, 5)
	tl.add(p1, 7, 10) // gap [5,7) was idle

	assert.Len(t, tl.Segments, 4)
	assert.Equal(t, int64(10), tl.EndTime())
	assert.Equal(t, int64(8), tl.BusyTime())
	assert.Equal(t, 2, tl.Switches(), "resuming after idle is not a switch")
	assert.Equal(t, map[int]int64{0: 6, 1: 2}, tl.Durations())
	assert.Len(t, tl.ForProcess(0), 3)
}

func TestTimeline_Empty(t *testing.T) {
	var tl Timeline
	assert.Equal(t, int64(0), tl.EndTime())
	assert.Equal(t, int64(0), tl.BusyTime())
	assert.Equal(t, 0, tl.Switches())
}
