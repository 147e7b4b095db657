package core

// Segment is a contiguous interval [Start, End) during which one process held the CPU.
type Segment struct {
	Start int64
	End   int64
	Index int
	PID   int
	Name  string
}

func (s Segment) Duration() int64 { return s.End - s.Start }

// Timeline is the ordered list of CPU segments of one run. Idle units are
// not represented.
type Timeline struct {
	Segments []Segment
}

// add records that p ran over [start, end), extending the last segment when
// it belongs to the same process and ends exactly at start.
func (t *Timeline) add(p *Process, start, end int64) {
	if n := len(t.Segments); n > 0 {
		last := &t.Segments[n-1]
		if last.Index == p.Index && last.End == start {
			last.End = end
			return
		}
	}
	t.Segments = append(t.Segments, Segment{Start: start, End: end, Index: p.Index, PID: p.PID, Name: p.Name})
}

// EndTime is the end of the last segment, 0 for an empty timeline.
func (t *Timeline) EndTime() int64 {
	if len(t.Segments) == 0 {
		return 0
	}
	return t.Segments[len(t.Segments)-1].End
}

// BusyTime sums all segment durations.
func (t *Timeline) BusyTime() int64 {
	var busy int64
	for _, s := range t.Segments {
		busy += s.Duration()
	}
	return busy
}

// ForProcess returns the segments of the process declared at index.
func (t *Timeline) ForProcess(index int) []Segment {
	var out []Segment
	for _, s := range t.Segments {
		if s.Index == index {
			out = append(out, s)
		}
	}
	return out
}

// Durations maps each process index to its total CPU time on the timeline.
func (t *Timeline) Durations() map[int]int64 {
	out := make(map[int]int64)
	for _, s := range t.Segments {
		out[s.Index] += s.Duration()
	}
	return out
}

// Switches counts the points where the CPU passes from one process to a
// different one.
func (t *Timeline) Switches() int {
	n := 0
	for i := 1; i < len(t.Segments); i++ {
		if t.Segments[i].Index != t.Segments[i-1].Index {
			n++
		}
	}
	return n
}
