package report

import (
	"fmt"
	"io"
	"strings"

	"cpu-scheduler/internal/responses"
)

const minCellWidth = 6

type ganttCell struct {
	label string
	pid   int
	start int64
	idle  bool
}

// PrintGantt draws the timeline as one bar per segment with the start time
// under each boundary. Idle gaps are drawn as their own dimmed cell.
func PrintGantt(w io.Writer, timeline responses.TimelineResponse) {
	fmt.Fprintln(w, bold("Gantt chart"))
	if len(timeline.Segments) == 0 {
		fmt.Fprintln(w, dim("(empty timeline)"))
		return
	}

	cells := ganttCells(timeline)
	width := minCellWidth
	for _, c := range cells {
		if len(c.label)+2 > width {
			width = len(c.label) + 2
		}
	}

	var bar, ticks strings.Builder
	bar.WriteString("|")
	for _, c := range cells {
		text := center(c.label, width)
		if c.idle {
			text = dim(text)
		} else {
			text = processColor(c.pid)(text)
		}
		bar.WriteString(text)
		bar.WriteString("|")
		ticks.WriteString(fmt.Sprintf("%-*d", width+1, c.start))
	}
	ticks.WriteString(fmt.Sprint(timeline.EndTime))

	fmt.Fprintln(w, bar.String())
	fmt.Fprintln(w, ticks.String())
}

func ganttCells(timeline responses.TimelineResponse) []ganttCell {
	cells := make([]ganttCell, 0, len(timeline.Segments))
	var prev int64
	for _, s := range timeline.Segments {
		if s.Start > prev {
			cells = append(cells, ganttCell{label: "idle", start: prev, idle: true})
		}
		cells = append(cells, ganttCell{label: s.Name, pid: s.ProcessId, start: s.Start})
		prev = s.End
	}
	return cells
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
