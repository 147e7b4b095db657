package core

import (
	"fmt"
	"math"
)

// Unset is the value of CompletionTime and FirstRunTime before they are recorded.
const Unset int64 = -1

// ProcessState is the lifecycle position of a process at a given clock.
type ProcessState string

const (
	StateNotArrived ProcessState = "not-arrived"
	StateReady      ProcessState = "ready"
	StateFinished   ProcessState = "finished"
)

// Process is one simulated job. Index, PID, Name, ArrivalTime and BurstTime
// are fixed at creation; RemainingTime, CompletionTime and FirstRunTime are
// written only by the CPU while it runs.
type Process struct {
	Index       int // declaration order, used for tie-breaking
	PID         int
	Name        string
	ArrivalTime int64
	BurstTime   int64

	RemainingTime  int64
	CompletionTime int64
	FirstRunTime   int64
}

// NewProcess creates a record with its full burst remaining. A zero pid
// defaults to index+1 and an empty name to "P<pid>".
func NewProcess(index, pid int, name string, arrival, burst int64) *Process {
	if pid == 0 {
		pid = index + 1
	}
	if name == "" {
		name = fmt.Sprintf("P%d", pid)
	}
	return &Process{
		Index:          index,
		PID:            pid,
		Name:           name,
		ArrivalTime:    arrival,
		BurstTime:      burst,
		RemainingTime:  burst,
		CompletionTime: Unset,
		FirstRunTime:   Unset,
	}
}

func (p *Process) Finished() bool { return p.RemainingTime == 0 }

func (p *Process) Arrived(clock int64) bool { return p.ArrivalTime <= clock }

// Ready reports whether the process may be picked at clock.
func (p *Process) Ready(clock int64) bool { return p.Arrived(clock) && !p.Finished() }

func (p *Process) Completed() bool { return p.CompletionTime != Unset }

func (p *Process) Started() bool { return p.FirstRunTime != Unset }

// State classifies the process at clock.
func (p *Process) State(clock int64) ProcessState {
	switch {
	case p.Finished():
		return StateFinished
	case !p.Arrived(clock):
		return StateNotArrived
	default:
		return StateReady
	}
}

func (p *Process) String() string {
	return fmt.Sprintf("%s(arrival=%d, burst=%d, remaining=%d)", p.Name, p.ArrivalTime, p.BurstTime, p.RemainingTime)
}

// clone returns an independent copy so a run never mutates caller records.
func (p *Process) clone() *Process {
	c := *p
	return &c
}

// run executes the process for d units starting at from.
func (p *Process) run(from, d int64) {
	if !p.Started() {
		p.FirstRunTime = from
	}
	p.RemainingTime -= d
	if p.RemainingTime == 0 {
		p.CompletionTime = from + d
	}
}

// Validate rejects process sets the CPU must not start with. Every record must
// be fresh, as built by NewProcess, and carry its own Index.
func Validate(procs []*Process) error {
	if len(procs) == 0 {
		return fmt.Errorf("%w: no processes", ErrInvalidInput)
	}
	seen := make(map[int]string, len(procs))
	var totalBurst, lastArrival int64
	for _, p := range procs {
		if p == nil {
			return fmt.Errorf("%w: nil process record", ErrInvalidInput)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: %s has negative arrival time %d", ErrInvalidInput, p.Name, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: %s has non-positive burst time %d", ErrInvalidInput, p.Name, p.BurstTime)
		}
		if p.RemainingTime != p.BurstTime || p.CompletionTime != Unset || p.FirstRunTime != Unset {
			return fmt.Errorf("%w: %s has already been run (remaining=%d, completion=%d, first run=%d)",
				ErrInvalidInput, p.Name, p.RemainingTime, p.CompletionTime, p.FirstRunTime)
		}
		if other, dup := seen[p.Index]; dup {
			return fmt.Errorf("%w: %s and %s share index %d", ErrInvalidInput, other, p.Name, p.Index)
		}
		seen[p.Index] = p.Name

		if totalBurst > math.MaxInt64-p.BurstTime {
			return fmt.Errorf("%w: total burst time overflows the clock", ErrInvalidInput)
		}
		totalBurst += p.BurstTime
		lastArrival = max(lastArrival, p.ArrivalTime)
	}
	if lastArrival >= math.MaxInt64-totalBurst {
		return fmt.Errorf("%w: last arrival %d plus total burst overflows the clock", ErrInvalidInput, lastArrival)
	}
	return nil
}
