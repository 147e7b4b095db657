package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
)

// RoundRobin cycles a FIFO ready queue, giving each process at most
// TimeQuantum units per turn. Processes that arrive while another one runs
// join the queue before the preempted process. A RoundRobin keeps queue state
// and serves exactly one run.
type RoundRobin struct {
	TimeQuantum int64

	queue    []*core.Process
	admitted map[*core.Process]bool
	running  *core.Process
}

func NewRoundRobin(timeQuantum int64) *RoundRobin {
	return &RoundRobin{TimeQuantum: timeQuantum, admitted: make(map[*core.Process]bool)}
}

func (r *RoundRobin) Select(clock int64, unfinished []*core.Process) (core.Decision, error) {
	ready, err := core.ReadySet(clock, unfinished)
	if err != nil {
		return core.Idle, err
	}
	if r.admitted == nil {
		r.admitted = make(map[*core.Process]bool)
	}

	arrivals := make([]*core.Process, 0)
	for _, p := range ready {
		if !r.admitted[p] {
			arrivals = append(arrivals, p)
		}
	}
	sort.SliceStable(arrivals, func(i, j int) bool {
		return arrivedEarlier(arrivals[i], arrivals[j])
	})
	for _, p := range arrivals {
		r.admitted[p] = true
		r.queue = append(r.queue, p)
	}
	if r.running != nil && !r.running.Finished() {
		r.queue = append(r.queue, r.running)
	}
	r.running = nil

	if len(r.queue) == 0 {
		return core.Idle, nil
	}
	next := r.queue[0]
	r.queue = r.queue[1:]
	r.running = next
	return core.Decision{Process: next, Quantum: min(r.TimeQuantum, next.RemainingTime)}, nil
}
