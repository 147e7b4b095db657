package schedulers

import "cpu-scheduler/internal/core"

// FirstComeFirstServe runs ready processes to completion in arrival order.
type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Select(clock int64, unfinished []*core.Process) (core.Decision, error) {
	ready, err := core.ReadySet(clock, unfinished)
	if err != nil {
		return core.Idle, err
	}
	var first *core.Process
	for _, p := range ready {
		if first == nil || arrivedEarlier(p, first) {
			first = p
		}
	}
	if first == nil {
		return core.Idle, nil
	}
	return core.Decision{Process: first, Quantum: first.RemainingTime}, nil
}

func arrivedEarlier(a, b *core.Process) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.Index < b.Index
}
