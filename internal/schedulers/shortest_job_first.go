package schedulers

import "cpu-scheduler/internal/core"

// ShortestJobFirst is non-preemptive SJF: the ready process with the smallest
// burst runs to completion. Ties go to the earliest arrival, then to the
// earliest declared process.
type ShortestJobFirst struct{}

func (ShortestJobFirst) Select(clock int64, unfinished []*core.Process) (core.Decision, error) {
	ready, err := core.ReadySet(clock, unfinished)
	if err != nil {
		return core.Idle, err
	}
	var best *core.Process
	for _, p := range ready {
		if best == nil || shorterJob(p, best) {
			best = p
		}
	}
	if best == nil {
		return core.Idle, nil
	}
	return core.Decision{Process: best, Quantum: best.RemainingTime}, nil
}

func shorterJob(a, b *core.Process) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.Index < b.Index
}
