package schedulers

import "cpu-scheduler/internal/core"

// ShortestRemainingTime is preemptive SRT. It decides one unit at a time, so
// a newly arrived shorter process takes the CPU at the next unit boundary.
// Equal remaining times go to the earliest declared process.
type ShortestRemainingTime struct{}

func (ShortestRemainingTime) Select(clock int64, unfinished []*core.Process) (core.Decision, error) {
	ready, err := core.ReadySet(clock, unfinished)
	if err != nil {
		return core.Idle, err
	}
	var best *core.Process
	for _, p := range ready {
		if best == nil || p.RemainingTime < best.RemainingTime ||
			(p.RemainingTime == best.RemainingTime && p.Index < best.Index) {
			best = p
		}
	}
	if best == nil {
		return core.Idle, nil
	}
	return core.Decision{Process: best, Quantum: 1}, nil
}
