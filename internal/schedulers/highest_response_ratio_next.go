package schedulers

import (
	"math/bits"

	"cpu-scheduler/internal/core"
)

// HighestResponseRatioNext is non-preemptive HRRN. The ready process with the
// largest (waited + burst) / burst runs to completion; equal ratios go to the
// earliest declared process.
type HighestResponseRatioNext struct{}

func (HighestResponseRatioNext) Select(clock int64, unfinished []*core.Process) (core.Decision, error) {
	ready, err := core.ReadySet(clock, unfinished)
	if err != nil {
		return core.Idle, err
	}
	var best *core.Process
	for _, p := range ready {
		if best == nil || higherRatio(clock, p, best) {
			best = p
		}
	}
	if best == nil {
		return core.Idle, nil
	}
	return core.Decision{Process: best, Quantum: best.RemainingTime}, nil
}

// ResponseRatio is (clock - arrival + burst) / burst.
func ResponseRatio(clock int64, p *core.Process) float64 {
	return float64(clock-p.ArrivalTime+p.BurstTime) / float64(p.BurstTime)
}

// higherRatio compares ratios by cross-multiplication so equal ratios compare
// equal regardless of float rounding. Products are taken in 128 bits; both
// factors are non-negative for ready processes.
func higherRatio(clock int64, a, b *core.Process) bool {
	lhsHi, lhsLo := bits.Mul64(uint64(clock-a.ArrivalTime+a.BurstTime), uint64(b.BurstTime))
	rhsHi, rhsLo := bits.Mul64(uint64(clock-b.ArrivalTime+b.BurstTime), uint64(a.BurstTime))
	if lhsHi != rhsHi {
		return lhsHi > rhsHi
	}
	if lhsLo != rhsLo {
		return lhsLo > rhsLo
	}
	return a.Index < b.Index
}
