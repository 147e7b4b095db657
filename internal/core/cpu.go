package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Decision is a selector's answer for one clock value. A nil Process means
// nothing is ready and the CPU idles for one unit. Quantum is how long the
// chosen process runs before the selector is asked again.
type Decision struct {
	Process *Process
	Quantum int64
}

// Idle is the "none" decision.
var Idle = Decision{}

// Selector picks the next process to run. unfinished holds every process
// whose remaining time is positive, in declaration order, including those
// that have not arrived yet. Implementations must return an ErrLogic error
// when unfinished is empty.
type Selector interface {
	Select(clock int64, unfinished []*Process) (Decision, error)
}

// CpuMetric summarises how one run used the CPU, in clock units.
type CpuMetric struct {
	TotalTime       int64
	UtilizationTime int64
	IdleTime        int64
	ContextSwitches int
}

// Result is the outcome of a completed run. Processes are the run's own
// records in declaration order; they are not modified after Run returns.
type Result struct {
	Processes []*Process
	Timeline  Timeline
	Metric    CpuMetric
}

// CPU drives a single-core discrete clock from 0 until every process finishes.
type CPU struct {
	selector Selector
	log      logrus.FieldLogger
}

// NewCPU builds a CPU around selector. A nil logger falls back to the logrus
// standard logger.
func NewCPU(selector Selector, log logrus.FieldLogger) *CPU {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &CPU{selector: selector, log: log}
}

// Run simulates procs to completion. The input records are copied first, so
// the same slice can be handed to several CPUs.
func (c *CPU) Run(input []*Process) (*Result, error) {
	if err := Validate(input); err != nil {
		return nil, err
	}
	if c.selector == nil {
		return nil, fmt.Errorf("%w: cpu has no selector", ErrLogic)
	}

	procs := make([]*Process, len(input))
	for i, p := range input {
		procs[i] = p.clone()
	}
	unfinished := make([]*Process, len(procs))
	copy(unfinished, procs)

	var (
		clock    int64
		idle     int64
		timeline Timeline
		limit    = stepLimit(procs)
	)

	for steps := int64(0); len(unfinished) > 0; steps++ {
		if steps == limit {
			return nil, fmt.Errorf("%w: %d processes unfinished after %d steps", ErrLogic, len(unfinished), limit)
		}

		d, err := c.selector.Select(clock, unfinished)
		if err != nil {
			return nil, err
		}
		if d.Process == nil {
			if p := firstReady(clock, unfinished); p != nil {
				return nil, fmt.Errorf("%w: selector idled at t=%d while %s was ready", ErrLogic, clock, p.Name)
			}
			c.log.WithField("clock", clock).Debug("cpu idle")
			clock++
			idle++
			continue
		}
		if err := checkDecision(clock, d, unfinished); err != nil {
			return nil, err
		}

		start := clock
		d.Process.run(start, d.Quantum)
		clock += d.Quantum
		timeline.add(d.Process, start, clock)

		c.log.WithFields(logrus.Fields{
			"clock":     start,
			"process":   d.Process.Name,
			"quantum":   d.Quantum,
			"remaining": d.Process.RemainingTime,
		}).Debug("dispatch")

		if d.Process.Finished() {
			c.log.WithFields(logrus.Fields{"process": d.Process.Name, "completion": d.Process.CompletionTime}).Debug("process completed")
			unfinished = removeProcess(unfinished, d.Process)
		}
	}

	return &Result{
		Processes: procs,
		Timeline:  timeline,
		Metric: CpuMetric{
			TotalTime:       clock,
			UtilizationTime: timeline.BusyTime(),
			IdleTime:        idle,
			ContextSwitches: timeline.Switches(),
		},
	}, nil
}

// stepLimit bounds the number of decisions of a correct run: every dispatch
// consumes at least one burst unit and idle units end at the last arrival.
func stepLimit(procs []*Process) int64 {
	var total, lastArrival int64
	for _, p := range procs {
		total += p.BurstTime
		if p.ArrivalTime > lastArrival {
			lastArrival = p.ArrivalTime
		}
	}
	return total + lastArrival + 1
}

func checkDecision(clock int64, d Decision, unfinished []*Process) error {
	p := d.Process
	found := false
	for _, u := range unfinished {
		if u == p {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: selector returned %s which is not an unfinished record of this run", ErrLogic, p.Name)
	}
	if !p.Arrived(clock) {
		return fmt.Errorf("%w: selector picked %s at t=%d before its arrival %d", ErrLogic, p.Name, clock, p.ArrivalTime)
	}
	if d.Quantum <= 0 || d.Quantum > p.RemainingTime {
		return fmt.Errorf("%w: quantum %d for %s outside [1, %d]", ErrLogic, d.Quantum, p.Name, p.RemainingTime)
	}
	return nil
}

func firstReady(clock int64, procs []*Process) *Process {
	for _, p := range procs {
		if p.Ready(clock) {
			return p
		}
	}
	return nil
}

func removeProcess(procs []*Process, target *Process) []*Process {
	out := procs[:0]
	for _, p := range procs {
		if p != target {
			out = append(out, p)
		}
	}
	return out
}
