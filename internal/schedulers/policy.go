package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
)

// DefaultTimeQuantum is the round-robin slice used when none is configured.
const DefaultTimeQuantum int64 = 2

// ErrUnknownPolicy is returned for policy names outside the registry.
var ErrUnknownPolicy = errors.New("unknown scheduling policy")

// Policy describes one scheduling discipline.
type Policy struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Preemptive bool   `json:"preemptive"`
	// ReportsResponseTime is false for HRRN, whose reports carry no response column.
	ReportsResponseTime bool `json:"reports_response_time"`
}

var registry = []Policy{
	{Name: "sjf", Title: "Shortest Job First", ReportsResponseTime: true},
	{Name: "srt", Title: "Shortest Remaining Time", Preemptive: true, ReportsResponseTime: true},
	{Name: "hrrn", Title: "Highest Response Ratio Next"},
	{Name: "fcfs", Title: "First Come First Serve", ReportsResponseTime: true},
	{Name: "rr", Title: "Round Robin", Preemptive: true, ReportsResponseTime: true},
}

// Policies lists every registered discipline in display order.
func Policies() []Policy {
	out := make([]Policy, len(registry))
	copy(out, registry)
	return out
}

// LookupPolicy finds a policy by case-insensitive name.
func LookupPolicy(name string) (Policy, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range registry {
		if p.Name == name {
			return p, true
		}
	}
	return Policy{}, false
}

func IsValidPolicy(name string) bool {
	_, ok := LookupPolicy(name)
	return ok
}

// NewPolicy creates a fresh selector for one run. Selectors with per-run
// state (round robin) must not be shared between runs.
func NewPolicy(name string, opts Options) (core.Selector, error) {
	p, ok := LookupPolicy(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPolicy, name)
	}
	switch p.Name {
	case "sjf":
		return ShortestJobFirst{}, nil
	case "srt":
		return ShortestRemainingTime{}, nil
	case "hrrn":
		return HighestResponseRatioNext{}, nil
	case "fcfs":
		return FirstComeFirstServe{}, nil
	case "rr":
		q := opts.TimeQuantum
		if q == 0 {
			q = DefaultTimeQuantum
		}
		if q < 0 {
			return nil, fmt.Errorf("%w: time quantum must be positive, got %d", core.ErrInvalidInput, q)
		}
		return NewRoundRobin(q), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownPolicy, name)
	}
}
