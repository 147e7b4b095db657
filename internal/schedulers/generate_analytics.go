package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// ProcessAnalytics holds the derived metrics of one finished process.
type ProcessAnalytics struct {
	Process        *core.Process
	TurnaroundTime int64
	WaitingTime    int64
	ResponseTime   int64
	Utilization    float64 // share of all burst time, in percent
}

// Analytics is the full metric set of a completed run.
type Analytics struct {
	Details               []ProcessAnalytics
	AverageTurnaroundTime float64
	AverageWaitingTime    float64
	AverageResponseTime   float64
	TotalTime             int64
	IdleTime              int64
	CpuUtilization        float64 // busy time over total time, in percent
	CpuThroughput         float64 // processes per clock unit
	ContextSwitches       int
}

// GenerateAnalytics derives per-process and run-level metrics. It refuses
// results with an unfinished process or no burst time at all.
func GenerateAnalytics(result *core.Result) (Analytics, error) {
	if result == nil || len(result.Processes) == 0 {
		return Analytics{}, fmt.Errorf("%w: no processes to analyse", core.ErrInvalidInput)
	}

	var totalBurst int64
	for _, p := range result.Processes {
		if !p.Finished() || !p.Completed() {
			return Analytics{}, fmt.Errorf("%w: %s has not completed", core.ErrInvalidInput, p.Name)
		}
		totalBurst += p.BurstTime
	}
	if totalBurst == 0 {
		return Analytics{}, fmt.Errorf("%w: total burst time is 0", core.ErrInvalidInput)
	}

	n := len(result.Processes)
	details := make([]ProcessAnalytics, 0, n)
	turnarounds := make([]int64, 0, n)
	waits := make([]int64, 0, n)
	responses := make([]int64, 0, n)
	for _, p := range result.Processes {
		turnaround := p.CompletionTime - p.ArrivalTime
		waiting := turnaround - p.BurstTime
		response := p.FirstRunTime - p.ArrivalTime
		details = append(details, ProcessAnalytics{
			Process:        p,
			TurnaroundTime: turnaround,
			WaitingTime:    waiting,
			ResponseTime:   response,
			Utilization:    util.Percent(p.BurstTime, totalBurst),
		})
		turnarounds = append(turnarounds, turnaround)
		waits = append(waits, waiting)
		responses = append(responses, response)
	}

	metric := result.Metric
	analytics := Analytics{
		Details:               details,
		AverageTurnaroundTime: util.Mean(turnarounds),
		AverageWaitingTime:    util.Mean(waits),
		AverageResponseTime:   util.Mean(responses),
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		CpuUtilization:        util.Percent(metric.UtilizationTime, metric.TotalTime),
		ContextSwitches:       metric.ContextSwitches,
	}
	if metric.TotalTime > 0 {
		analytics.CpuThroughput = float64(n) / float64(metric.TotalTime)
	}
	return analytics, nil
}
