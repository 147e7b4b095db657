package requests

import "cpu-scheduler/internal/core"

// Job is one process of the input set. ProcessId and Name are optional and
// default to the declaration position.
type Job struct {
	ProcessId   int    `json:"process_id" yaml:"process_id"`
	Name        string `json:"name,omitempty" yaml:"name"`
	ArrivalTime int64  `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int64  `json:"burst_time" yaml:"burst_time"`
}

// ScheduleRequests is an ordered process set. TimeQuantum only applies to
// round robin and overrides the configured quantum when positive.
type ScheduleRequests struct {
	Jobs        []Job `json:"jobs" yaml:"jobs"`
	TimeQuantum int64 `json:"time_quantum,omitempty" yaml:"time_quantum"`
}

// Processes builds one fresh record per job, in declaration order.
func (r *ScheduleRequests) Processes() []*core.Process {
	procs := make([]*core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		procs[i] = core.NewProcess(i, job.ProcessId, job.Name, job.ArrivalTime, job.BurstTime)
	}
	return procs
}
