package schedulers

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// Options tune a run. A zero TimeQuantum means DefaultTimeQuantum.
type Options struct {
	TimeQuantum int64
	Logger      logrus.FieldLogger
}

// Run simulates request under the named policy and returns the raw engine
// result together with its analytics.
func Run(policy string, request *requests.ScheduleRequests, opts Options) (*core.Result, Analytics, error) {
	if request == nil {
		return nil, Analytics{}, fmt.Errorf("%w: empty request", core.ErrInvalidInput)
	}
	if request.TimeQuantum < 0 {
		return nil, Analytics{}, fmt.Errorf("%w: time quantum must be positive, got %d", core.ErrInvalidInput, request.TimeQuantum)
	}
	if request.TimeQuantum > 0 {
		opts.TimeQuantum = request.TimeQuantum
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	selector, err := NewPolicy(policy, opts)
	if err != nil {
		return nil, Analytics{}, err
	}
	log = log.WithField("policy", policy)
	log.Debugf("running %d processes", len(request.Jobs))

	result, err := core.NewCPU(selector, log).Run(request.Processes())
	if err != nil {
		return nil, Analytics{}, err
	}
	analytics, err := GenerateAnalytics(result)
	if err != nil {
		return nil, Analytics{}, err
	}
	return result, analytics, nil
}

// Schedule runs the named policy and builds the report and timeline contract.
func Schedule(policy string, request *requests.ScheduleRequests, opts Options) (responses.ScheduleResponse, error) {
	result, analytics, err := Run(policy, request, opts)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	p, _ := LookupPolicy(policy)
	return generateResponse(p, result, analytics), nil
}

func ScheduleShortestJobFirst(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return Schedule("sjf", request, Options{})
}

func ScheduleShortestRemainingTime(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return Schedule("srt", request, Options{})
}

func ScheduleHighestResponseRatioNext(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return Schedule("hrrn", request, Options{})
}

func ScheduleFirstComeFirstServe(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return Schedule("fcfs", request, Options{})
}

func ScheduleRoundRobin(request *requests.ScheduleRequests, timeQuantum int64) (responses.ScheduleResponse, error) {
	return Schedule("rr", request, Options{TimeQuantum: timeQuantum})
}

// ScheduleAll runs every registered policy on its own copy of the process
// set, concurrently. It fails as a whole if any run fails.
func ScheduleAll(request *requests.ScheduleRequests, opts Options) (responses.CompareResponse, error) {
	policies := Policies()
	results := make([]responses.ScheduleResponse, len(policies))
	errs := make([]error, len(policies))

	var wg sync.WaitGroup
	wg.Add(len(policies))
	for i, p := range policies {
		go func(i int, name string) {
			defer wg.Done()
			results[i], errs[i] = Schedule(name, request, opts)
		}(i, p.Name)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return responses.CompareResponse{}, fmt.Errorf("%s: %w", policies[i].Name, err)
		}
	}
	return responses.CompareResponse{Results: results}, nil
}

func generateResponse(p Policy, result *core.Result, a Analytics) responses.ScheduleResponse {
	details := make([]responses.ProcessResponse, 0, len(a.Details))
	for _, d := range a.Details {
		row := responses.ProcessResponse{
			ProcessId:      d.Process.PID,
			Name:           d.Process.Name,
			ArrivalTime:    d.Process.ArrivalTime,
			BurstTime:      d.Process.BurstTime,
			CompletionTime: d.Process.CompletionTime,
			TurnAroundTime: d.TurnaroundTime,
			WaitingTime:    d.WaitingTime,
			Utilization:    util.Round2(d.Utilization),
		}
		if p.ReportsResponseTime {
			rt := d.ResponseTime
			row.ResponseTime = &rt
		}
		details = append(details, row)
	}

	segments := make([]responses.SegmentResponse, 0, len(result.Timeline.Segments))
	for _, s := range result.Timeline.Segments {
		segments = append(segments, responses.SegmentResponse{Start: s.Start, End: s.End, ProcessId: s.PID, Name: s.Name})
	}

	response := responses.ScheduleResponse{
		Policy:                p.Name,
		Title:                 p.Title,
		Preemptive:            p.Preemptive,
		TotalTime:             a.TotalTime,
		IdleTime:              a.IdleTime,
		ContextSwitches:       a.ContextSwitches,
		AverageWaitingTime:    util.Round2(a.AverageWaitingTime),
		AverageTurnAroundTime: util.Round2(a.AverageTurnaroundTime),
		CpuUtilization:        util.Round2(a.CpuUtilization),
		CpuThroughput:         a.CpuThroughput,
		Details:               details,
		Timeline: responses.TimelineResponse{
			Segments: segments,
			EndTime:  result.Timeline.EndTime(),
		},
	}
	if p.ReportsResponseTime {
		avg := util.Round2(a.AverageResponseTime)
		response.AverageResponseTime = &avg
	}
	return response
}
