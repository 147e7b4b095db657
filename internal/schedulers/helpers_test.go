package schedulers

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

func quietOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{Logger: l}
}

// jobs builds a request from (arrival, burst) pairs.
func jobs(pairs ...[2]int64) *requests.ScheduleRequests {
	req := &requests.ScheduleRequests{}
	for _, p := range pairs {
		req.Jobs = append(req.Jobs, requests.Job{ArrivalTime: p[0], BurstTime: p[1]})
	}
	return req
}

type span struct {
	name       string
	start, end int64
}

func spans(tl core.Timeline) []span {
	out := make([]span, len(tl.Segments))
	for i, s := range tl.Segments {
		out[i] = span{s.Name, s.Start, s.End}
	}
	return out
}

func mustRun(t *testing.T, policy string, req *requests.ScheduleRequests, opts Options) (*core.Result, Analytics) {
	t.Helper()
	result, analytics, err := Run(policy, req, opts)
	require.NoError(t, err)
	return result, analytics
}
