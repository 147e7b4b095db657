package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/responses"
)

const twoJobs = `{"jobs":[{"arrival_time":0,"burst_time":8},{"arrival_time":1,"burst_time":4}]}`

func newTestApp() *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := &config.SchedulerConfig{Port: 9095, LogLevel: "error", DefaultPolicy: "sjf", RoundRobinTimeQuantum: 2}
	return NewApp(cfg, log)
}

func post(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestShortestRemainingTime_ReturnsTimelineAndMetrics(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/srt", twoJobs)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body responses.ScheduleResponse
	decode(t, resp, &body)
	assert.Equal(t, "srt", body.Policy)
	assert.Equal(t, int64(12), body.Timeline.EndTime)
	require.Len(t, body.Timeline.Segments, 3)
	assert.Equal(t, responses.SegmentResponse{Start: 1, End: 5, ProcessId: 2, Name: "P2"}, body.Timeline.Segments[1])
	assert.Equal(t, int64(5), body.Details[1].CompletionTime)
}

func TestPolicyRoutes(t *testing.T) {
	app := newTestApp()
	for _, policy := range []string{"sjf", "srt", "hrrn", "fcfs", "rr"} {
		t.Run(policy, func(t *testing.T) {
			for _, path := range []string{"/api/v1/" + policy, "/api/v1/schedule/" + policy} {
				resp := post(t, app, path, twoJobs)
				require.Equal(t, http.StatusOK, resp.StatusCode, path)
				var body responses.ScheduleResponse
				decode(t, resp, &body)
				assert.Equal(t, policy, body.Policy)
			}
		})
	}
}

func TestHRRNResponseOmitsResponseTime(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/hrrn", twoJobs)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "response_time")
}

func TestAllAlgorithms(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/all", twoJobs)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body responses.CompareResponse
	decode(t, resp, &body)
	require.Len(t, body.Results, 5)
	assert.Equal(t, "sjf", body.Results[0].Policy)
}

func TestErrorStatuses(t *testing.T) {
	app := newTestApp()
	tests := []struct {
		name, path, body string
		status           int
	}{
		{"malformed body", "/api/v1/sjf", `{"jobs":`, http.StatusBadRequest},
		{"zero burst", "/api/v1/sjf", `{"jobs":[{"arrival_time":0,"burst_time":0}]}`, http.StatusBadRequest},
		{"no jobs", "/api/v1/hrrn", `{"jobs":[]}`, http.StatusBadRequest},
		{"negative arrival on all", "/api/v1/all", `{"jobs":[{"arrival_time":-1,"burst_time":2}]}`, http.StatusBadRequest},
		{"negative quantum", "/api/v1/rr", `{"jobs":[{"arrival_time":0,"burst_time":2}],"time_quantum":-1}`, http.StatusBadRequest},
		{"unknown policy", "/api/v1/schedule/lottery", twoJobs, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, app, tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			var body map[string]string
			decode(t, resp, &body)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestPoliciesAndHealth(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/policies", nil), -1)
	require.NoError(t, err)
	var policies struct {
		Policies []struct {
			Name string `json:"name"`
		} `json:"policies"`
	}
	decode(t, resp, &policies)
	assert.Len(t, policies.Policies, 5)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
