package workload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCSV_PositionalColumns(t *testing.T) {
	req, err := ParseCSV(strings.NewReader("1,8,0\n2,4,1\n"))
	require.NoError(t, err)
	assert.Equal(t, []requests.Job{
		{ProcessId: 1, BurstTime: 8, ArrivalTime: 0},
		{ProcessId: 2, BurstTime: 4, ArrivalTime: 1},
	}, req.Jobs)
}

func TestParseCSV_HeaderInAnyOrder(t *testing.T) {
	req, err := ParseCSV(strings.NewReader("name, burst_time, arrival\neditor, 3, 2\n"))
	require.NoError(t, err)
	assert.Equal(t, []requests.Job{{Name: "editor", BurstTime: 3, ArrivalTime: 2}}, req.Jobs)
}

func TestParseCSV_Errors(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"unknown column": "pid,priority,arrival,burst\n1,2,0,3\n",
		"missing burst":  "pid,arrival\n1,0\n",
		"bad number":     "1,eight,0\n",
		"short row":      "1,8\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(input))
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
}

func TestParseYAML_StrictFields(t *testing.T) {
	req, err := ParseYAML(strings.NewReader("jobs:\n  - arrival_time: 1\n    burst_time: 4\ntime_quantum: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, []requests.Job{{ArrivalTime: 1, BurstTime: 4}}, req.Jobs)
	assert.Equal(t, int64(3), req.TimeQuantum)

	_, err = ParseYAML(strings.NewReader("jobs:\n  - arrival: 1\n    burst_time: 4\n"))
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = ParseYAML(strings.NewReader(""))
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestParseJSON(t *testing.T) {
	req, err := ParseJSON(strings.NewReader(`{"jobs":[{"process_id":7,"arrival_time":0,"burst_time":2}]}`))
	require.NoError(t, err)
	assert.Equal(t, 7, req.Jobs[0].ProcessId)

	_, err = ParseJSON(strings.NewReader(`{"jobs":[{"burst":2}]}`))
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestParseSpecs(t *testing.T) {
	req, err := ParseSpecs([]string{"0:8", "shell=1:4"})
	require.NoError(t, err)
	assert.Equal(t, []requests.Job{
		{ArrivalTime: 0, BurstTime: 8},
		{Name: "shell", ArrivalTime: 1, BurstTime: 4},
	}, req.Jobs)

	for _, bad := range []string{"08", "a:1", "1:b"} {
		_, err := ParseSpecs([]string{bad})
		assert.ErrorIs(t, err, core.ErrInvalidInput, bad)
	}
}

func TestLoadFile_DispatchesOnExtension(t *testing.T) {
	csvPath := writeTemp(t, "p.csv", "pid,arrival,burst\n1,0,8\n")
	yamlPath := writeTemp(t, "p.yml", "jobs:\n  - arrival_time: 0\n    burst_time: 8\n")
	jsonPath := writeTemp(t, "p.json", `{"jobs":[{"arrival_time":0,"burst_time":8}]}`)

	for _, path := range []string{csvPath, yamlPath, jsonPath} {
		req, err := LoadFile(path)
		require.NoError(t, err, path)
		require.Len(t, req.Jobs, 1)
		assert.Equal(t, int64(8), req.Jobs[0].BurstTime)
	}

	_, err := LoadFile(writeTemp(t, "p.txt", "0 8"))
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
