package workload

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

func TestPrompt_ReadsArrivalAndBurstPairs(t *testing.T) {
	var out bytes.Buffer
	req, err := Prompt(strings.NewReader("2\n0 8\n1 4\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, []requests.Job{{ArrivalTime: 0, BurstTime: 8}, {ArrivalTime: 1, BurstTime: 4}}, req.Jobs)
	assert.Contains(t, out.String(), "How many processes?")
	assert.Contains(t, out.String(), "Process 2)")
}

func TestPrompt_Errors(t *testing.T) {
	for name, input := range map[string]string{
		"bad count":   "zero\n",
		"zero count":  "0\n",
		"early EOF":   "2\n0 8\n",
		"one field":   "1\n5\n",
		"not numbers": "1\na b\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Prompt(strings.NewReader(input), &bytes.Buffer{})
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
}

func TestSession_RepeatsUntilDeclined(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(strings.NewReader("1\n0 3\ny\n2\n0 1\n2 2\nn\n"), &out)

	first, err := session.Processes()
	require.NoError(t, err)
	assert.Len(t, first.Jobs, 1)
	again, err := session.Again()
	require.NoError(t, err)
	assert.True(t, again)

	second, err := session.Processes()
	require.NoError(t, err)
	assert.Equal(t, []requests.Job{{ArrivalTime: 0, BurstTime: 1}, {ArrivalTime: 2, BurstTime: 2}}, second.Jobs)
	again, err = session.Again()
	require.NoError(t, err)
	assert.False(t, again)
}

func TestSession_AgainStops(t *testing.T) {
	tests := []struct {
		name, input, output string
	}{
		{name: "end of input", input: ""},
		{name: "no", input: "no\n"},
		{name: "unknown option", input: "5\n", output: "Unknown option"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			again, err := NewSession(strings.NewReader(tt.input), &out).Again()
			require.NoError(t, err)
			assert.False(t, again)
			assert.Contains(t, out.String(), tt.output)
		})
	}
}
