package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 9.5, Mean([]int64{8, 11}))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(3, 0))
	assert.InDelta(t, 66.6666, Percent(8, 12), 1e-3)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 66.67, Round2(200.0/3.0))
	assert.Equal(t, 33.33, Round2(100.0/3.0))
	assert.Equal(t, 2.5, Round2(2.5))
	assert.Equal(t, -1.24, Round2(-1.2449))
}
