package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "sjf", cfg.DefaultPolicy)
	assert.Equal(t, int64(2), cfg.RoundRobinTimeQuantum)
}

func TestLoad_ReadsYAMLFile(t *testing.T) {
	path := writeTempYAML(t, `
port: 8081
log_level: debug
scheduler:
  default_policy: hrrn
  round_robin:
    time_quantum: 4
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &SchedulerConfig{Port: 8081, LogLevel: "debug", DefaultPolicy: "hrrn", RoundRobinTimeQuantum: 4}, cfg)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeTempYAML(t, "port: 8081\n")
	t.Setenv("SCHEDULER_PORT", "7000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "explicit path must exist")

	_, err = Load(writeTempYAML(t, "scheduler:\n  default_policy: lottery\n"))
	assert.ErrorContains(t, err, "lottery")

	_, err = Load(writeTempYAML(t, "scheduler:\n  round_robin:\n    time_quantum: 0\n"))
	assert.ErrorContains(t, err, "time quantum")

	_, err = Load(writeTempYAML(t, "port: 0\n"))
	assert.ErrorContains(t, err, "port")
}
