package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"cpu-scheduler/internal/schedulers"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	DefaultPolicy         string
	RoundRobinTimeQuantum int64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.default_policy", "sjf")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
}

// Load reads config.yaml from the working directory, or path when it is set,
// then applies SCHEDULER_* environment overrides. A missing config.yaml is not
// an error; a missing explicit path is.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log_level"),
		DefaultPolicy:         v.GetString("scheduler.default_policy"),
		RoundRobinTimeQuantum: v.GetInt64("scheduler.round_robin.time_quantum"),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if !schedulers.IsValidPolicy(c.DefaultPolicy) {
		return fmt.Errorf("unknown default policy %q", c.DefaultPolicy)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("round robin time quantum must be positive, got %d", c.RoundRobinTimeQuantum)
	}
	return nil
}
