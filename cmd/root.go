package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/report"
)

var (
	configPath string // Path to config.yaml
	logLevel   string // Log verbosity level
	asJSON     bool   // Emit machine-readable JSON instead of tables
	noColor    bool   // Disable colored Gantt output

	cfg *config.SchedulerConfig
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "cpu-scheduler",
	Short:         "Discrete-time simulator for CPU scheduling policies",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.LogLevel
		if cmd.Flags().Changed("log") {
			level = logLevel
		}
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level: %s", level)
		}
		logrus.SetLevel(parsed)

		if noColor {
			report.SetColor(false)
		}
		return nil
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		if isInputError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}
