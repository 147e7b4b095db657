package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/workload"
)

var (
	policyName   string   // Scheduling policy for a single run
	workloadFile string   // CSV, YAML or JSON process set
	processSpecs []string // Inline processes as arrival:burst
	timeQuantum  int64    // Round-robin quantum override
	interactive  bool     // Prompt for processes on stdin
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one scheduling policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		policy := cfg.DefaultPolicy
		if cmd.Flags().Changed("policy") {
			policy = policyName
		}
		if interactive && workloadFile == "" && len(processSpecs) == 0 {
			return runInteractive(cmd, policy)
		}

		request, err := loadWorkload(cmd)
		if err != nil {
			return err
		}
		return runOnce(cmd, policy, request)
	},
}

func runOnce(cmd *cobra.Command, policy string, request *requests.ScheduleRequests) error {
	logrus.Infof("Starting %s simulation with %d processes", policy, len(request.Jobs))
	response, err := schedulers.Schedule(policy, request, runOptions())
	if err != nil {
		return err
	}
	logrus.Info("Simulation complete.")

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), response)
	}
	report.PrintSchedule(cmd.OutOrStdout(), response)
	return nil
}

// runInteractive keeps prompting for process sets until the user declines
// another run.
func runInteractive(cmd *cobra.Command, policy string) error {
	session := workload.NewSession(cmd.InOrStdin(), cmd.ErrOrStderr())
	for {
		request, err := session.Processes()
		if err != nil {
			return err
		}
		if err := runOnce(cmd, policy, request); err != nil {
			return err
		}
		again, err := session.Again()
		if err != nil || !again {
			return err
		}
	}
}

func runOptions() schedulers.Options {
	quantum := cfg.RoundRobinTimeQuantum
	if timeQuantum != 0 {
		quantum = timeQuantum
	}
	return schedulers.Options{TimeQuantum: quantum, Logger: logrus.StandardLogger()}
}

// loadWorkload takes processes from --file, --process or an interactive
// prompt, in that order of precedence.
func loadWorkload(cmd *cobra.Command) (*requests.ScheduleRequests, error) {
	switch {
	case workloadFile != "":
		return workload.LoadFile(workloadFile)
	case len(processSpecs) > 0:
		return workload.ParseSpecs(processSpecs)
	case interactive:
		return workload.Prompt(cmd.InOrStdin(), cmd.ErrOrStderr())
	default:
		return nil, errors.New("no processes given: use --file, --process or --interactive")
	}
}

func addWorkloadFlags(c *cobra.Command) {
	c.Flags().StringVarP(&workloadFile, "file", "f", "", "Process set file (.csv, .yaml, .yml, .json)")
	c.Flags().StringArrayVarP(&processSpecs, "process", "p", nil, "Process as arrival:burst or name=arrival:burst (repeatable)")
	c.Flags().Int64Var(&timeQuantum, "quantum", 0, "Round-robin time quantum (default from config)")
	c.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for processes on stdin")
}

func init() {
	runCmd.Flags().StringVar(&policyName, "policy", "sjf", fmt.Sprintf("Scheduling policy (%s)", policyNames()))
	addWorkloadFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func policyNames() string {
	policies := schedulers.Policies()
	names := make([]string, len(policies))
	for i, p := range policies {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// isInputError reports whether err came from a bad process set rather than a defect.
func isInputError(err error) bool {
	return errors.Is(err, core.ErrInvalidInput)
}
