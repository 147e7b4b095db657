package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
)

var showDetails bool // Print every policy's full schedule after the summary

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Simulate every policy on the same process set",
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := loadWorkload(cmd)
		if err != nil {
			return err
		}
		logrus.Infof("Comparing %d policies on %d processes", len(schedulers.Policies()), len(request.Jobs))
		comparison, err := schedulers.ScheduleAll(request, runOptions())
		if err != nil {
			return err
		}

		if asJSON {
			return writeJSON(cmd.OutOrStdout(), comparison)
		}
		report.PrintComparison(cmd.OutOrStdout(), comparison)
		if showDetails {
			for _, r := range comparison.Results {
				report.PrintSchedule(cmd.OutOrStdout(), r)
			}
		}
		return nil
	},
}

func init() {
	addWorkloadFlags(compareCmd)
	compareCmd.Flags().BoolVar(&showDetails, "details", false, "Also print each policy's schedule")
	rootCmd.AddCommand(compareCmd)
}
