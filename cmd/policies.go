package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpu-scheduler/internal/schedulers"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List the available scheduling policies",
	RunE: func(cmd *cobra.Command, args []string) error {
		policies := schedulers.Policies()
		if asJSON {
			return writeJSON(cmd.OutOrStdout(), policies)
		}
		for _, p := range policies {
			kind := "non-preemptive"
			if p.Preemptive {
				kind = "preemptive"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-5s %-28s %s\n", p.Name, p.Title, kind)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(policiesCmd)
}
