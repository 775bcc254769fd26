package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/fleetservice/qa/scenarios"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Scenario related commands",
}

var scenarioRunCmd = &cobra.Command{
	Use:   "run FILE...",
	Short: "Replay scenario files and report mismatches",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScenarios,
}

func init() {
	scenarioCmd.AddCommand(scenarioRunCmd)
	rootCmd.AddCommand(scenarioCmd)
}

func runScenarios(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		sc, err := scenarios.Load(path)
		if err != nil {
			return err
		}
		rep := scenarios.Run(cmd.Context(), sc)
		for _, o := range rep.Outcomes {
			switch {
			case o.Err != nil:
				fmt.Fprintf(out, "FAIL %s/%s: %v\n", rep.Scenario, o.Case, o.Err)
			case o.Mismatch != "":
				fmt.Fprintf(out, "FAIL %s/%s: %s\n", rep.Scenario, o.Case, o.Mismatch)
			default:
				fmt.Fprintf(out, "ok   %s/%s\n", rep.Scenario, o.Case)
			}
		}
		fmt.Fprintf(out, "%s: %d cases, %d mismatches, %d vehicles due\n", rep.Scenario, len(rep.Outcomes), rep.Mismatches, rep.Due)
		failed += rep.Mismatches
	}
	if failed > 0 {
		return fmt.Errorf("%d scenario mismatches", failed)
	}
	return nil
}
