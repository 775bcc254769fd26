package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/fleetservice/core/factory"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the vehicle models and their components",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := factory.Models()
		for _, name := range reg.Names() {
			engine, battery, ok := factory.Components(name)
			if !ok {
				return fmt.Errorf("%w: %q", factory.ErrUnknownModel, name)
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-12s engine=%v battery=%v\n", name, engine, battery); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
