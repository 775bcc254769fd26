package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/fleetservice/core/factory"
	"github.com/kilianp07/fleetservice/core/inspection"
)

type inspectFlags struct {
	vehicleID          string
	model              string
	currentDate        string
	lastServiceDate    string
	currentMileage     int
	lastServiceMileage int
	warningLight       bool
	strict             bool
}

var (
	inspectOpts inspectFlags
	now         = time.Now
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Decide whether a single vehicle needs service",
	Example: `  fleetservice inspect --model calliope --current-date 2023-07-31 \
    --last-service-date 2021-01-01 --current-mileage 45000 --last-service-mileage 20000`,
	RunE: runInspect,
}

func init() {
	f := inspectCmd.Flags()
	f.StringVar(&inspectOpts.vehicleID, "vehicle-id", "cli", "vehicle identifier")
	f.StringVar(&inspectOpts.model, "model", "", "vehicle model (see `fleetservice models`)")
	f.StringVar(&inspectOpts.currentDate, "current-date", "", "inspection date, YYYY-MM-DD (default today)")
	f.StringVar(&inspectOpts.lastServiceDate, "last-service-date", "", "date of the last service, YYYY-MM-DD")
	f.IntVar(&inspectOpts.currentMileage, "current-mileage", 0, "odometer reading")
	f.IntVar(&inspectOpts.lastServiceMileage, "last-service-mileage", 0, "odometer reading at the last service")
	f.BoolVar(&inspectOpts.warningLight, "warning-light", false, "engine warning light is on")
	f.BoolVar(&inspectOpts.strict, "strict", false, "reject implausible readings")
	_ = inspectCmd.MarkFlagRequired("model")
	_ = inspectCmd.MarkFlagRequired("last-service-date")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	current := inspectOpts.currentDate
	if current == "" {
		current = now().Format(factory.DateLayout)
	}
	insp := inspection.New(factory.Models(), inspection.WithStrict(inspectOpts.strict), inspection.WithClock(now))
	res, err := insp.Inspect(cmd.Context(), inspection.Request{
		VehicleID: inspectOpts.vehicleID,
		Model:     inspectOpts.model,
		Telemetry: map[string]any{
			"current_date":         current,
			"last_service_date":    inspectOpts.lastServiceDate,
			"current_mileage":      inspectOpts.currentMileage,
			"last_service_mileage": inspectOpts.lastServiceMileage,
			"warning_light_on":     inspectOpts.warningLight,
		},
	})
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
