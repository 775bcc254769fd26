package scenarios

import (
	"context"
	"fmt"

	"github.com/kilianp07/fleetservice/core/factory"
	"github.com/kilianp07/fleetservice/core/inspection"
	"github.com/kilianp07/fleetservice/core/servicestatus"
)

// Outcome is the result of replaying one Case.
type Outcome struct {
	Case   string
	Result inspection.Result
	Err    error
	// Mismatch describes how the decision differs from the expectation.
	Mismatch string
}

// Passed reports whether the case ran and matched its expectation.
func (o Outcome) Passed() bool { return o.Err == nil && o.Mismatch == "" }

// Report summarises a scenario run.
type Report struct {
	Scenario   string
	Outcomes   []Outcome
	Mismatches int
	// Due is the number of distinct vehicles left flagged for service.
	Due int
}

// Run inspects every case of sc in order.
func Run(ctx context.Context, sc *Scenario) Report {
	store := servicestatus.NewMemoryStore()
	insp := inspection.New(factory.Models(),
		inspection.WithStore(store),
		inspection.WithStrict(sc.Strict),
	)
	rep := Report{Scenario: sc.Name}
	for _, c := range sc.Inspections {
		out := Outcome{Case: c.Name}
		out.Result, out.Err = insp.Inspect(ctx, c.Request())
		if out.Err == nil {
			out.Mismatch = compare(c.Expected, out.Result)
		}
		if !out.Passed() {
			rep.Mismatches++
		}
		rep.Outcomes = append(rep.Outcomes, out)
	}
	rep.Due = len(store.List(servicestatus.Filter{DueOnly: true}))
	return rep
}

func compare(want Expected, got inspection.Result) string {
	switch {
	case got.NeedsService != want.NeedsService:
		return fmt.Sprintf("needs_service: want %t, got %t", want.NeedsService, got.NeedsService)
	case want.EngineDue != nil && got.EngineDue != *want.EngineDue:
		return fmt.Sprintf("engine_due: want %t, got %t", *want.EngineDue, got.EngineDue)
	case want.BatteryDue != nil && got.BatteryDue != *want.BatteryDue:
		return fmt.Sprintf("battery_due: want %t, got %t", *want.BatteryDue, got.BatteryDue)
	default:
		return ""
	}
}
