package inspection

import (
	"github.com/kilianp07/fleetservice/core/events"
	"github.com/kilianp07/fleetservice/core/inspection/journal"
	"github.com/kilianp07/fleetservice/core/servicestatus"
)

func toStatus(r Result) servicestatus.Status {
	status := servicestatus.StatusOK
	if r.NeedsService {
		status = servicestatus.StatusServiceDue
	}
	return servicestatus.Status{
		VehicleID:           r.VehicleID,
		Model:               r.Model,
		Engine:              r.Engine,
		Battery:             r.Battery,
		CurrentStatus:       status,
		EngineDue:           r.EngineDue,
		BatteryDue:          r.BatteryDue,
		MileageSinceService: r.MileageSinceService,
		DaysSinceService:    r.DaysSinceService,
		LastInspectionID:    r.ID.String(),
		InspectedAt:         r.Timestamp,
	}
}

func toRecord(r Result) journal.Record {
	return journal.Record{
		InspectionID: r.ID.String(),
		Timestamp:    r.Timestamp,
		VehicleID:    r.VehicleID,
		Model:        r.Model,
		Engine:       r.Engine,
		Battery:      r.Battery,
		EngineDue:    r.EngineDue,
		BatteryDue:   r.BatteryDue,
		NeedsService: r.NeedsService,
	}
}

func toEvent(r Result) events.InspectionEvent {
	return events.InspectionEvent{
		InspectionID: r.ID.String(),
		VehicleID:    r.VehicleID,
		Model:        r.Model,
		EngineDue:    r.EngineDue,
		BatteryDue:   r.BatteryDue,
		NeedsService: r.NeedsService,
		Time:         r.Timestamp,
	}
}
