package events

import "time"

// InspectionEvent is published once per completed vehicle inspection.
type InspectionEvent struct {
	InspectionID string
	VehicleID    string
	Model        string
	EngineDue    bool
	BatteryDue   bool
	NeedsService bool
	Time         time.Time
}
