package metrics

import "time"

// InspectionRecord is the metrics view of one vehicle inspection.
type InspectionRecord struct {
	InspectionID string
	VehicleID    string
	Model        string
	EngineDue    bool
	BatteryDue   bool
	NeedsService bool
	Time         time.Time
}

// MetricsSink records inspection results for observability purposes.
type MetricsSink interface {
	RecordInspection(recs []InspectionRecord) error
}

// FleetDueRecorder records how many known vehicles currently need service.
type FleetDueRecorder interface {
	RecordFleetDue(due, total int) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordInspection([]InspectionRecord) error { return nil }
func (NopSink) RecordFleetDue(int, int) error             { return nil }
