package mqtt

import (
	"errors"
	"time"
)

// ErrNotConnected is returned when a notice is sent without a live broker connection.
var ErrNotConnected = errors.New("mqtt client not connected")

// ServiceDueNotice tells downstream fleet tooling that a vehicle needs service.
type ServiceDueNotice struct {
	VehicleID   string
	Model       string
	EngineDue   bool
	BatteryDue  bool
	InspectedAt time.Time
}

// Notifier publishes service-due notices and returns the notice identifier.
type Notifier interface {
	NotifyServiceDue(n ServiceDueNotice) (noticeID string, err error)
}
