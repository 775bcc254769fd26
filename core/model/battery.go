package model

import "time"

// Elapsed-day thresholds at or above which a battery is due for service.
const (
	SpindlerServiceDays = 730
	NubbinServiceDays   = 1460
)

// SpindlerBattery needs service every two years.
type SpindlerBattery struct {
	LastServiceDate time.Time
	CurrentDate     time.Time
}

func (b SpindlerBattery) NeedsService() bool {
	return b.DaysSinceService() >= SpindlerServiceDays
}

func (b SpindlerBattery) DaysSinceService() int {
	return ElapsedDays(b.LastServiceDate, b.CurrentDate)
}

func (b SpindlerBattery) Validate() error {
	return validateDates(b.LastServiceDate, b.CurrentDate)
}

func (SpindlerBattery) String() string { return "spindler" }

// NubbinBattery needs service every four years.
type NubbinBattery struct {
	LastServiceDate time.Time
	CurrentDate     time.Time
}

func (b NubbinBattery) NeedsService() bool {
	return b.DaysSinceService() >= NubbinServiceDays
}

func (b NubbinBattery) DaysSinceService() int {
	return ElapsedDays(b.LastServiceDate, b.CurrentDate)
}

func (b NubbinBattery) Validate() error {
	return validateDates(b.LastServiceDate, b.CurrentDate)
}

func (NubbinBattery) String() string { return "nubbin" }

// ElapsedDays returns the number of whole calendar days from `from` to `to`.
// The time of day is ignored and the result is negative when `to` is earlier.
func ElapsedDays(from, to time.Time) int {
	const secondsPerDay = 24 * 60 * 60
	return int((calendarDate(to).Unix() - calendarDate(from).Unix()) / secondsPerDay)
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validateDates(last, current time.Time) error {
	if last.IsZero() {
		return invalid("last_service_date", "is required")
	}
	if current.IsZero() {
		return invalid("current_date", "is required")
	}
	if ElapsedDays(last, current) < 0 {
		return invalid("current_date", "is before last_service_date")
	}
	return nil
}
