package model

// Serviceable is implemented by every vehicle part that can report whether it
// is due for maintenance.
type Serviceable interface {
	NeedsService() bool
}

// MileageMeter is implemented by parts whose service rule is mileage based.
type MileageMeter interface {
	MileageSinceService() int
}

// AgeMeter is implemented by parts whose service rule is based on elapsed days.
type AgeMeter interface {
	DaysSinceService() int
}

// Validator is implemented by parts able to check their telemetry.
type Validator interface {
	Validate() error
}
