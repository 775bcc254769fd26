package model

// Mileage thresholds at or above which an engine is due for service.
const (
	CapuletServiceMileage    = 30000
	WilloughbyServiceMileage = 60000
)

// CapuletEngine needs service every 30000 miles.
type CapuletEngine struct {
	LastServiceMileage int
	CurrentMileage     int
}

func (e CapuletEngine) NeedsService() bool {
	return e.MileageSinceService() >= CapuletServiceMileage
}

func (e CapuletEngine) MileageSinceService() int {
	return e.CurrentMileage - e.LastServiceMileage
}

func (e CapuletEngine) Validate() error {
	return validateMileage(e.LastServiceMileage, e.CurrentMileage)
}

func (CapuletEngine) String() string { return "capulet" }

// WilloughbyEngine needs service every 60000 miles.
type WilloughbyEngine struct {
	LastServiceMileage int
	CurrentMileage     int
}

func (e WilloughbyEngine) NeedsService() bool {
	return e.MileageSinceService() >= WilloughbyServiceMileage
}

func (e WilloughbyEngine) MileageSinceService() int {
	return e.CurrentMileage - e.LastServiceMileage
}

func (e WilloughbyEngine) Validate() error {
	return validateMileage(e.LastServiceMileage, e.CurrentMileage)
}

func (WilloughbyEngine) String() string { return "willoughby" }

// SternmanEngine needs service whenever its warning light is on.
type SternmanEngine struct {
	WarningLightOn bool
}

func (e SternmanEngine) NeedsService() bool { return e.WarningLightOn }

func (SternmanEngine) Validate() error { return nil }

func (SternmanEngine) String() string { return "sternman" }

func validateMileage(last, current int) error {
	if last < 0 {
		return invalid("last_service_mileage", "must not be negative")
	}
	if current < 0 {
		return invalid("current_mileage", "must not be negative")
	}
	if current < last {
		return invalid("current_mileage", "is lower than last_service_mileage")
	}
	return nil
}
