package model

// Vehicle pairs one engine with one battery. It needs service as soon as
// either part does.
type Vehicle struct {
	engine  Serviceable
	battery Serviceable
}

// NewVehicle assembles a vehicle from its parts.
func NewVehicle(engine, battery Serviceable) *Vehicle {
	return &Vehicle{engine: engine, battery: battery}
}

func (v *Vehicle) Engine() Serviceable  { return v.engine }
func (v *Vehicle) Battery() Serviceable { return v.battery }

// NeedsService evaluates both parts and reports whether any of them is due.
func (v *Vehicle) NeedsService() bool {
	engineDue := v.engine.NeedsService()
	batteryDue := v.battery.NeedsService()
	return engineDue || batteryDue
}

// Validate checks the telemetry of both parts and returns the first
// *InvalidInputError found.
func (v *Vehicle) Validate() error {
	for _, part := range []Serviceable{v.engine, v.battery} {
		if val, ok := part.(Validator); ok {
			if err := val.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
