package factory

import (
	"fmt"
	"strings"
	"time"

	"github.com/kilianp07/fleetservice/core/model"
)

// Model names accepted by the registry returned from Models.
const (
	Calliope   = "calliope"
	Glissade   = "glissade"
	Palindrome = "palindrome"
	Rorschach  = "rorschach"
)

// NewCalliope builds a Calliope: Capulet engine, Spindler battery.
func NewCalliope(currentDate, lastServiceDate time.Time, currentMileage, lastServiceMileage int) *model.Vehicle {
	return model.NewVehicle(
		model.CapuletEngine{LastServiceMileage: lastServiceMileage, CurrentMileage: currentMileage},
		model.SpindlerBattery{LastServiceDate: lastServiceDate, CurrentDate: currentDate},
	)
}

// NewGlissade builds a Glissade: Willoughby engine, Spindler battery.
func NewGlissade(currentDate, lastServiceDate time.Time, currentMileage, lastServiceMileage int) *model.Vehicle {
	return model.NewVehicle(
		model.WilloughbyEngine{LastServiceMileage: lastServiceMileage, CurrentMileage: currentMileage},
		model.SpindlerBattery{LastServiceDate: lastServiceDate, CurrentDate: currentDate},
	)
}

// NewPalindrome builds a Palindrome: Sternman engine, Spindler battery.
func NewPalindrome(currentDate, lastServiceDate time.Time, warningLightOn bool) *model.Vehicle {
	return model.NewVehicle(
		model.SternmanEngine{WarningLightOn: warningLightOn},
		model.SpindlerBattery{LastServiceDate: lastServiceDate, CurrentDate: currentDate},
	)
}

// NewRorschach builds a Rorschach: Willoughby engine, Nubbin battery.
func NewRorschach(currentDate, lastServiceDate time.Time, currentMileage, lastServiceMileage int) *model.Vehicle {
	return model.NewVehicle(
		model.WilloughbyEngine{LastServiceMileage: lastServiceMileage, CurrentMileage: currentMileage},
		model.NubbinBattery{LastServiceDate: lastServiceDate, CurrentDate: currentDate},
	)
}

var (
	mileageFields     = []string{"current_date", "last_service_date", "current_mileage", "last_service_mileage"}
	warningOnlyFields = []string{"current_date", "last_service_date", "warning_light_on"}
)

type modelDef struct {
	required []string
	build    func(Telemetry) *model.Vehicle
}

var modelDefs = map[string]modelDef{
	Calliope: {mileageFields, func(t Telemetry) *model.Vehicle {
		return NewCalliope(t.CurrentDate, t.LastServiceDate, t.CurrentMileage, t.LastServiceMileage)
	}},
	Glissade: {mileageFields, func(t Telemetry) *model.Vehicle {
		return NewGlissade(t.CurrentDate, t.LastServiceDate, t.CurrentMileage, t.LastServiceMileage)
	}},
	Palindrome: {warningOnlyFields, func(t Telemetry) *model.Vehicle {
		return NewPalindrome(t.CurrentDate, t.LastServiceDate, t.WarningLightOn)
	}},
	Rorschach: {mileageFields, func(t Telemetry) *model.Vehicle {
		return NewRorschach(t.CurrentDate, t.LastServiceDate, t.CurrentMileage, t.LastServiceMileage)
	}},
}

// RequiredFields lists the telemetry keys the named model must receive.
func RequiredFields(name string) []string {
	def, ok := modelDefs[strings.ToLower(name)]
	if !ok {
		return nil
	}
	return append([]string(nil), def.required...)
}

// Components returns the engine and battery a model is assembled from.
func Components(name string) (engine, battery model.Serviceable, ok bool) {
	def, ok := modelDefs[strings.ToLower(name)]
	if !ok {
		return nil, nil, false
	}
	v := def.build(Telemetry{})
	return v.Engine(), v.Battery(), true
}

// Models returns a registry holding the four vehicle models. Each factory
// rejects telemetry that lacks one of the model's required keys.
func Models() *Registry[*model.Vehicle] {
	reg := NewRegistry[*model.Vehicle]()
	for name, def := range modelDefs {
		_ = reg.Register(name, func(conf map[string]any) (*model.Vehicle, error) {
			for _, key := range def.required {
				if v, ok := conf[key]; !ok || v == nil {
					return nil, fmt.Errorf("%w for %s: missing %s", ErrInvalidTelemetry, name, key)
				}
			}
			var t Telemetry
			if err := Decode(conf, &t); err != nil {
				return nil, fmt.Errorf("%w for %s: %w", ErrInvalidTelemetry, name, err)
			}
			return def.build(t), nil
		})
	}
	return reg
}
