// Package factory assembles vehicles from raw telemetry.
//
// The named constructors (NewCalliope, NewGlissade, NewPalindrome and
// NewRorschach) wire the fixed engine and battery pairing of each model. Models
// returns a Registry exposing the same constructors by model name so callers
// holding untyped telemetry, such as the HTTP API or YAML scenarios, can build
// a vehicle from a ModuleConfig:
//
//	reg := factory.Models()
//	v, err := reg.Create(factory.ModuleConfig{
//	    Type: "calliope",
//	    Conf: map[string]any{
//	        "current_date":         "2023-07-31",
//	        "last_service_date":    "2021-01-01",
//	        "current_mileage":      45000,
//	        "last_service_mileage": 20000,
//	    },
//	})
//
// Every key a model reads must be present; RequiredFields lists them. Mileage
// must be a whole number.
package factory
