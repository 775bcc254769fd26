package factory

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// DateLayout is the preferred textual form of telemetry dates.
const DateLayout = "2006-01-02"

// Telemetry is the decoded form of the raw readings accepted by the model
// factories. Fields a model does not use are ignored.
type Telemetry struct {
	CurrentDate        time.Time `json:"current_date"`
	LastServiceDate    time.Time `json:"last_service_date"`
	CurrentMileage     int       `json:"current_mileage"`
	LastServiceMileage int       `json:"last_service_mileage"`
	WarningLightOn     bool      `json:"warning_light_on"`
}

// Decode fills out the provided struct using json tags. Strings are parsed
// into time.Time using DateLayout or RFC 3339. Floats headed for an integer
// field must have no fractional part.
func Decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(dateHook, wholeNumberHook),
	})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}

// ParseDate accepts either DateLayout or RFC 3339 timestamps.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: want %s or RFC3339", s, DateLayout)
	}
	return t, nil
}

func dateHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(time.Time{}) {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return ParseDate(v)
	case time.Time:
		return v, nil
	default:
		return data, nil
	}
}

func wholeNumberHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}
	var f float64
	switch v := data.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return data, nil
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%v is not a whole number", data)
	}
	return data, nil
}
