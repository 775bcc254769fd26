package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubPart bool

func (s stubPart) NeedsService() bool { return bool(s) }

func TestVehicleNeedsService_TruthTable(t *testing.T) {
	cases := []struct {
		engine, battery, want bool
	}{
		{false, false, false},
		{true, false, true},
		{false, true, true},
		{true, true, true},
	}
	for _, c := range cases {
		v := NewVehicle(stubPart(c.engine), stubPart(c.battery))
		assert.Equal(t, c.want, v.NeedsService(), "engine=%v battery=%v", c.engine, c.battery)
	}
}

type countingPart struct {
	due   bool
	calls int
}

func (c *countingPart) NeedsService() bool {
	c.calls++
	return c.due
}

func TestVehicleNeedsService_EvaluatesBothParts(t *testing.T) {
	e := &countingPart{due: true}
	b := &countingPart{}
	NewVehicle(e, b).NeedsService()
	assert.Equal(t, 1, e.calls)
	assert.Equal(t, 1, b.calls)
}

func TestVehicleValidate(t *testing.T) {
	v := NewVehicle(CapuletEngine{LastServiceMileage: 5, CurrentMileage: 1}, SpindlerBattery{})
	var ie *InvalidInputError
	assert.ErrorAs(t, v.Validate(), &ie)
	assert.Equal(t, "current_mileage", ie.Field)

	v = NewVehicle(SternmanEngine{}, SpindlerBattery{LastServiceDate: day(2020, 1, 1), CurrentDate: day(2021, 1, 1)})
	assert.NoError(t, v.Validate())

	// parts without telemetry checks are skipped
	assert.NoError(t, NewVehicle(stubPart(true), stubPart(false)).Validate())
}

func TestPartNames(t *testing.T) {
	assert.Equal(t, "capulet", CapuletEngine{}.String())
	assert.Equal(t, "willoughby", WilloughbyEngine{}.String())
	assert.Equal(t, "sternman", SternmanEngine{}.String())
	assert.Equal(t, "spindler", SpindlerBattery{}.String())
	assert.Equal(t, "nubbin", NubbinBattery{}.String())
}
