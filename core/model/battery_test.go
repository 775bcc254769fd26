package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBatteries_Threshold(t *testing.T) {
	last := day(2020, time.January, 1)
	cases := []struct {
		name    string
		battery Serviceable
		want    bool
	}{
		{"spindler same day", SpindlerBattery{LastServiceDate: last, CurrentDate: last}, false},
		{"spindler below", SpindlerBattery{LastServiceDate: last, CurrentDate: last.AddDate(0, 0, 729)}, false},
		{"spindler boundary", SpindlerBattery{LastServiceDate: last, CurrentDate: last.AddDate(0, 0, 730)}, true},
		{"spindler reversed", SpindlerBattery{LastServiceDate: last, CurrentDate: last.AddDate(-3, 0, 0)}, false},
		{"nubbin below", NubbinBattery{LastServiceDate: last, CurrentDate: last.AddDate(0, 0, 1459)}, false},
		{"nubbin boundary", NubbinBattery{LastServiceDate: last, CurrentDate: last.AddDate(0, 0, 1460)}, true},
		{"nubbin spindler age", NubbinBattery{LastServiceDate: last, CurrentDate: last.AddDate(0, 0, 730)}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.battery.NeedsService())
		})
	}
}

// Time of day must not shift the day count.
func TestElapsedDays_WholeDays(t *testing.T) {
	from := time.Date(2021, time.January, 1, 23, 59, 0, 0, time.UTC)
	to := time.Date(2021, time.January, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, ElapsedDays(from, to))
	assert.Equal(t, -1, ElapsedDays(to, from))
	assert.Equal(t, 941, ElapsedDays(day(2021, time.January, 1), day(2023, time.July, 31)))
}

func TestElapsedDays_Centuries(t *testing.T) {
	recent := day(2023, time.July, 31)
	assert.Equal(t, 738731, ElapsedDays(time.Time{}, recent))
	assert.Equal(t, -738731, ElapsedDays(recent, time.Time{}))
	assert.Equal(t, 118184, ElapsedDays(day(1700, time.January, 1), recent))

	b := NubbinBattery{LastServiceDate: day(1700, time.January, 1), CurrentDate: recent}
	assert.Equal(t, 118184, b.DaysSinceService())
	assert.True(t, b.NeedsService())
}

func TestElapsedDays_LocationDate(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	from := time.Date(2022, time.March, 26, 12, 0, 0, 0, paris)
	to := time.Date(2022, time.March, 28, 1, 0, 0, 0, paris)
	assert.Equal(t, 2, ElapsedDays(from, to))
}

func TestBatteryValidate(t *testing.T) {
	var ie *InvalidInputError
	assert.ErrorAs(t, SpindlerBattery{CurrentDate: day(2021, 1, 1)}.Validate(), &ie)
	assert.Equal(t, "last_service_date", ie.Field)
	assert.ErrorAs(t, NubbinBattery{LastServiceDate: day(2021, 1, 1)}.Validate(), &ie)
	assert.Equal(t, "current_date", ie.Field)
	assert.ErrorAs(t, NubbinBattery{LastServiceDate: day(2021, 1, 2), CurrentDate: day(2021, 1, 1)}.Validate(), &ie)
	assert.NoError(t, SpindlerBattery{LastServiceDate: day(2021, 1, 1), CurrentDate: day(2021, 1, 1)}.Validate())
}
