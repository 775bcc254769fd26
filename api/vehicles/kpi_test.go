package vehicles

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/fleetservice/core/servicestatus"
)

func TestComputeKPIs(t *testing.T) {
	k := ComputeKPIs(seededStore().List(servicestatus.Filter{}))
	assert.Equal(t, 3, k.Vehicles)
	assert.Equal(t, 2, k.DueForService)
	assert.InDelta(t, 2.0/3.0, k.DueRatio, 1e-9)
	assert.Equal(t, map[string]int{"calliope": 1, "palindrome": 1}, k.DueByModel)
	assert.Equal(t, map[string]int{"engine": 1, "battery": 1}, k.DueByComponent)

	assert.Equal(t, 3, k.DaysSinceService.Samples)
	assert.InDelta(t, 500, k.DaysSinceService.Mean, 1e-9)
	assert.InDelta(t, 300, k.DaysSinceService.StdDev, 1e-9)
	assert.InDelta(t, 800, k.DaysSinceService.Max, 1e-9)

	assert.Equal(t, 2, k.MileageSinceService.Samples)
	assert.InDelta(t, 200, k.MileageSinceService.Mean, 1e-9)
}

func TestComputeKPIs_EmptyAndSingle(t *testing.T) {
	k := ComputeKPIs(nil)
	assert.Zero(t, k.Vehicles)
	assert.Zero(t, k.DueRatio)
	assert.Zero(t, k.DaysSinceService.Mean)

	one := ComputeKPIs([]servicestatus.Status{{VehicleID: "v", DaysSinceService: intPtr(10)}})
	assert.Equal(t, 10.0, one.DaysSinceService.Mean)
	assert.Zero(t, one.DaysSinceService.StdDev)
}

func TestKPIHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewKPIHandler(seededStore()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/fleet/kpis?model=calliope", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var k FleetKPIs
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &k))
	assert.Equal(t, 2, k.Vehicles)
	assert.Equal(t, 1, k.DueForService)
	assert.InDelta(t, 0.5, k.DueRatio, 1e-9)
}
