package vehicles

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/fleetservice/core/factory"
	"github.com/kilianp07/fleetservice/core/inspection"
	"github.com/kilianp07/fleetservice/core/servicestatus"
)

func postInspect(t *testing.T, h http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/vehicles/inspect", &buf))
	return rr
}

func TestInspectHandler(t *testing.T) {
	store := servicestatus.NewMemoryStore()
	h := NewInspectHandler(inspection.New(factory.Models(), inspection.WithStore(store)))

	rr := postInspect(t, h, inspection.Request{
		VehicleID: "car-1",
		Model:     factory.Rorschach,
		Telemetry: map[string]any{
			"current_date":         "2023-07-31",
			"last_service_date":    "2021-01-01",
			"current_mileage":      60000,
			"last_service_mileage": 0,
		},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var res inspection.Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.True(t, res.EngineDue)
	assert.False(t, res.BatteryDue)
	assert.True(t, res.NeedsService)

	_, ok := store.Get("car-1")
	assert.True(t, ok)
}

func TestInspectHandler_Errors(t *testing.T) {
	permissive := NewInspectHandler(inspection.New(factory.Models()))
	strict := NewInspectHandler(inspection.New(factory.Models(), inspection.WithStrict(true)))
	reversed := map[string]any{"current_date": "2020-01-01", "last_service_date": "2021-01-01", "warning_light_on": false}

	cases := []struct {
		name string
		h    http.Handler
		body any
		want int
	}{
		{"missing id", permissive, inspection.Request{Model: factory.Calliope}, http.StatusBadRequest},
		{"unknown model", permissive, inspection.Request{VehicleID: "v", Model: "delorean"}, http.StatusBadRequest},
		{"bad telemetry", permissive, inspection.Request{VehicleID: "v", Model: factory.Calliope, Telemetry: map[string]any{"current_date": "soon"}}, http.StatusBadRequest},
		{"not json", permissive, "nope", http.StatusBadRequest},
		{"missing warning light", permissive, inspection.Request{VehicleID: "v", Model: factory.Palindrome, Telemetry: map[string]any{"current_date": "2021-02-01", "last_service_date": "2021-01-01"}}, http.StatusBadRequest},
		{"strict invalid", strict, inspection.Request{VehicleID: "v", Model: factory.Palindrome, Telemetry: reversed}, http.StatusUnprocessableEntity},
		{"permissive reversed", permissive, inspection.Request{VehicleID: "v", Model: factory.Palindrome, Telemetry: reversed}, http.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rr := postInspect(t, c.h, c.body)
			assert.Equal(t, c.want, rr.Code, rr.Body.String())
		})
	}

	rr := httptest.NewRecorder()
	permissive.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/vehicles/inspect", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

type failingInspector struct{}

func (failingInspector) Inspect(context.Context, inspection.Request) (inspection.Result, error) {
	return inspection.Result{}, errors.New("journal unavailable")
}

func TestInspectHandler_InternalError(t *testing.T) {
	rr := postInspect(t, NewInspectHandler(failingInspector{}), inspection.Request{VehicleID: "v"})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func intPtr(v int) *int { return &v }

func seededStore() *servicestatus.MemoryStore {
	store := servicestatus.NewMemoryStore()
	now := time.Now()
	store.Record(servicestatus.Status{VehicleID: "v1", Model: "calliope", CurrentStatus: servicestatus.StatusServiceDue, BatteryDue: true, DaysSinceService: intPtr(800), MileageSinceService: intPtr(100), InspectedAt: now})
	store.Record(servicestatus.Status{VehicleID: "v2", Model: "calliope", CurrentStatus: servicestatus.StatusOK, DaysSinceService: intPtr(200), MileageSinceService: intPtr(300), InspectedAt: now})
	store.Record(servicestatus.Status{VehicleID: "v3", Model: "palindrome", CurrentStatus: servicestatus.StatusServiceDue, EngineDue: true, DaysSinceService: intPtr(500), InspectedAt: now})
	return store
}

func TestStatusHandler_Filter(t *testing.T) {
	h := NewStatusHandler(seededStore())
	get := func(url string) []servicestatus.Status {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, url, nil))
		require.Equal(t, http.StatusOK, rr.Code)
		var out []servicestatus.Status
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
		return out
	}
	assert.Len(t, get("/api/vehicles/status"), 3)
	assert.Len(t, get("/api/vehicles/status?model=calliope"), 2)

	due := get("/api/vehicles/status?due=true")
	require.Len(t, due, 2)
	assert.Equal(t, "v1", due[0].VehicleID)
	assert.Equal(t, "v3", due[1].VehicleID)

	assert.Empty(t, get("/api/vehicles/status?model=glissade"))
}

func TestStatusHandler_Method(t *testing.T) {
	rr := httptest.NewRecorder()
	NewStatusHandler(servicestatus.NewMemoryStore()).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/vehicles/status", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
