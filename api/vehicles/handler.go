package vehicles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kilianp07/fleetservice/core/factory"
	"github.com/kilianp07/fleetservice/core/inspection"
	"github.com/kilianp07/fleetservice/core/model"
	"github.com/kilianp07/fleetservice/core/servicestatus"
)

// Inspector runs a single inspection.
type Inspector interface {
	Inspect(ctx context.Context, req inspection.Request) (inspection.Result, error)
}

// NewInspectHandler evaluates a vehicle via POST /api/vehicles/inspect.
func NewInspectHandler(insp Inspector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req inspection.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		res, err := insp.Inspect(r.Context(), req)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, res)
	})
}

func statusFor(err error) int {
	var invalid *model.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, inspection.ErrMissingVehicleID),
		errors.Is(err, factory.ErrUnknownModel),
		errors.Is(err, factory.ErrInvalidTelemetry):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewStatusHandler returns an HTTP handler exposing vehicle status data via GET /api/vehicles/status.
func NewStatusHandler(store servicestatus.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		f := servicestatus.Filter{
			Model:   r.URL.Query().Get("model"),
			DueOnly: r.URL.Query().Get("due") == "true",
		}
		entries := store.List(f)
		if entries == nil {
			entries = []servicestatus.Status{}
		}
		writeJSON(w, entries)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
