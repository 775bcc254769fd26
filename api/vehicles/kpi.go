package vehicles

import (
	"net/http"

	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/fleetservice/core/servicestatus"
)

// Summary describes the spread of one reading across the fleet.
type Summary struct {
	Samples int     `json:"samples"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"stddev"`
	Max     float64 `json:"max"`
}

// FleetKPIs aggregates the latest status of every inspected vehicle.
type FleetKPIs struct {
	Vehicles            int            `json:"vehicles"`
	DueForService       int            `json:"due_for_service"`
	DueRatio            float64        `json:"due_ratio"`
	DueByModel          map[string]int `json:"due_by_model"`
	DueByComponent      map[string]int `json:"due_by_component"`
	DaysSinceService    Summary        `json:"days_since_service"`
	MileageSinceService Summary        `json:"mileage_since_service"`
}

// ComputeKPIs derives fleet indicators from the status entries.
func ComputeKPIs(entries []servicestatus.Status) FleetKPIs {
	k := FleetKPIs{
		Vehicles:       len(entries),
		DueByModel:     map[string]int{},
		DueByComponent: map[string]int{"engine": 0, "battery": 0},
	}
	var days, miles []float64
	for _, e := range entries {
		if e.NeedsService() {
			k.DueForService++
			k.DueByModel[e.Model]++
		}
		if e.EngineDue {
			k.DueByComponent["engine"]++
		}
		if e.BatteryDue {
			k.DueByComponent["battery"]++
		}
		if e.DaysSinceService != nil {
			days = append(days, float64(*e.DaysSinceService))
		}
		if e.MileageSinceService != nil {
			miles = append(miles, float64(*e.MileageSinceService))
		}
	}
	if k.Vehicles > 0 {
		k.DueRatio = float64(k.DueForService) / float64(k.Vehicles)
	}
	k.DaysSinceService = summarize(days)
	k.MileageSinceService = summarize(miles)
	return k
}

func summarize(xs []float64) Summary {
	s := Summary{Samples: len(xs)}
	switch len(xs) {
	case 0:
		return s
	case 1:
		s.Mean, s.Max = xs[0], xs[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	s.Max = xs[0]
	for _, x := range xs[1:] {
		if x > s.Max {
			s.Max = x
		}
	}
	return s
}

// NewKPIHandler exposes fleet service KPIs via GET /api/fleet/kpis.
func NewKPIHandler(store servicestatus.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, ComputeKPIs(store.List(servicestatus.Filter{Model: r.URL.Query().Get("model")})))
	})
}
