package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/fleetservice/core/metrics"
)

// PromSink records inspections in Prometheus metrics.
type PromSink struct {
	inspections *prometheus.CounterVec
	partsDue    *prometheus.CounterVec
	fleetDue    prometheus.Gauge
	fleetTotal  prometheus.Gauge
}

// NewPromSink registers inspection metrics on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	inspections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vehicle_inspections_total",
		Help: "Total number of vehicle inspections",
	}, []string{"model", "needs_service"})
	partsDue := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "component_service_due_total",
		Help: "Number of inspections where a component was due for service",
	}, []string{"model", "component"})
	fleetDue := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fleet_vehicles_due_service",
		Help: "Number of known vehicles whose last inspection found them due for service",
	})
	fleetTotal := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fleet_vehicles_inspected",
		Help: "Number of distinct vehicles inspected",
	})

	var err error
	if inspections, err = register(reg, inspections); err != nil {
		return nil, err
	}
	if partsDue, err = register(reg, partsDue); err != nil {
		return nil, err
	}
	if fleetDue, err = register(reg, fleetDue); err != nil {
		return nil, err
	}
	if fleetTotal, err = register(reg, fleetTotal); err != nil {
		return nil, err
	}
	return &PromSink{inspections: inspections, partsDue: partsDue, fleetDue: fleetDue, fleetTotal: fleetTotal}, nil
}

// register reuses an already registered collector of the same description.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordInspection increments the counters for each inspection.
func (s *PromSink) RecordInspection(recs []coremetrics.InspectionRecord) error {
	for _, r := range recs {
		s.inspections.WithLabelValues(r.Model, strconv.FormatBool(r.NeedsService)).Inc()
		if r.EngineDue {
			s.partsDue.WithLabelValues(r.Model, "engine").Inc()
		}
		if r.BatteryDue {
			s.partsDue.WithLabelValues(r.Model, "battery").Inc()
		}
	}
	return nil
}

// RecordFleetDue sets the fleet gauges.
func (s *PromSink) RecordFleetDue(due, total int) error {
	s.fleetDue.Set(float64(due))
	s.fleetTotal.Set(float64(total))
	return nil
}
