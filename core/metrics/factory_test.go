package metrics_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kilianp07/fleetservice/core/factory"
	metrics "github.com/kilianp07/fleetservice/core/metrics"
	inframetrics "github.com/kilianp07/fleetservice/infra/metrics"
)

func TestSinkTypes(t *testing.T) {
	got := strings.Join(metrics.SinkTypes(), ",")
	if got != "influx,nop,prometheus" {
		t.Fatalf("unexpected sink types %q", got)
	}
}

func TestNewMetricsSink_Prometheus(t *testing.T) {
	s, err := metrics.NewMetricsSink([]factory.ModuleConfig{{Type: "prometheus"}})
	if err != nil {
		t.Fatalf("create prometheus: %v", err)
	}
	if _, ok := s.(*inframetrics.PromSink); !ok {
		t.Fatalf("expected *PromSink, got %T", s)
	}

	// A second build reuses the collectors already on the default registry.
	again, err := metrics.NewMetricsSink([]factory.ModuleConfig{{Type: "prometheus"}})
	if err != nil {
		t.Fatalf("rebuild prometheus: %v", err)
	}
	if err := again.RecordInspection([]metrics.InspectionRecord{
		{VehicleID: "car-1", Model: "calliope", BatteryDue: true, NeedsService: true},
	}); err != nil {
		t.Fatalf("record: %v", err)
	}
	n, err := testutil.GatherAndCount(prometheus.DefaultGatherer, "vehicle_inspections_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if n == 0 {
		t.Fatal("inspection not exported on the default registry")
	}
}

func TestNewMetricsSink_Multi(t *testing.T) {
	s, err := metrics.NewMetricsSink(nil)
	if err != nil {
		t.Fatalf("create default: %v", err)
	}
	if _, ok := s.(metrics.NopSink); !ok {
		t.Fatalf("expected NopSink, got %T", s)
	}

	s, err = metrics.NewMetricsSink([]factory.ModuleConfig{{Type: "nop"}, {Type: "prometheus"}})
	if err != nil {
		t.Fatalf("create multi: %v", err)
	}
	m, ok := s.(*metrics.MultiSink)
	if !ok {
		t.Fatalf("expected MultiSink, got %T", s)
	}
	if len(m.Sinks) != 2 {
		t.Fatalf("expected 2 sinks, got %d", len(m.Sinks))
	}
	if _, ok := m.Sinks[1].(*inframetrics.PromSink); !ok {
		t.Fatalf("expected second sink to be *PromSink, got %T", m.Sinks[1])
	}
}

func TestNewMetricsSink_UnknownTypeNamesEntry(t *testing.T) {
	_, err := metrics.NewMetricsSink([]factory.ModuleConfig{{Type: "nop"}, {Type: "statsd"}})
	if !errors.Is(err, factory.ErrUnknownModel) {
		t.Fatalf("expected unknown type error, got %v", err)
	}
	if !strings.Contains(err.Error(), "metrics sink 1 (statsd)") {
		t.Fatalf("error does not name the entry: %v", err)
	}
}
