package metrics

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kilianp07/fleetservice/core/events"
	coremetrics "github.com/kilianp07/fleetservice/core/metrics"
	"github.com/kilianp07/fleetservice/core/servicestatus"
	"github.com/kilianp07/fleetservice/internal/eventbus"
)

type captureSink struct {
	mu        sync.Mutex
	recs      []coremetrics.InspectionRecord
	due, tot  int
	fleetSeen chan struct{}
}

func (c *captureSink) RecordInspection(r []coremetrics.InspectionRecord) error {
	c.mu.Lock()
	c.recs = append(c.recs, r...)
	c.mu.Unlock()
	return nil
}

func (c *captureSink) RecordFleetDue(due, total int) error {
	c.mu.Lock()
	c.due, c.tot = due, total
	c.mu.Unlock()
	c.fleetSeen <- struct{}{}
	return nil
}

func TestEventCollector(t *testing.T) {
	bus := eventbus.NewTyped[events.InspectionEvent]()
	store := servicestatus.NewMemoryStore()
	store.Record(servicestatus.Status{VehicleID: "v1", CurrentStatus: servicestatus.StatusServiceDue})
	store.Record(servicestatus.Status{VehicleID: "v2", CurrentStatus: servicestatus.StatusOK})
	sink := &captureSink{fleetSeen: make(chan struct{}, 1)}

	ctx, cancel := context.WithCancel(context.Background())
	done := StartEventCollector(ctx, bus, sink, store)
	bus.Publish(events.InspectionEvent{InspectionID: "i1", VehicleID: "v1", Model: "calliope", NeedsService: true})

	select {
	case <-sink.fleetSeen:
	case <-time.After(time.Second):
		t.Fatal("collector did not record event")
	}
	sink.mu.Lock()
	if len(sink.recs) != 1 || sink.recs[0].InspectionID != "i1" || !sink.recs[0].NeedsService {
		t.Fatalf("unexpected records %#v", sink.recs)
	}
	if sink.due != 1 || sink.tot != 2 {
		t.Fatalf("unexpected fleet values %d/%d", sink.due, sink.tot)
	}
	sink.mu.Unlock()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("collector did not stop")
	}
}

func TestEventCollector_NilBus(t *testing.T) {
	done := StartEventCollector(context.Background(), nil, coremetrics.NopSink{}, nil)
	select {
	case <-done:
	default:
		t.Fatal("expected closed done channel")
	}
}
