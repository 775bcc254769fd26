package metrics

import (
	"context"

	"github.com/kilianp07/fleetservice/core/events"
	coremetrics "github.com/kilianp07/fleetservice/core/metrics"
	"github.com/kilianp07/fleetservice/core/servicestatus"
	"github.com/kilianp07/fleetservice/infra/logger"
	"github.com/kilianp07/fleetservice/internal/eventbus"
)

// StartEventCollector subscribes to the inspection bus and records every event
// in sink. When store is not nil the fleet due gauge is refreshed after each
// event. The collector stops when ctx is canceled or the bus is closed; the
// returned channel is closed once it has stopped.
func StartEventCollector(ctx context.Context, bus *eventbus.TypedBus[events.InspectionEvent], sink coremetrics.MetricsSink, store servicestatus.Store) <-chan struct{} {
	done := make(chan struct{})
	if bus == nil || sink == nil {
		close(done)
		return done
	}
	log := logger.New("metrics-collector")
	sub := bus.Subscribe()
	go func() {
		defer close(done)
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				rec := coremetrics.InspectionRecord{
					InspectionID: ev.InspectionID,
					VehicleID:    ev.VehicleID,
					Model:        ev.Model,
					EngineDue:    ev.EngineDue,
					BatteryDue:   ev.BatteryDue,
					NeedsService: ev.NeedsService,
					Time:         ev.Time,
				}
				if err := sink.RecordInspection([]coremetrics.InspectionRecord{rec}); err != nil {
					log.Errorf("record inspection %s: %v", ev.InspectionID, err)
				}
				recordFleet(sink, store, log)
			}
		}
	}()
	return done
}

func recordFleet(sink coremetrics.MetricsSink, store servicestatus.Store, log logger.Logger) {
	r, ok := sink.(coremetrics.FleetDueRecorder)
	if !ok || store == nil {
		return
	}
	all := store.List(servicestatus.Filter{})
	due := 0
	for _, st := range all {
		if st.NeedsService() {
			due++
		}
	}
	if err := r.RecordFleetDue(due, len(all)); err != nil {
		log.Errorf("record fleet due: %v", err)
	}
}
