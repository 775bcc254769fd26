package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kilianp07/fleetservice/api/inspections"
	"github.com/kilianp07/fleetservice/api/vehicles"
	"github.com/kilianp07/fleetservice/config"
	"github.com/kilianp07/fleetservice/core/events"
	"github.com/kilianp07/fleetservice/core/factory"
	"github.com/kilianp07/fleetservice/core/inspection"
	"github.com/kilianp07/fleetservice/core/inspection/journal"
	coremetrics "github.com/kilianp07/fleetservice/core/metrics"
	"github.com/kilianp07/fleetservice/core/monitoring"
	"github.com/kilianp07/fleetservice/core/servicestatus"
	"github.com/kilianp07/fleetservice/infra/logger"
	"github.com/kilianp07/fleetservice/infra/metrics"
	"github.com/kilianp07/fleetservice/infra/mqtt"
	"github.com/kilianp07/fleetservice/internal/eventbus"
)

// Service wires the inspector to its stores, sinks and the HTTP API.
type Service struct {
	Inspector *inspection.Inspector
	Store     servicestatus.Store

	cfg      *config.Config
	journal  journal.Store
	bus      *eventbus.TypedBus[events.InspectionEvent]
	sink     coremetrics.MetricsSink
	notifier *mqtt.PahoNotifier
	log      logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	jr, err := journal.Open(cfg.Logging.JournalOptions())
	if err != nil {
		return nil, fmt.Errorf("inspection journal: %w", err)
	}

	store := servicestatus.NewMemoryStore()
	bus := eventbus.NewTyped[events.InspectionEvent]()
	opts := []inspection.Option{
		inspection.WithStore(store),
		inspection.WithJournal(jr),
		inspection.WithBus(bus),
		inspection.WithLogger(logger.New("inspection")),
		inspection.WithStrict(cfg.Inspection.Strict),
	}

	svc := &Service{Store: store, cfg: cfg, journal: jr, bus: bus, sink: sink, log: logg}
	if cfg.MQTT.Enabled {
		n, err := mqtt.NewPahoNotifier(cfg.MQTT)
		if err != nil {
			_ = jr.Close()
			return nil, fmt.Errorf("mqtt notifier: %w", err)
		}
		svc.notifier = n
		opts = append(opts, inspection.WithNotifier(n))
	}
	svc.Inspector = inspection.New(factory.Models(), opts...)
	return svc, nil
}

// Handler returns the REST API routes.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/vehicles/inspect", vehicles.NewInspectHandler(s.Inspector))
	mux.Handle("/api/vehicles/status", vehicles.NewStatusHandler(s.Store))
	mux.Handle("/api/fleet/kpis", vehicles.NewKPIHandler(s.Store))
	mux.Handle("/api/inspections", inspections.NewLogHandler(s.journal, s.cfg.HTTP.LogToken))
	return mux
}

// Run serves the API and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	collected := metrics.StartEventCollector(ctx, s.bus, s.sink, s.Store)
	if addr := s.cfg.Metrics.PrometheusAddr; addr != "" {
		go func() {
			defer monitoring.Recover()
			if err := metrics.StartPromServer(ctx, addr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:              s.cfg.HTTP.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.HTTP.ReadTimeout(),
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("API listening on %s", s.cfg.HTTP.Addr)
		errCh <- srv.ListenAndServe()
	}()

	var runErr error
	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.HTTP.ShutdownTimeout())
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			runErr = err
		}
	}
	s.bus.Close()
	<-collected
	return runErr
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	if s.notifier != nil {
		s.notifier.Disconnect()
	}
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	monitoring.Flush(2 * time.Second)
	return s.journal.Close()
}
