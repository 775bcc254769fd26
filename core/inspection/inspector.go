// Package inspection runs the service decision for a vehicle and fans the
// outcome out to the decision journal, the status store, the event bus and
// the service-due notifier.
package inspection

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/fleetservice/core/events"
	"github.com/kilianp07/fleetservice/core/factory"
	"github.com/kilianp07/fleetservice/core/inspection/journal"
	"github.com/kilianp07/fleetservice/core/logger"
	"github.com/kilianp07/fleetservice/core/model"
	"github.com/kilianp07/fleetservice/core/monitoring"
	"github.com/kilianp07/fleetservice/core/mqtt"
	"github.com/kilianp07/fleetservice/core/servicestatus"
	"github.com/kilianp07/fleetservice/internal/eventbus"
)

// ErrMissingVehicleID is returned when a request carries no vehicle identifier.
var ErrMissingVehicleID = errors.New("vehicle id is required")

// Request asks for the inspection of one vehicle. Telemetry holds the raw
// readings decoded by the model registry.
type Request struct {
	VehicleID string         `json:"vehicle_id"`
	Model     string         `json:"model"`
	Telemetry map[string]any `json:"telemetry"`
}

// Result is the outcome of one inspection.
type Result struct {
	ID                  uuid.UUID `json:"id"`
	VehicleID           string    `json:"vehicle_id"`
	Model               string    `json:"model"`
	Engine              string    `json:"engine"`
	Battery             string    `json:"battery"`
	EngineDue           bool      `json:"engine_due"`
	BatteryDue          bool      `json:"battery_due"`
	NeedsService        bool      `json:"needs_service"`
	MileageSinceService *int      `json:"mileage_since_service,omitempty"`
	DaysSinceService    *int      `json:"days_since_service,omitempty"`
	Timestamp           time.Time `json:"timestamp"`
}

// Inspector evaluates vehicles built by a model registry.
type Inspector struct {
	models   *factory.Registry[*model.Vehicle]
	store    servicestatus.Store
	journal  journal.Store
	bus      *eventbus.TypedBus[events.InspectionEvent]
	notifier mqtt.Notifier
	logger   logger.Logger
	strict   bool
	now      func() time.Time
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithStore records every result in the status store.
func WithStore(s servicestatus.Store) Option { return func(i *Inspector) { i.store = s } }

// WithJournal appends every decision to the journal.
func WithJournal(j journal.Store) Option { return func(i *Inspector) { i.journal = j } }

// WithBus publishes an InspectionEvent per result.
func WithBus(b *eventbus.TypedBus[events.InspectionEvent]) Option {
	return func(i *Inspector) { i.bus = b }
}

// WithNotifier sends a notice for vehicles that need service.
func WithNotifier(n mqtt.Notifier) Option { return func(i *Inspector) { i.notifier = n } }

func WithLogger(l logger.Logger) Option {
	return func(i *Inspector) {
		if l != nil {
			i.logger = l
		}
	}
}

// WithStrict rejects implausible readings instead of evaluating them.
func WithStrict(strict bool) Option { return func(i *Inspector) { i.strict = strict } }

func WithClock(now func() time.Time) Option {
	return func(i *Inspector) {
		if now != nil {
			i.now = now
		}
	}
}

// New returns an Inspector creating vehicles from models.
func New(models *factory.Registry[*model.Vehicle], opts ...Option) *Inspector {
	i := &Inspector{models: models, logger: nopLogger{}, now: time.Now}
	for _, o := range opts {
		o(i)
	}
	return i
}

// Models lists the vehicle models the inspector can build.
func (i *Inspector) Models() []string { return i.models.Names() }

// Inspect builds the vehicle described by req and evaluates it.
func (i *Inspector) Inspect(ctx context.Context, req Request) (Result, error) {
	if req.VehicleID == "" {
		return Result{}, ErrMissingVehicleID
	}
	name := strings.ToLower(strings.TrimSpace(req.Model))
	v, err := i.models.Create(factory.ModuleConfig{Type: name, Conf: req.Telemetry})
	if err != nil {
		return Result{}, fmt.Errorf("vehicle %s: %w", req.VehicleID, err)
	}
	return i.InspectVehicle(ctx, req.VehicleID, name, v)
}

// InspectVehicle evaluates an already built vehicle.
func (i *Inspector) InspectVehicle(ctx context.Context, vehicleID, modelName string, v *model.Vehicle) (Result, error) {
	if vehicleID == "" {
		return Result{}, ErrMissingVehicleID
	}
	if i.strict {
		if err := v.Validate(); err != nil {
			return Result{}, fmt.Errorf("vehicle %s: %w", vehicleID, err)
		}
	}
	res := evaluate(vehicleID, modelName, v)
	res.ID = uuid.New()
	res.Timestamp = i.now()

	i.logger.Debugw("inspection", map[string]any{
		"vehicle_id":    res.VehicleID,
		"model":         res.Model,
		"engine_due":    res.EngineDue,
		"battery_due":   res.BatteryDue,
		"needs_service": res.NeedsService,
	})

	// Nothing else observes an inspection the journal failed to keep.
	if i.journal != nil {
		if err := i.journal.Append(ctx, toRecord(res)); err != nil {
			monitoring.CaptureException(err, map[string]string{"vehicle_id": vehicleID, "stage": "journal"})
			return res, fmt.Errorf("journal inspection %s: %w", res.ID, err)
		}
	}
	if i.store != nil {
		i.store.Record(toStatus(res))
	}
	if i.bus != nil {
		i.bus.Publish(toEvent(res))
	}
	if res.NeedsService && i.notifier != nil {
		i.notify(res)
	}
	return res, nil
}

func (i *Inspector) notify(res Result) {
	id, err := i.notifier.NotifyServiceDue(mqtt.ServiceDueNotice{
		VehicleID:   res.VehicleID,
		Model:       res.Model,
		EngineDue:   res.EngineDue,
		BatteryDue:  res.BatteryDue,
		InspectedAt: res.Timestamp,
	})
	if err != nil {
		i.logger.Errorf("service notice for %s failed: %v", res.VehicleID, err)
		monitoring.CaptureException(err, map[string]string{"vehicle_id": res.VehicleID, "stage": "notify"})
		return
	}
	i.logger.Infof("service notice %s sent for %s", id, res.VehicleID)
}

// evaluate asks both parts before combining them so each outcome is reported.
func evaluate(vehicleID, modelName string, v *model.Vehicle) Result {
	res := Result{
		VehicleID:  vehicleID,
		Model:      modelName,
		Engine:     partName(v.Engine()),
		Battery:    partName(v.Battery()),
		EngineDue:  v.Engine().NeedsService(),
		BatteryDue: v.Battery().NeedsService(),
	}
	res.NeedsService = res.EngineDue || res.BatteryDue
	if m, ok := v.Engine().(model.MileageMeter); ok {
		d := m.MileageSinceService()
		res.MileageSinceService = &d
	}
	if a, ok := v.Battery().(model.AgeMeter); ok {
		d := a.DaysSinceService()
		res.DaysSinceService = &d
	}
	return res
}

func partName(p model.Serviceable) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", p)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Infow(string, map[string]any)  {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
