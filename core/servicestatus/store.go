package servicestatus

import (
	"sort"
	"sync"
	"time"
)

// Current status values.
const (
	StatusOK         = "ok"
	StatusServiceDue = "service_due"
)

// Status captures the outcome of the latest inspection of a vehicle.
type Status struct {
	VehicleID           string    `json:"vehicle_id"`
	Model               string    `json:"model"`
	Engine              string    `json:"engine"`
	Battery             string    `json:"battery"`
	CurrentStatus       string    `json:"current_status"`
	EngineDue           bool      `json:"engine_due"`
	BatteryDue          bool      `json:"battery_due"`
	MileageSinceService *int      `json:"mileage_since_service,omitempty"`
	DaysSinceService    *int      `json:"days_since_service,omitempty"`
	LastInspectionID    string    `json:"last_inspection_id"`
	InspectedAt         time.Time `json:"inspected_at"`
}

// NeedsService reports whether the last inspection found the vehicle due.
func (s Status) NeedsService() bool { return s.CurrentStatus == StatusServiceDue }

type Filter struct {
	Model   string
	DueOnly bool
}

type Store interface {
	Record(Status)
	Get(vehicleID string) (Status, bool)
	List(Filter) []Status
}

// MemoryStore keeps the latest status per vehicle in memory only.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Status
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]Status{}}
}

// Record replaces the status of st.VehicleID unless a newer inspection is
// already stored.
func (s *MemoryStore) Record(st Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.data[st.VehicleID]; ok && prev.InspectedAt.After(st.InspectedAt) {
		return
	}
	s.data[st.VehicleID] = st
}

func (s *MemoryStore) Get(id string) (Status, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.data[id]
	return st, ok
}

func (s *MemoryStore) List(f Filter) []Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]Status, 0, len(s.data))
	for _, st := range s.data {
		if f.Model != "" && st.Model != f.Model {
			continue
		}
		if f.DueOnly && !st.NeedsService() {
			continue
		}
		res = append(res, st)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].VehicleID < res[j].VehicleID })
	return res
}
