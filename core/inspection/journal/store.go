// Package journal records inspection decisions so they can be audited later.
package journal

import (
	"context"
	"fmt"
	"time"
)

// Record captures one inspection decision.
type Record struct {
	InspectionID string    `json:"inspection_id"`
	Timestamp    time.Time `json:"timestamp"`
	VehicleID    string    `json:"vehicle_id"`
	Model        string    `json:"model"`
	Engine       string    `json:"engine"`
	Battery      string    `json:"battery"`
	EngineDue    bool      `json:"engine_due"`
	BatteryDue   bool      `json:"battery_due"`
	NeedsService bool      `json:"needs_service"`
}

// Query defines filters for retrieving records. Zero values match everything.
type Query struct {
	Start     time.Time
	End       time.Time
	VehicleID string
	Model     string
	DueOnly   bool
}

// Match reports whether r satisfies the query.
func (q Query) Match(r Record) bool {
	if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.Timestamp.After(q.End) {
		return false
	}
	if q.VehicleID != "" && r.VehicleID != q.VehicleID {
		return false
	}
	if q.Model != "" && r.Model != q.Model {
		return false
	}
	return !q.DueOnly || r.NeedsService
}

// Store persists Records and supports querying.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}

// Options selects and tunes a Store backend.
type Options struct {
	// Backend is "jsonl" or "sqlite".
	Backend    string
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Open creates the store described by opts.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case "jsonl", "":
		return NewRotatingJSONLStore(opts.Path, opts.MaxSizeMB, opts.MaxBackups, opts.MaxAgeDays)
	case "sqlite":
		return NewSQLiteStore(opts.Path)
	default:
		return nil, fmt.Errorf("unknown journal backend %s", opts.Backend)
	}
}
