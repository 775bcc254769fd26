package journal

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists records to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at path and ensures the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS inspections (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        inspection_id TEXT NOT NULL,
        ts INTEGER NOT NULL,
        vehicle_id TEXT NOT NULL,
        model TEXT NOT NULL,
        engine TEXT,
        battery TEXT,
        engine_due INTEGER NOT NULL,
        battery_due INTEGER NOT NULL,
        needs_service INTEGER NOT NULL
    )`
	index := `CREATE INDEX IF NOT EXISTS inspections_vehicle_ts ON inspections (vehicle_id, ts)`
	for _, stmt := range []string{schema, index} {
		if _, err := db.Exec(stmt); err != nil {
			if cerr := db.Close(); cerr != nil {
				return nil, fmt.Errorf("close db: %v (schema err: %w)", cerr, err)
			}
			return nil, err
		}
	}
	return &SQLiteStore{db: db}, nil
}

// Append writes the record to the database.
func (s *SQLiteStore) Append(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO inspections (inspection_id, ts, vehicle_id, model, engine, battery, engine_due, battery_due, needs_service)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.InspectionID, rec.Timestamp.UnixNano(), rec.VehicleID, rec.Model, rec.Engine, rec.Battery,
		rec.EngineDue, rec.BatteryDue, rec.NeedsService)
	return err
}

// Query returns records matching q ordered by timestamp.
func (s *SQLiteStore) Query(ctx context.Context, q Query) ([]Record, error) {
	var (
		where []string
		args  []any
	)
	if !q.Start.IsZero() {
		where = append(where, "ts >= ?")
		args = append(args, q.Start.UnixNano())
	}
	if !q.End.IsZero() {
		where = append(where, "ts <= ?")
		args = append(args, q.End.UnixNano())
	}
	if q.VehicleID != "" {
		where = append(where, "vehicle_id = ?")
		args = append(args, q.VehicleID)
	}
	if q.Model != "" {
		where = append(where, "model = ?")
		args = append(args, q.Model)
	}
	if q.DueOnly {
		where = append(where, "needs_service = 1")
	}
	query := `SELECT inspection_id, ts, vehicle_id, model, engine, battery, engine_due, battery_due, needs_service FROM inspections`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY ts, id"
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []Record
	for rows.Next() {
		var (
			r  Record
			ts int64
		)
		if err := rows.Scan(&r.InspectionID, &ts, &r.VehicleID, &r.Model, &r.Engine, &r.Battery,
			&r.EngineDue, &r.BatteryDue, &r.NeedsService); err != nil {
			return nil, err
		}
		r.Timestamp = time.Unix(0, ts).UTC()
		res = append(res, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }
