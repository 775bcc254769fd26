// Package export renders inspection journal records for spreadsheets and
// downstream tooling.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/kilianp07/fleetservice/core/inspection/journal"
)

// Header lists the CSV columns written by WriteCSV.
var Header = []string{"inspection_id", "timestamp", "vehicle_id", "model", "engine", "battery", "engine_due", "battery_due", "needs_service"}

// WriteJSON writes the records to w as a JSON array.
func WriteJSON(w io.Writer, recs []journal.Record) error {
	if recs == nil {
		recs = []journal.Record{}
	}
	return json.NewEncoder(w).Encode(recs)
}

// WriteCSV writes the records to w with a header row.
func WriteCSV(w io.Writer, recs []journal.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range recs {
		row := []string{
			r.InspectionID,
			r.Timestamp.UTC().Format(time.RFC3339),
			r.VehicleID,
			r.Model,
			r.Engine,
			r.Battery,
			strconv.FormatBool(r.EngineDue),
			strconv.FormatBool(r.BatteryDue),
			strconv.FormatBool(r.NeedsService),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
