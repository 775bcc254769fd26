package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/fleetservice/core/inspection/journal"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	recs := []journal.Record{{
		InspectionID: "i1",
		Timestamp:    time.Date(2024, time.May, 2, 8, 0, 0, 0, time.UTC),
		VehicleID:    "v1",
		Model:        "rorschach",
		Engine:       "willoughby",
		Battery:      "nubbin",
		EngineDue:    true,
		NeedsService: true,
	}}
	require.NoError(t, WriteCSV(&buf, recs))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"i1", "2024-05-02T08:00:00Z", "v1", "rorschach", "willoughby", "nubbin", "true", "false", "true"}, rows[1])
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
