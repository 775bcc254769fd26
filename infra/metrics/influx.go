package metrics

import (
	"context"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/fleetservice/core/metrics"
	"github.com/kilianp07/fleetservice/infra/logger"
)

// InfluxSink writes inspection events to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a NopSink
// if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordInspection writes one vehicle_inspection point per record.
func (s *InfluxSink) RecordInspection(recs []coremetrics.InspectionRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, r := range recs {
		if err := s.writeAPI.WritePoint(ctx, inspectionPoint(r)); err != nil {
			return err
		}
	}
	return nil
}

// RecordFleetDue writes the fleet summary point.
func (s *InfluxSink) RecordFleetDue(due, total int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("fleet_service_due").
		AddTag("component", "inspector").
		AddField("due", due).
		AddField("total", total).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying HTTP client.
func (s *InfluxSink) Close() { s.client.Close() }

func inspectionPoint(r coremetrics.InspectionRecord) *write.Point {
	return write.NewPointWithMeasurement("vehicle_inspection").
		AddTag("vehicle_id", r.VehicleID).
		AddTag("model", r.Model).
		AddTag("inspection_id", r.InspectionID).
		AddField("engine_due", r.EngineDue).
		AddField("battery_due", r.BatteryDue).
		AddField("needs_service", r.NeedsService).
		SetTime(r.Time)
}
