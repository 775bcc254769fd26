package metrics

import "errors"

// MultiSink fans records out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordInspection forwards the records to every sink and joins their errors.
func (m *MultiSink) RecordInspection(recs []InspectionRecord) error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.RecordInspection(recs); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RecordFleetDue forwards to the sinks implementing FleetDueRecorder.
func (m *MultiSink) RecordFleetDue(due, total int) error {
	var errs []error
	for _, s := range m.Sinks {
		if r, ok := s.(FleetDueRecorder); ok {
			if err := r.RecordFleetDue(due, total); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Close closes every sink that holds resources.
func (m *MultiSink) Close() {
	for _, s := range m.Sinks {
		if c, ok := s.(interface{ Close() }); ok {
			c.Close()
		}
	}
}
