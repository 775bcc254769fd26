package metrics

import (
	"errors"
	"testing"
)

type recordSink struct {
	count int
	due   int
	err   error
}

func (r *recordSink) RecordInspection([]InspectionRecord) error {
	r.count++
	return r.err
}

func (r *recordSink) RecordFleetDue(due, _ int) error {
	r.due = due
	return nil
}

type plainSink struct{ count int }

func (p *plainSink) RecordInspection([]InspectionRecord) error {
	p.count++
	return nil
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &plainSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordInspection(nil); err != nil {
		t.Fatalf("record inspection: %v", err)
	}
	if err := m.RecordFleetDue(3, 5); err != nil {
		t.Fatalf("record fleet due: %v", err)
	}
	if s1.count != 1 || s2.count != 1 || s1.due != 3 {
		t.Fatalf("records not forwarded")
	}
}

func TestMultiSink_ContinuesAfterError(t *testing.T) {
	boom := errors.New("boom")
	s1 := &recordSink{err: boom}
	s2 := &plainSink{}
	err := NewMultiSink(s1, s2).RecordInspection(nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined error, got %v", err)
	}
	if s2.count != 1 {
		t.Fatalf("second sink skipped")
	}
}
