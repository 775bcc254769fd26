package monitoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureForwardsToInstalledMonitor(t *testing.T) {
	rec := &Recorder{}
	Init(rec)
	t.Cleanup(func() { Init(nil) })

	CaptureException(nil, nil)
	CaptureException(errors.New("boom"), map[string]string{"vehicle_id": "v1"})

	events := rec.Events()
	require.Len(t, events, 1)
	assert.EqualError(t, events[0].Err, "boom")
	assert.Equal(t, "v1", events[0].Tags["vehicle_id"])
}

func TestInitNilRestoresNop(t *testing.T) {
	Init(nil)
	_, ok := Current().(NopMonitor)
	assert.True(t, ok)
}

func TestRecoverReportsAndRepanics(t *testing.T) {
	rec := &Recorder{}
	Init(rec)
	t.Cleanup(func() { Init(nil) })

	assert.PanicsWithValue(t, "kaboom", func() {
		defer Recover()
		panic("kaboom")
	})
	events := rec.Events()
	require.Len(t, events, 1)
	assert.EqualError(t, events[0].Err, "panic: kaboom")
	assert.Equal(t, 1, rec.flushes)
}
