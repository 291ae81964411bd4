package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/inboxsim/internal/adapters/telemetry"
	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/ports"
)

type fakeSource struct {
	err     error
	records []ports.TrackerRecord
}

func (f *fakeSource) Stream(ctx context.Context, records chan<- ports.TrackerRecord) error {
	if f.err != nil {
		return f.err
	}
	for _, r := range f.records {
		records <- r
	}
	return nil
}

type memorySink struct {
	closed bool
	mu     sync.Mutex
	rows   map[string][][]string
}

func (m *memorySink) Append(stream string, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rows == nil {
		m.rows = make(map[string][][]string)
	}
	m.rows[stream] = append(m.rows[stream], row)
	return nil
}

func (m *memorySink) Close() error {
	m.closed = true
	return nil
}

func record(n int) ports.TrackerRecord {
	out := make(ports.TrackerRecord, n)
	for i := range out {
		out[i] = fmt.Sprintf("f%d", i)
	}
	return out
}

func TestTelemetryService_RoutesRecords(t *testing.T) {
	source := &fakeSource{records: []ports.TrackerRecord{record(18), record(10), record(6), record(3)}}
	sink := &memorySink{}
	service := NewTelemetryService(source, telemetry.Router{}, sink, nil)
	service.now = func() time.Time { return time.UnixMilli(1700000000000) }

	require.NoError(t, service.Run(context.Background()))

	require.Len(t, sink.rows[string(telemetry.StreamEye)], 1)
	require.Len(t, sink.rows[string(telemetry.StreamMouse)], 1)
	require.Len(t, sink.rows[string(telemetry.StreamKeyboard)], 1)
	assert.Len(t, sink.rows, 3)
	assert.Equal(t, []string{"1700000000000.000", "f3", "f5"}, sink.rows[string(telemetry.StreamKeyboard)][0])
}

func TestTelemetryService_UnavailableReportedOnce(t *testing.T) {
	source := &fakeSource{err: fmt.Errorf("%w: connection refused", domain.ErrTelemetryUnavailable)}
	var calls int
	service := NewTelemetryService(source, telemetry.Router{}, &memorySink{}, func(err error) {
		calls++
		assert.ErrorIs(t, err, domain.ErrTelemetryUnavailable)
	})

	require.NoError(t, service.Run(context.Background()))
	require.NoError(t, service.Run(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestTelemetryService_WithoutSourceWaitsForCancel(t *testing.T) {
	service := NewTelemetryService(nil, telemetry.Router{}, &memorySink{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, service.Run(ctx))
}

func TestTelemetryService_RecordInput(t *testing.T) {
	sink := &memorySink{}
	service := NewTelemetryService(nil, telemetry.Router{}, sink, nil)
	service.now = func() time.Time { return time.UnixMilli(1700000000123) }

	service.RecordInput("keyboard", "key", "ctrl+c", 0, 0)
	service.RecordInput("mouse", "click", "left", 12, 4)
	require.NoError(t, service.Close())

	assert.True(t, sink.closed)
	assert.Equal(t, [][]string{
		{"1700000000123.000", "keyboard", "key", "ctrl+c", "0", "0"},
		{"1700000000123.000", "mouse", "click", "left", "12", "4"},
	}, sink.rows[InputStream])
}
