package telemetry

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/renato0307/inboxsim/internal/logging"
	"github.com/renato0307/inboxsim/internal/ports"
)

// CSVSink implements ports.TelemetrySink with one append-only CSV file per stream.
// Rows are buffered and written in batches; Close writes whatever is left.
type CSVSink struct {
	buffers map[Stream]*buffer
}

// Verify interface compliance at compile time
var _ ports.TelemetrySink = (*CSVSink)(nil)

type buffer struct {
	mu        sync.Mutex
	path      string
	rows      [][]string
	threshold int
}

// FilePath returns the file a stream is written to
func FilePath(dir, launch string, stream Stream) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.csv", launch, stream))
}

// NewCSVSink creates the stream files with their headers
func NewCSVSink(dir, launch string, streams ...Stream) (*CSVSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create telemetry directory: %w", err)
	}

	sink := &CSVSink{buffers: make(map[Stream]*buffer, len(streams))}
	for _, stream := range streams {
		spec, ok := Specs[stream]
		if !ok {
			return nil, fmt.Errorf("unknown telemetry stream %q", stream)
		}

		path := FilePath(dir, launch, stream)
		if err := writeRows(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, [][]string{spec.Columns}); err != nil {
			return nil, err
		}
		sink.buffers[stream] = &buffer{path: path, threshold: spec.Threshold}
	}

	return sink, nil
}

// Append buffers a row, writing the buffer out once it exceeds the stream's threshold.
// Rows for streams the sink was not created with are ignored.
func (s *CSVSink) Append(stream string, row []string) error {
	b, ok := s.buffers[Stream(stream)]
	if !ok {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.rows = append(b.rows, row)
	if len(b.rows) > b.threshold {
		return b.flushLocked()
	}
	return nil
}

// Buffered returns how many rows of a stream are waiting to be written
func (s *CSVSink) Buffered(stream Stream) int {
	b, ok := s.buffers[stream]
	if !ok {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.rows)
}

// Close writes all buffered rows
func (s *CSVSink) Close() error {
	var errs []error
	for _, b := range s.buffers {
		b.mu.Lock()
		errs = append(errs, b.flushLocked())
		b.mu.Unlock()
	}
	return errors.Join(errs...)
}

func (b *buffer) flushLocked() error {
	if len(b.rows) == 0 {
		return nil
	}
	if err := writeRows(b.path, os.O_APPEND|os.O_WRONLY, b.rows); err != nil {
		return err
	}
	logging.Logger.Debug("Telemetry flushed", "path", b.path, "rows", len(b.rows))
	b.rows = b.rows[:0]
	return nil
}

func writeRows(path string, flag int, rows [][]string) error {
	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return fmt.Errorf("failed to open telemetry file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write telemetry: %w", err)
	}
	return nil
}
