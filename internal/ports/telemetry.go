package ports

import "context"

// TrackerRecord is one raw record received from the tracker, already split into fields
type TrackerRecord []string

// TrackerSource streams records from an external pointer/gaze tracker
type TrackerSource interface {
	// Stream delivers records until ctx is cancelled or the connection drops
	Stream(ctx context.Context, records chan<- TrackerRecord) error
}

// TelemetrySink buffers telemetry rows per stream and persists them
type TelemetrySink interface {
	Append(stream string, row []string) error
	Close() error
}

// RecordRouter maps a tracker record to the stream it belongs to.
// ok is false for records that carry no telemetry.
type RecordRouter interface {
	Route(record TrackerRecord, ts string) (stream string, row []string, ok bool)
}
