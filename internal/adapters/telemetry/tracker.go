package telemetry

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/logging"
	"github.com/renato0307/inboxsim/internal/ports"
)

const dialTimeout = 3 * time.Second

// TrackerClient implements ports.TrackerSource over TCP.
// Records are separated by \r\n and fields by ';'.
type TrackerClient struct {
	address string
}

// Verify interface compliance at compile time
var _ ports.TrackerSource = (*TrackerClient)(nil)

// NewTrackerClient creates a client for the tracker at address (host:port)
func NewTrackerClient(address string) *TrackerClient {
	return &TrackerClient{address: address}
}

// Stream connects once and forwards records until ctx is done or the tracker disconnects.
// A failed connection is reported as ErrTelemetryUnavailable and never retried.
func (c *TrackerClient) Stream(ctx context.Context, records chan<- ports.TrackerRecord) error {
	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.address)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTelemetryUnavailable, err)
	}
	defer conn.Close()

	logging.Logger.Info("Connected to tracker", "address", c.address)

	// Unblock the read when the run ends
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	scanner.Split(scanCRLF)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		select {
		case records <- ports.TrackerRecord(strings.Split(line, ";")):
		case <-ctx.Done():
			return nil
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("tracker connection lost: %w", err)
	}
	return nil
}

// scanCRLF splits input on \r\n, returning a trailing partial record at EOF
func scanCRLF(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.Index(data, []byte("\r\n")); i >= 0 {
		return i + 2, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
