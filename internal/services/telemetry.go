package services

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/logging"
	"github.com/renato0307/inboxsim/internal/ports"
)

// InputStream is the sink stream local terminal input is written to
const InputStream = "input"

// TelemetryService moves tracker records and local input into the telemetry sink
type TelemetryService struct {
	now           func() time.Time
	onUnavailable func(error)
	once          sync.Once
	router        ports.RecordRouter
	sink          ports.TelemetrySink
	source        ports.TrackerSource
}

// NewTelemetryService creates a new TelemetryService. source may be nil when no tracker is used.
// onUnavailable is called at most once, when the tracker cannot be reached.
func NewTelemetryService(
	source ports.TrackerSource,
	router ports.RecordRouter,
	sink ports.TelemetrySink,
	onUnavailable func(error),
) *TelemetryService {
	return &TelemetryService{
		now:           time.Now,
		onUnavailable: onUnavailable,
		router:        router,
		sink:          sink,
		source:        source,
	}
}

// Run streams tracker records into the sink until ctx is cancelled.
// An unreachable tracker is not an error; the run continues without telemetry.
func (s *TelemetryService) Run(ctx context.Context) error {
	if s.source == nil {
		<-ctx.Done()
		return nil
	}

	records := make(chan ports.TrackerRecord, 256)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(records)
		err := s.source.Stream(gctx, records)
		if errors.Is(err, domain.ErrTelemetryUnavailable) {
			s.unavailable(err)
			return nil
		}
		return err
	})

	g.Go(func() error {
		for record := range records {
			stream, row, ok := s.router.Route(record, s.timestamp())
			if !ok {
				continue
			}
			if err := s.sink.Append(stream, row); err != nil {
				logging.Logger.Warn("Failed to store telemetry", "stream", stream, "error", err)
			}
		}
		return nil
	})

	err := g.Wait()
	if err != nil {
		logging.Logger.Warn("Tracker stream ended", "error", err)
	}
	return err
}

// RecordInput stores one local input event (key press or mouse action)
func (s *TelemetryService) RecordInput(device, event, detail string, x, y int) {
	if s.sink == nil {
		return
	}
	row := []string{s.timestamp(), device, event, detail, strconv.Itoa(x), strconv.Itoa(y)}
	if err := s.sink.Append(InputStream, row); err != nil {
		logging.Logger.Warn("Failed to store input event", "error", err)
	}
}

// Close flushes everything still buffered
func (s *TelemetryService) Close() error {
	if s.sink == nil {
		return nil
	}
	return s.sink.Close()
}

func (s *TelemetryService) unavailable(err error) {
	s.once.Do(func() {
		logging.Logger.Warn("Tracker unavailable, continuing without telemetry", "error", err)
		if s.onUnavailable != nil {
			s.onUnavailable(err)
		}
	})
}

func (s *TelemetryService) timestamp() string {
	return strconv.FormatFloat(float64(s.now().UnixMicro())/1000, 'f', 3, 64)
}
