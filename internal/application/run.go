package application

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/inboxsim/internal/adapters/content"
	"github.com/renato0307/inboxsim/internal/adapters/eventlog"
	"github.com/renato0307/inboxsim/internal/adapters/telemetry"
	"github.com/renato0307/inboxsim/internal/config"
	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/logging"
	"github.com/renato0307/inboxsim/internal/ports"
	"github.com/renato0307/inboxsim/internal/services"
	"github.com/renato0307/inboxsim/internal/ui"
)

// RunOptions describes one participant run
type RunOptions struct {
	DevMode        bool
	InputCapture   bool                     // Record terminal key and mouse events
	Keys           config.KeyBindingsConfig // Key overrides, already validated
	Participant    string
	SaveLocation   string // Replaces the study's saveLocation when set
	SoundEnabled   bool
	SoundPlayer    ports.SoundPlayer
	StudyPath      string
	TrackerAddress string // Empty runs without the tracker
}

// Launcher assembles participant runs. One launcher serves every run of a process.
type Launcher struct {
	runs    *services.RunService
	studies *services.StudyService
}

// NewLauncher creates a new Launcher. runs may be nil when no registry is available.
func NewLauncher(studies *services.StudyService, runs *services.RunService) *Launcher {
	return &Launcher{
		runs:    runs,
		studies: studies,
	}
}

// Run is one assembled participant run: the email client and the files it writes to
type Run struct {
	closeOnce      sync.Once
	id             string
	logger         *eventlog.CSVLogger
	model          *ui.Model
	program        *tea.Program
	sessionService *services.SessionService
	status         domain.RunStatus
	telemetry      *services.TelemetryService
}

// Prepare loads the study and opens the run's log and telemetry files
func (l *Launcher) Prepare(ctx context.Context, opts RunOptions) (*Run, error) {
	study, corpus, err := l.studies.Load(opts.StudyPath, opts.SaveLocation)
	if err != nil {
		return nil, err
	}

	launch := time.Now()
	participant := domain.SanitizeParticipant(opts.Participant)

	logger, err := eventlog.NewCSVLogger(study.SaveLocation, participant, launch)
	if err != nil {
		return nil, err
	}

	var streams []telemetry.Stream
	if opts.InputCapture {
		streams = append(streams, telemetry.StreamInput)
	}
	var source ports.TrackerSource
	if opts.TrackerAddress != "" {
		source = telemetry.NewTrackerClient(opts.TrackerAddress)
		streams = append(streams, telemetry.StreamEye, telemetry.StreamKeyboard, telemetry.StreamMouse)
	}

	var sink ports.TelemetrySink
	if len(streams) > 0 {
		csvSink, err := telemetry.NewCSVSink(logger.Dir(), launch.Format(eventlog.LaunchLayout), streams...)
		if err != nil {
			logger.Close()
			return nil, err
		}
		sink = csvSink
	}

	studyPath, err := filepath.Abs(opts.StudyPath)
	if err != nil {
		studyPath = opts.StudyPath
	}
	runID := l.runs.Begin(ctx, domain.Run{
		LogPath:     logger.Path(),
		Participant: participant,
		StartedAt:   launch,
		StudyPath:   studyPath,
	})

	run := &Run{
		id:     runID,
		logger: logger,
	}
	run.telemetry = services.NewTelemetryService(source, telemetry.Router{}, sink, run.telemetryUnavailable)
	run.sessionService = services.NewSessionService(study, corpus, logger, l.runs, services.SessionOptions{
		Participant: participant,
		RunID:       runID,
	})
	run.model = ui.NewModel(
		ctx,
		run.sessionService,
		services.NewNotificationService(opts.SoundPlayer, opts.SoundEnabled),
		run.telemetry,
		content.NewHTMLRenderer(study.EmailResourceLocation),
		ui.ModelOptions{
			DevMode:      opts.DevMode,
			InputCapture: opts.InputCapture,
			Keys:         opts.Keys,
		},
	)

	logging.Logger.Info("Run prepared",
		"run_id", runID,
		"participant", participant,
		"log", logger.Path(),
		"tracker", opts.TrackerAddress != "",
		"input_capture", opts.InputCapture)
	return run, nil
}

// ID returns the run's registry id
func (r *Run) ID() string {
	return r.id
}

// LogPath returns the event log written by this run
func (r *Run) LogPath() string {
	return r.logger.Path()
}

// Model returns the email client driving this run
func (r *Run) Model() *ui.Model {
	return r.model
}

// Execute runs the email client in the current terminal alongside the tracker stream.
// It returns once the participant finishes or aborts; the run is closed on return.
func (r *Run) Execute(ctx context.Context, opts ...tea.ProgramOption) (domain.RunStatus, error) {
	r.program = tea.NewProgram(r.model, opts...)

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.telemetry.Run(gctx)
	})

	_, runErr := r.program.Run()
	cancel()
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logging.Logger.Warn("Telemetry stopped with error", "error", err)
	}

	status := r.Close(context.Background())
	if runErr != nil {
		return status, fmt.Errorf("error running program: %w", runErr)
	}
	return status, nil
}

// Close marks a run that never ended as aborted and releases its files. Safe to call more than once.
func (r *Run) Close(ctx context.Context) domain.RunStatus {
	r.closeOnce.Do(func() {
		status := r.model.Status()
		if status == domain.RunStatusRunning {
			status = domain.RunStatusAborted
			r.sessionService.Finish(ctx, status)
			logging.Logger.Warn("Run ended without finishing", "run_id", r.id)
		}
		if err := r.telemetry.Close(); err != nil {
			logging.Logger.Error("Failed to flush telemetry", "run_id", r.id, "error", err)
		}
		if err := r.logger.Close(); err != nil {
			logging.Logger.Error("Failed to close event log", "run_id", r.id, "error", err)
		}
		r.status = status
	})
	return r.status
}

// telemetryUnavailable forwards the tracker failure to the email client
func (r *Run) telemetryUnavailable(err error) {
	if r.program != nil {
		r.program.Send(ui.TelemetryUnavailableMsg{Err: err})
	}
}
