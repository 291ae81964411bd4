package cmd

import (
	"github.com/renato0307/inboxsim/internal/adapters/corpus"
	"github.com/renato0307/inboxsim/internal/adapters/eventlog"
	adapterstorage "github.com/renato0307/inboxsim/internal/adapters/storage"
	"github.com/renato0307/inboxsim/internal/application"
	"github.com/renato0307/inboxsim/internal/config"
	"github.com/renato0307/inboxsim/internal/logging"
	"github.com/renato0307/inboxsim/internal/ports"
	"github.com/renato0307/inboxsim/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	Launcher     *application.Launcher
	RunService   *services.RunService
	StudyService *services.StudyService

	// Internal - for cleanup only
	runRepo ports.RunRepository
}

// NewContainer creates a new Container with all dependencies wired.
// An unavailable run registry is not fatal; runs are then simply not recorded.
func NewContainer() (*Container, error) {
	var runRepo ports.RunRepository
	repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		logging.Logger.Warn("Run registry unavailable, runs will not be recorded", "error", err)
	} else {
		runRepo = repo
	}

	runService := services.NewRunService(runRepo, eventlog.Reader{})
	studyService := services.NewStudyService(corpus.NewCSVLoader())

	return &Container{
		Launcher:     application.NewLauncher(studyService, runService),
		RunService:   runService,
		StudyService: studyService,
		runRepo:      runRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.runRepo != nil {
		return c.runRepo.Close()
	}
	return nil
}
