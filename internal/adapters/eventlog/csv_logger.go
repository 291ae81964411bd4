package eventlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/logging"
)

const (
	// LaunchLayout names per-run files
	LaunchLayout = "2006-01-02_15-04-05"
	// TimeLayout is the wall-clock column of the log
	TimeLayout = "2006-01-02 15:04:05.000000"
)

// Header is the first row of every event log
var Header = []string{"time", "timestamp", "username", "ID", "email", "action", "detail", "studyCondition"}

// taskColumns is the width of a primary task row (category plus five cells)
const taskColumns = 7

// CSVLogger implements ports.EventLogger and ports.TaskDataWriter.
// One logger owns one file for the lifetime of a run.
type CSVLogger struct {
	dir    string
	file   *os.File
	mu     sync.Mutex
	path   string
	writer *csv.Writer
}

// LogPath returns where the log of a run launched at launch is written
func LogPath(saveLocation, participant string, launch time.Time) string {
	return filepath.Join(ParticipantDir(saveLocation, participant), launch.Format(LaunchLayout)+"_log.csv")
}

// ParticipantDir returns the directory holding a participant's files
func ParticipantDir(saveLocation, participant string) string {
	if strings.TrimSpace(participant) == "" {
		participant = domain.DefaultParticipant
	}
	return filepath.Join(saveLocation, participant)
}

// NewCSVLogger creates the participant directory and the log file, writes the header
// and takes an exclusive lock on the file
func NewCSVLogger(saveLocation, participant string, launch time.Time) (*CSVLogger, error) {
	dir := ParticipantDir(saveLocation, participant)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create log directory: %v", domain.ErrLogWrite, err)
	}

	path := LogPath(saveLocation, participant, launch)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create log file: %v", domain.ErrLogWrite, err)
	}

	if err := lockFile(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("%w: log file %s is in use: %v", domain.ErrLogWrite, path, err)
	}

	l := &CSVLogger{
		dir:    dir,
		file:   file,
		path:   path,
		writer: csv.NewWriter(file),
	}
	if err := l.write(Header); err != nil {
		l.Close()
		return nil, err
	}

	logging.Logger.Info("Event log created", "path", path)
	return l, nil
}

// Append writes one event and syncs it to disk before returning
func (l *CSVLogger) Append(event domain.LogEvent) error {
	return l.write([]string{
		event.Time.Format(TimeLayout),
		strconv.FormatFloat(event.Timestamp, 'f', 3, 64),
		event.Participant,
		event.EmailID,
		event.Subject,
		event.Action,
		event.Detail,
		event.Session,
	})
}

// Path returns the log file path
func (l *CSVLogger) Path() string {
	return l.path
}

// Dir returns the participant directory the log lives in
func (l *CSVLogger) Dir() string {
	return l.dir
}

// Close releases the lock and closes the file
func (l *CSVLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	l.writer.Flush()
	_ = unlockFile(l.file)
	err := l.file.Close()
	l.file = nil
	return err
}

// WritePrimaryTaskData stores a session's primary task rows as <session>_task.csv next to the log.
// Short rows are padded to the task width.
func (l *CSVLogger) WritePrimaryTaskData(session string, rows [][]string) error {
	path := filepath.Join(l.dir, session+"_task.csv")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create task data file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	for _, row := range rows {
		padded := make([]string, taskColumns)
		copy(padded, row)
		if len(row) > taskColumns {
			padded = row
		}
		if err := w.Write(padded); err != nil {
			return fmt.Errorf("failed to write task data: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write task data: %w", err)
	}

	logging.Logger.Info("Primary task data saved", "session", session, "path", path, "rows", len(rows))
	return nil
}

func (l *CSVLogger) write(record []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return fmt.Errorf("%w: log is closed", domain.ErrLogWrite)
	}
	if err := l.writer.Write(record); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLogWrite, err)
	}
	l.writer.Flush()
	if err := l.writer.Error(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLogWrite, err)
	}
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLogWrite, err)
	}
	return nil
}

// ReadEvents reads back an event log written by CSVLogger
func ReadEvents(path string) ([]domain.LogEvent, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event log: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(Header)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("event log %s is empty", path)
		}
		return nil, fmt.Errorf("failed to read event log: %w", err)
	}
	if strings.Join(header, ",") != strings.Join(Header, ",") {
		return nil, fmt.Errorf("event log %s has an unexpected header", path)
	}

	var events []domain.LogEvent
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event log: %w", err)
		}

		at, err := time.ParseInLocation(TimeLayout, record[0], time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid time %q in event log: %w", record[0], err)
		}
		ts, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp %q in event log: %w", record[1], err)
		}

		events = append(events, domain.LogEvent{
			Action:      record[5],
			Detail:      record[6],
			EmailID:     record[3],
			Participant: record[2],
			Session:     record[7],
			Subject:     record[4],
			Time:        at,
			Timestamp:   ts,
		})
	}

	return events, nil
}

// Reader implements ports.EventLogReader
type Reader struct{}

// ReadEvents implements ports.EventLogReader
func (Reader) ReadEvents(path string) ([]domain.LogEvent, error) {
	return ReadEvents(path)
}
