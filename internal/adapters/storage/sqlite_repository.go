package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/inboxsim/internal/config"
	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/logging"
	"github.com/renato0307/inboxsim/internal/ports"
)

const maxRetries = 5

// SQLiteRepository implements ports.RunRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.RunRepository = (*SQLiteRepository)(nil)

// gormLogger routes GORM output to the application logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("INBOXSIM_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating if needed) the run registry at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Kiosk sessions share the registry
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&RunModel{}, &RunSessionModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate run schema: %w", err)
	}

	logging.Logger.Debug("Run registry opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Create implements RunWriter.Create
func (r *SQLiteRepository) Create(ctx context.Context, run domain.Run) error {
	model := domainToRunModel(run)
	return withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	}, maxRetries)
}

// StartSession implements RunWriter.StartSession
func (r *SQLiteRepository) StartSession(ctx context.Context, id string, session domain.RunSession) error {
	model := domainToRunSessionModel(id, session)
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&RunModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("%w: %s", domain.ErrRunNotFound, id)
			}
			return tx.Save(&model).Error
		})
	}, maxRetries)
}

// FinishSession implements RunWriter.FinishSession
func (r *SQLiteRepository) FinishSession(ctx context.Context, id string, position int, at time.Time, visible, unread int) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&RunSessionModel{}).
			Where("run_id = ? AND position = ?", id, position).
			Updates(map[string]any{
				"finished_at": at,
				"unread":      unread,
				"visible":     visible,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s session %d", domain.ErrRunNotFound, id, position)
		}
		return nil
	}, maxRetries)
}

// Finish implements RunWriter.Finish
func (r *SQLiteRepository) Finish(ctx context.Context, id string, status domain.RunStatus, at time.Time) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&RunModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"finished_at": at,
				"status":      string(status),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrRunNotFound, id)
		}
		return nil
	}, maxRetries)
}

// Get implements RunReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.Run, error) {
	var run RunModel
	var sessions []RunSessionModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ?", id).First(&run).Error; err != nil {
				return err
			}
			return tx.Where("run_id = ?", id).Order("position ASC").Find(&sessions).Error
		})
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRunNotFound, id)
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	result := runModelToDomain(run, sessions)
	return &result, nil
}

// List implements RunReader.List, newest first. limit <= 0 means no limit.
func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]domain.Run, error) {
	var runs []RunModel
	var sessions []RunSessionModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			query := tx.Order("started_at DESC").Order("id DESC")
			if limit > 0 {
				query = query.Limit(limit)
			}
			if err := query.Find(&runs).Error; err != nil {
				return err
			}
			if len(runs) == 0 {
				return nil
			}

			ids := make([]string, len(runs))
			for i, run := range runs {
				ids[i] = run.ID
			}
			return tx.Where("run_id IN ?", ids).Order("position ASC").Find(&sessions).Error
		})
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	byRun := make(map[string][]RunSessionModel, len(runs))
	for _, s := range sessions {
		byRun[s.RunID] = append(byRun[s.RunID], s)
	}

	result := make([]domain.Run, 0, len(runs))
	for _, run := range runs {
		result = append(result, runModelToDomain(run, byRun[run.ID]))
	}
	return result, nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
