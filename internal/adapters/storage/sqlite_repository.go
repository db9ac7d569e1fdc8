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

	"github.com/renato0307/clipkeys/internal/logging"
	"github.com/renato0307/clipkeys/internal/ports"
)

const maxRetries = 5

// SQLiteRepository implements ports.AssignmentRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.AssignmentRepository = (*SQLiteRepository)(nil)

// gormLogger routes GORM output to the clipkeys logger
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
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	default:
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv(logging.EnvDebug) == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

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

	// WAL lets the TUI, listen and serve share one database
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&HotkeyAssignmentModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate hotkey schema: %w", err)
	}

	logging.Logger.Debug("Database opened", "path", dbPath)
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

// LoadAssignments returns every stored action -> label
func (r *SQLiteRepository) LoadAssignments(ctx context.Context) (map[string]string, error) {
	var models []HotkeyAssignmentModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("`action`").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to load hotkey assignments: %w", err)
	}
	return assignmentModelsToLabels(models), nil
}

// ReplaceAssignments stores exactly the given snapshot. Rows are deleted and
// re-inserted in one transaction so swapping chords between actions never
// trips the unique index.
func (r *SQLiteRepository) ReplaceAssignments(ctx context.Context, assignments map[string]string) error {
	models := labelsToAssignmentModels(assignments)

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec("DELETE FROM hotkey_assignments").Error; err != nil {
				return fmt.Errorf("failed to clear hotkey assignments: %w", err)
			}
			if len(models) == 0 {
				return nil
			}
			if err := tx.Create(&models).Error; err != nil {
				return fmt.Errorf("failed to insert hotkey assignments: %w", err)
			}
			return nil
		})
	}, maxRetries)
}

// DeleteAssignments removes stored rows for the given actions, or all rows
// when no action is given
func (r *SQLiteRepository) DeleteAssignments(ctx context.Context, actions ...string) error {
	return withRetry(func() error {
		db := r.db.WithContext(ctx)
		if len(actions) == 0 {
			return db.Exec("DELETE FROM hotkey_assignments").Error
		}
		return db.Where("`action` IN ?", actions).Delete(&HotkeyAssignmentModel{}).Error
	}, maxRetries)
}

// withRetry retries fn while SQLite reports the database busy or locked
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
