package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"leaflog/internal/achievements"
	"leaflog/internal/clock"
	"leaflog/internal/models"
)

// Store owns the database handle and the achievement evaluation trigger.
// It is constructed explicitly and passed to commands; there is no
// package-global connection.
type Store struct {
	db        *gorm.DB
	clk       clock.Clock
	evaluator *achievements.Evaluator
}

// Options configures Open.
type Options struct {
	Path       string        // database file, empty = DefaultPath
	EvalWindow time.Duration // achievement coalescing window, 0 = default
	Clock      clock.Clock   // nil = system clock
}

// Open sets up the database connection, runs migrations and one-time
// repairs, seeds the achievement set, and wires the evaluation trigger.
func Open(opts Options) (*Store, error) {
	path := opts.Path
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create leaflog directory: %w", err)
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.System{}
	}

	s := &Store{db: gdb, clk: clk}
	s.evaluator = achievements.NewEvaluator(opts.EvalWindow, clk, s.snapshot, s.commitAchievements)

	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := s.runRepairs(); err != nil {
		return nil, fmt.Errorf("failed to repair data: %w", err)
	}
	if err := s.seedAchievements(); err != nil {
		return nil, fmt.Errorf("failed to seed achievements: %w", err)
	}
	if err := s.ensureSettings(); err != nil {
		return nil, fmt.Errorf("failed to init settings: %w", err)
	}

	return s, nil
}

// DefaultPath returns the path to the SQLite database file.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".leaflog", "leaflog.db"), nil
}

// migrate creates/updates the database schema.
func (s *Store) migrate() error {
	return s.db.AutoMigrate(
		&models.Book{},
		&models.ReadingSession{},
		&models.MoodEntry{},
		&models.Achievement{},
		&models.Settings{},
	)
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// notifyMutation is called by every mutating repository method; the
// evaluator coalesces bursts into a single engine pass.
func (s *Store) notifyMutation() {
	s.evaluator.Notify()
}

// FlushAchievements forces any pending evaluation pass and returns the
// achievements it newly unlocked. Commands call this before printing
// their summary so unlocks from this invocation are announced.
func (s *Store) FlushAchievements() ([]models.Achievement, error) {
	return s.evaluator.Flush()
}

// snapshot hands the evaluator the full current history by value.
func (s *Store) snapshot() (achievements.Snapshot, error) {
	var snap achievements.Snapshot
	if err := s.db.Order("id ASC").Find(&snap.Books).Error; err != nil {
		return snap, err
	}
	if err := s.db.Order("started_at ASC").Find(&snap.Sessions).Error; err != nil {
		return snap, err
	}
	if err := s.db.Order("date ASC").Find(&snap.Moods).Error; err != nil {
		return snap, err
	}
	if err := s.db.Order("id ASC").Find(&snap.Achievements).Error; err != nil {
		return snap, err
	}
	return snap, nil
}

// commitAchievements persists the records the engine just unlocked.
func (s *Store) commitAchievements(updated, newlyUnlocked []models.Achievement) error {
	for _, a := range newlyUnlocked {
		a := a
		if a.ID == 0 {
			// Catalog entry that had no persisted row yet.
			if err := s.db.Create(&a).Error; err != nil {
				return err
			}
			continue
		}
		if err := s.db.Save(&a).Error; err != nil {
			return err
		}
	}
	return nil
}

// Settings returns the single settings row.
func (s *Store) Settings() (*models.Settings, error) {
	var settings models.Settings
	if err := s.db.First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings applies fn to the settings row and saves it.
func (s *Store) UpdateSettings(fn func(*models.Settings)) (*models.Settings, error) {
	settings, err := s.Settings()
	if err != nil {
		return nil, err
	}
	fn(settings)
	settings.ApplyDefaults()
	if err := s.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// ensureSettings creates the settings row on first run, stamped with a
// fresh install id.
func (s *Store) ensureSettings() error {
	var count int64
	if err := s.db.Model(&models.Settings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	settings := models.Settings{
		InstallID:         uuid.NewString(),
		WeeklyGoalMinutes: 150,
	}
	return s.db.Create(&settings).Error
}
