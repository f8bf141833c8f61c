package db

import (
	"fmt"
	"time"

	"leaflog/internal/models"
)

// AddMood appends a mood entry. An empty kind defaults to neutral; an
// unknown kind is rejected (the taxonomy is closed).
func (s *Store) AddMood(kind models.MoodKind, note string, date time.Time) (*models.MoodEntry, error) {
	if kind == "" {
		kind = models.MoodNeutral
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown mood %q (use calm, focused, sleepy, excited or neutral)", kind)
	}
	if date.IsZero() {
		date = s.clk.Now()
	}

	entry := models.MoodEntry{Date: date, Kind: kind, Note: note}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	s.notifyMutation()

	return &entry, nil
}

// GetMoods returns the whole mood history, oldest first.
func (s *Store) GetMoods() ([]models.MoodEntry, error) {
	var moods []models.MoodEntry
	if err := s.db.Order("date ASC").Find(&moods).Error; err != nil {
		return nil, err
	}
	return moods, nil
}

// ClearMoods erases the whole mood history. Entries are append-only
// otherwise; this is the only destructive mood operation.
func (s *Store) ClearMoods() (int64, error) {
	res := s.db.Unscoped().Where("1 = 1").Delete(&models.MoodEntry{})
	if res.Error != nil {
		return 0, res.Error
	}
	s.notifyMutation()
	return res.RowsAffected, nil
}
