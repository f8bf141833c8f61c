package db

import (
	"leaflog/internal/achievements"
	"leaflog/internal/models"
)

// seedAchievements inserts a locked record for any catalog entry that has
// no persisted row yet. Existing rows (including stale codes no longer in
// the catalog) are left alone.
func (s *Store) seedAchievements() error {
	var existing []models.Achievement
	if err := s.db.Find(&existing).Error; err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, a := range existing {
		have[a.Code] = true
	}

	for _, a := range achievements.Seed() {
		if have[a.Code] {
			continue
		}
		a := a
		if err := s.db.Create(&a).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetAchievements returns the achievement set in catalog order, with any
// stale persisted codes appended at the end.
func (s *Store) GetAchievements() ([]models.Achievement, error) {
	var all []models.Achievement
	if err := s.db.Order("id ASC").Find(&all).Error; err != nil {
		return nil, err
	}

	byCode := make(map[string]models.Achievement, len(all))
	for _, a := range all {
		byCode[a.Code] = a
	}

	ordered := make([]models.Achievement, 0, len(all))
	for _, def := range achievements.Catalog() {
		if a, ok := byCode[def.Code]; ok {
			ordered = append(ordered, a)
			delete(byCode, def.Code)
		}
	}
	for _, a := range all {
		if _, stale := byCode[a.Code]; stale {
			ordered = append(ordered, a)
		}
	}
	return ordered, nil
}

// UnlockedPoints sums the points of every unlocked achievement.
func (s *Store) UnlockedPoints() (int, error) {
	all, err := s.GetAchievements()
	if err != nil {
		return 0, err
	}
	points := 0
	for _, a := range all {
		if a.IsUnlocked {
			points += a.Points
		}
	}
	return points, nil
}

// ResetAchievements flips every achievement back to the catalog's locked
// seed. This is the only way an unlock is ever undone; it does not
// trigger an evaluation pass (only book/session/mood mutations do).
func (s *Store) ResetAchievements() error {
	return s.db.Model(&models.Achievement{}).
		Where("1 = 1").
		Updates(map[string]interface{}{"is_unlocked": false, "unlocked_at": nil}).Error
}
