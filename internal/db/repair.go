package db

import (
	"strings"

	"leaflog/internal/models"
)

// runRepairs is the best-effort one-time repair ladder run at open:
// deduplicate books by normalized title+author, clamp session end >= start
// and negative fields, clamp book page counters, default malformed
// settings. Downstream code still clamps defensively when summing.
func (s *Store) runRepairs() error {
	if err := s.dedupeBooks(); err != nil {
		return err
	}
	if err := s.repairBooks(); err != nil {
		return err
	}
	if err := s.repairSessions(); err != nil {
		return err
	}
	return s.repairSettings()
}

// dedupeBooks keeps the oldest of any books sharing a normalized
// title+author key and drops the rest.
func (s *Store) dedupeBooks() error {
	var books []models.Book
	if err := s.db.Order("id ASC").Find(&books).Error; err != nil {
		return err
	}

	seen := make(map[string]bool, len(books))
	for _, b := range books {
		key := normalizeBookKey(b.Title, b.Author)
		if !seen[key] {
			seen[key] = true
			continue
		}
		if err := s.db.Delete(&b).Error; err != nil {
			return err
		}
	}
	return nil
}

func normalizeBookKey(title, author string) string {
	norm := func(v string) string {
		return strings.Join(strings.Fields(strings.ToLower(v)), " ")
	}
	return norm(title) + "|" + norm(author)
}

func (s *Store) repairBooks() error {
	var books []models.Book
	if err := s.db.Find(&books).Error; err != nil {
		return err
	}
	for _, b := range books {
		before := b
		b.ClampPages()
		if b.TotalPages != before.TotalPages || b.CurrentPage != before.CurrentPage {
			if err := s.db.Save(&b).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Store) repairSessions() error {
	var sessions []models.ReadingSession
	if err := s.db.Where("finished_at IS NOT NULL").Find(&sessions).Error; err != nil {
		return err
	}
	for _, sess := range sessions {
		before := sess
		sess.Normalize()
		if sess.Minutes != before.Minutes || sess.Pages != before.Pages ||
			!sess.FinishedAt.Equal(*before.FinishedAt) {
			if err := s.db.Save(&sess).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Store) repairSettings() error {
	var settings models.Settings
	if err := s.db.First(&settings).Error; err != nil {
		return nil // first run; ensureSettings creates the row
	}
	before := settings
	settings.ApplyDefaults()
	if settings != before {
		return s.db.Save(&settings).Error
	}
	return nil
}
