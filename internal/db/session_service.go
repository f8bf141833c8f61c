package db

import (
	"fmt"
	"math"
	"time"

	"leaflog/internal/models"
)

// LogSessionRequest holds the data for a quick-logged reading session
type LogSessionRequest struct {
	BookID     *uint
	StartedAt  time.Time
	FinishedAt time.Time
	Minutes    int
	Pages      int
	Note       string
	Mood       models.MoodKind // empty = neutral
	MoodNote   string
}

// LogSession records a completed session. The record is normalized on the
// way in (end clamped to start, negatives zeroed, typed minutes raised to
// the wall-clock delta but never reduced), and a mood entry is appended
// since a reading activity just completed.
func (s *Store) LogSession(req LogSessionRequest) (*models.ReadingSession, error) {
	if req.BookID != nil {
		if _, err := s.GetBookByID(*req.BookID); err != nil {
			return nil, err
		}
	}

	finished := req.FinishedAt
	session := models.ReadingSession{
		BookID:     req.BookID,
		StartedAt:  req.StartedAt,
		FinishedAt: &finished,
		Minutes:    req.Minutes,
		Pages:      req.Pages,
		Note:       req.Note,
	}
	session.Normalize()

	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	s.notifyMutation()

	if _, err := s.AddMood(req.Mood, req.MoodNote, *session.FinishedAt); err != nil {
		return nil, err
	}

	return &session, nil
}

// UpdateSession re-validates and saves explicit edits to a stored session.
func (s *Store) UpdateSession(id uint, req LogSessionRequest) (*models.ReadingSession, error) {
	var session models.ReadingSession
	if err := s.db.First(&session, id).Error; err != nil {
		return nil, fmt.Errorf("session #%d not found", id)
	}

	finished := req.FinishedAt
	session.BookID = req.BookID
	session.StartedAt = req.StartedAt
	session.FinishedAt = &finished
	session.Minutes = req.Minutes
	session.Pages = req.Pages
	session.Note = req.Note
	session.Normalize()

	if err := s.db.Save(&session).Error; err != nil {
		return nil, err
	}
	s.notifyMutation()

	return &session, nil
}

// StartTimerSession opens the live timer session row (finished_at NULL).
func (s *Store) StartTimerSession(bookID *uint) (*models.ReadingSession, error) {
	if bookID != nil {
		if _, err := s.GetBookByID(*bookID); err != nil {
			return nil, err
		}
	}

	active, err := s.ActiveSession()
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("a timer is already running. Stop it first with 'leaflog stop'")
	}

	session := models.ReadingSession{
		BookID:    bookID,
		StartedAt: s.clk.Now(),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	s.notifyMutation()

	return &session, nil
}

// ActiveSession returns the live timer session, or nil when idle.
func (s *Store) ActiveSession() (*models.ReadingSession, error) {
	var session models.ReadingSession
	err := s.db.Where("finished_at IS NULL").First(&session).Error
	if err != nil {
		return nil, nil // no active session is not an error
	}
	return &session, nil
}

// FinalizeActiveSession writes the timer's finalized record over the live
// row. Minutes here are authoritative (accumulated running intervals,
// paused time excluded), so no wall-clock reconciliation is applied.
// A mood entry is appended for the completed activity.
func (s *Store) FinalizeActiveSession(final models.ReadingSession, mood models.MoodKind, moodNote string) (*models.ReadingSession, error) {
	active, err := s.ActiveSession()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, fmt.Errorf("no reading timer is running")
	}

	end := s.clk.Now()
	if final.FinishedAt != nil {
		end = *final.FinishedAt
	}
	if end.Before(active.StartedAt) {
		end = active.StartedAt
	}

	active.FinishedAt = &end
	active.Minutes = final.Minutes
	active.Pages = final.Pages
	if active.Minutes < 0 {
		active.Minutes = 0
	}
	if active.Pages < 0 {
		active.Pages = 0
	}

	if err := s.db.Save(active).Error; err != nil {
		return nil, err
	}
	s.notifyMutation()

	if _, err := s.AddMood(mood, moodNote, end); err != nil {
		return nil, err
	}

	return active, nil
}

// StopActiveSession finalizes the live session from plain CLI, where no
// in-memory timer survived: minutes fall back to the wall-clock delta and
// pages to the override when given, else the default pages-per-minute
// rate from settings.
func (s *Store) StopActiveSession(overridePages *int, mood models.MoodKind, moodNote string) (*models.ReadingSession, error) {
	active, err := s.ActiveSession()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, fmt.Errorf("no reading timer is running")
	}

	now := s.clk.Now()
	minutes := int(math.Round(now.Sub(active.StartedAt).Seconds() / 60))
	pages := 0
	if overridePages != nil {
		pages = *overridePages
	} else if settings, err := s.Settings(); err == nil && settings.DefaultPagesPerMinute > 0 {
		pages = int(math.Round(float64(minutes) * settings.DefaultPagesPerMinute))
	}

	final := models.ReadingSession{Minutes: minutes, Pages: pages, FinishedAt: &now}
	return s.FinalizeActiveSession(final, mood, moodNote)
}

// DiscardActiveSession abandons the live session without recording it.
func (s *Store) DiscardActiveSession() error {
	active, err := s.ActiveSession()
	if err != nil {
		return err
	}
	if active == nil {
		return fmt.Errorf("no reading timer is running")
	}
	if err := s.db.Unscoped().Delete(active).Error; err != nil {
		return err
	}
	s.notifyMutation()
	return nil
}

// GetSessions returns completed sessions, oldest first, optionally
// filtered by book.
func (s *Store) GetSessions(bookID *uint) ([]models.ReadingSession, error) {
	q := s.db.Where("finished_at IS NOT NULL").Order("started_at ASC")
	if bookID != nil {
		q = q.Where("book_id = ?", *bookID)
	}

	var sessions []models.ReadingSession
	if err := q.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetSessionsInRange returns completed sessions starting in [from, to).
func (s *Store) GetSessionsInRange(from, to time.Time) ([]models.ReadingSession, error) {
	var sessions []models.ReadingSession
	err := s.db.
		Where("started_at >= ? AND started_at < ? AND finished_at IS NOT NULL", from, to).
		Order("started_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
