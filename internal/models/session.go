package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// ReadingSession represents a single sitting with a book, either
// quick-logged or produced by the live timer
type ReadingSession struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookID     *uint      `json:"book_id"` // nil = unassigned session
	StartedAt  time.Time  `gorm:"not null" json:"started_at"`
	FinishedAt *time.Time `json:"finished_at"` // nil while the timer is live
	Minutes    int        `gorm:"default:0" json:"minutes"`
	Pages      int        `gorm:"default:0" json:"pages"`
	Note       string     `json:"note"`
}

// Active reports whether this is the in-flight timer session.
func (s *ReadingSession) Active() bool {
	return s.FinishedAt == nil
}

// Normalize enforces the session invariants before a write: end never
// precedes start (clamped, not rejected), pages non-negative, and minutes
// reconciled so a typed minute count can only be raised by the wall-clock
// delta, never reduced.
func (s *ReadingSession) Normalize() {
	if s.FinishedAt != nil && s.FinishedAt.Before(s.StartedAt) {
		end := s.StartedAt
		s.FinishedAt = &end
	}
	if s.Pages < 0 {
		s.Pages = 0
	}
	if s.Minutes < 0 {
		s.Minutes = 0
	}
	if s.FinishedAt != nil {
		computed := int(math.Round(s.FinishedAt.Sub(s.StartedAt).Seconds() / 60))
		if computed > s.Minutes {
			s.Minutes = computed
		}
	}
}
