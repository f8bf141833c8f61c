package models

import (
	"time"

	"gorm.io/gorm"
)

// Book represents a book in the reading collection
type Book struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"added_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title      string `gorm:"not null" json:"title"`
	Author     string `json:"author"`
	TotalPages int    `gorm:"default:0" json:"total_pages"`
	CurrentPage int   `gorm:"default:0" json:"current_page"`

	// Relationships (sessions are NOT cascade-deleted with the book;
	// their BookID dangles and resolves to "Unassigned" at query time)
	Sessions []ReadingSession `gorm:"foreignKey:BookID" json:"sessions,omitempty"`
}

// ClampPages enforces the page invariants: both pages non-negative,
// current page never beyond the last page.
func (b *Book) ClampPages() {
	if b.TotalPages < 0 {
		b.TotalPages = 0
	}
	if b.CurrentPage < 0 {
		b.CurrentPage = 0
	}
	if b.CurrentPage > b.TotalPages {
		b.CurrentPage = b.TotalPages
	}
}

// Progress returns reading progress in [0,1]. Books with no page count
// report 0 rather than dividing by zero.
func (b *Book) Progress() float64 {
	if b.TotalPages <= 0 {
		return 0
	}
	return float64(b.CurrentPage) / float64(b.TotalPages)
}

// Finished reports whether the book has been read cover to cover.
func (b *Book) Finished() bool {
	return b.TotalPages > 0 && b.CurrentPage >= b.TotalPages
}
