// Package export renders the reading history into portable formats.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"leaflog/internal/models"
)

// csvHeader is the fixed column layout consumed by spreadsheet imports.
const csvHeader = "id,bookId,bookTitle,startISO8601,endISO8601,minutes,pages"

// WriteSessionsCSV emits one row per session. Minutes and pages are
// clamped non-negative regardless of what is stored; commas in titles are
// replaced with spaces so the layout stays a plain comma split; sessions
// whose book is gone (or was never set) resolve to "Unassigned".
func WriteSessionsCSV(w io.Writer, sessions []models.ReadingSession, books []models.Book) error {
	titles := make(map[uint]string, len(books))
	for _, b := range books {
		titles[b.ID] = b.Title
	}

	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return err
	}

	for _, s := range sessions {
		bookID := ""
		title := "Unassigned"
		if s.BookID != nil {
			bookID = fmt.Sprintf("%d", *s.BookID)
			if t, ok := titles[*s.BookID]; ok {
				title = t
			}
		}

		end := s.StartedAt
		if s.FinishedAt != nil {
			end = *s.FinishedAt
		}

		minutes := s.Minutes
		if minutes < 0 {
			minutes = 0
		}
		pages := s.Pages
		if pages < 0 {
			pages = 0
		}

		row := strings.Join([]string{
			fmt.Sprintf("%d", s.ID),
			bookID,
			strings.ReplaceAll(title, ",", " "),
			s.StartedAt.Format(time.RFC3339),
			end.Format(time.RFC3339),
			fmt.Sprintf("%d", minutes),
			fmt.Sprintf("%d", pages),
		}, ",")
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}
