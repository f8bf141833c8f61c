package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"leaflog/internal/db"
)

// RunAddBookTUI starts the interactive add-book form
func RunAddBookTUI(store *db.Store, prefilled map[string]string) error {
	model := NewAddBookModel(store, prefilled)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Handle exit messages after the TUI closes
	if m, ok := finalModel.(AddBookModel); ok {
		if m.cancelled {
			fmt.Println("❌ Book not added.")
		} else if m.completed && m.createdBookID > 0 {
			fmt.Printf("📗 New book \"%s\" added - ID: %d\n", m.createdBookTitle, m.createdBookID)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}
