package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leaflog/internal/db"
	"leaflog/internal/metrics"
	"leaflog/internal/models"
)

// BookListModel represents the TUI model for browsing books
type BookListModel struct {
	width  int
	height int

	store    *db.Store
	books    []models.Book
	sessions []models.ReadingSession

	cursor int
	offset int

	statusMsg string
	err       error
}

// NewBookListModel creates a new book list model
func NewBookListModel(store *db.Store) (BookListModel, error) {
	m := BookListModel{store: store}
	if err := m.reload(); err != nil {
		return m, err
	}
	return m, nil
}

// reload refreshes books and sessions from the store
func (m *BookListModel) reload() error {
	books, err := m.store.GetBooks()
	if err != nil {
		return err
	}
	sessions, err := m.store.GetSessions(nil)
	if err != nil {
		return err
	}
	m.books = books
	m.sessions = sessions
	if m.cursor >= len(m.books) {
		m.cursor = len(m.books) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return nil
}

// Init initializes the list model
func (m BookListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m BookListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.statusMsg = ""
			return m, nil

		case "down", "j":
			if m.cursor < len(m.books)-1 {
				m.cursor++
			}
			m.statusMsg = ""
			return m, nil

		case "g":
			m.cursor = 0
			return m, nil

		case "G":
			if len(m.books) > 0 {
				m.cursor = len(m.books) - 1
			}
			return m, nil

		case "f":
			// Mark the selected book finished
			if len(m.books) == 0 {
				return m, nil
			}
			book := m.books[m.cursor]
			if _, err := m.store.FinishBook(book.ID); err != nil {
				m.statusMsg = fmt.Sprintf("⚠ %v", err)
				return m, nil
			}
			if err := m.reload(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.statusMsg = fmt.Sprintf("✅ Finished %q", book.Title)
			return m, nil

		case "r":
			if err := m.reload(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.statusMsg = "🔄 Reloaded"
			return m, nil
		}
	}

	return m, nil
}

// View renders the book browser
func (m BookListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	if len(m.books) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Align(lipgloss.Center, lipgloss.Center).
			Width(m.width).
			Height(contentHeight)
		return lipgloss.JoinVertical(
			lipgloss.Left,
			emptyStyle.Render("📭 No books yet. Add one with 'leaflog add'."),
			helpBar,
		)
	}

	// Narrow view: list only
	if m.width < 80 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderListPanel(m.width, contentHeight),
			helpBar,
		)
	}

	leftWidth := m.width * 2 / 5
	rightWidth := m.width - leftWidth - 2

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderListPanel(leftWidth, contentHeight),
		"  ",
		m.renderDetailPanel(rightWidth, contentHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

// renderListPanel renders the scrolling book list
func (m BookListModel) renderListPanel(width, height int) string {
	visible := height - 4
	if visible < 1 {
		visible = 1
	}

	// Keep the cursor inside the window
	offset := m.offset
	if m.cursor < offset {
		offset = m.cursor
	}
	if m.cursor >= offset+visible {
		offset = m.cursor - visible + 1
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("📚 Books (%d)", len(m.books))))
	b.WriteString("\n\n")

	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	end := offset + visible
	if end > len(m.books) {
		end = len(m.books)
	}

	for i := offset; i < end; i++ {
		book := m.books[i]

		marker := "📖"
		if book.Finished() {
			marker = "✅"
		}

		line := fmt.Sprintf("%s #%d %s", marker, book.ID, book.Title)
		if maxLen := width - 6; len(line) > maxLen && maxLen > 3 {
			line = line[:maxLen-3] + "..."
		}

		switch {
		case i == m.cursor:
			b.WriteString(selectedStyle.Render("▶ " + line))
		case book.Finished():
			b.WriteString(mutedStyle.Render("  " + line))
		default:
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width - 2).
		Height(height - 2).
		Padding(0, 1)

	return panelStyle.Render(b.String())
}

// renderDetailPanel renders details for the selected book
func (m BookListModel) renderDetailPanel(width, height int) string {
	book := m.books[m.cursor]
	bookID := book.ID

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	b.WriteString(titleStyle.Render(book.Title))
	b.WriteString("\n\n")

	author := book.Author
	if author == "" {
		author = "unknown"
	}
	b.WriteString(labelStyle.Render("✍️  Author: "))
	b.WriteString(valueStyle.Render(author))
	b.WriteString("\n\n")

	if book.TotalPages > 0 {
		b.WriteString(labelStyle.Render("🔖 Progress: "))
		b.WriteString(accentStyle.Render(fmt.Sprintf("%d/%d pages", book.CurrentPage, book.TotalPages)))
		b.WriteString("\n")
		b.WriteString(renderProgressBar(book.Progress(), min(width-8, 36)))
		b.WriteString("\n\n")
	} else {
		b.WriteString(labelStyle.Render("🔖 Progress: "))
		b.WriteString(valueStyle.Render("no page count"))
		b.WriteString("\n\n")
	}

	totalMin := metrics.TotalMinutes(m.sessions, &bookID)
	totalPages := metrics.TotalPages(m.sessions, &bookID)
	b.WriteString(labelStyle.Render("⏱️  Reading time: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d min", totalMin)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("📄 Pages logged: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d", totalPages)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("📝 Added: "))
	b.WriteString(valueStyle.Render(book.CreatedAt.Format("Jan 02, 2006")))
	b.WriteString("\n")

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(accentStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(width - 2).
		Height(height - 2).
		Padding(1, 2)

	return panelStyle.Render(b.String())
}

// renderProgressBar renders a simple filled progress bar
func renderProgressBar(ratio float64, width int) string {
	if width < 4 {
		width = 4
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	filled := int(ratio * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain))
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	return barStyle.Render(bar) + pctStyle.Render(fmt.Sprintf(" %.0f%%", ratio*100))
}

// renderHelpBar renders the help bar at the bottom
func (m BookListModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("↑/↓ navigate · f finish · r reload · q quit")
}

// RunBookListTUI runs the interactive book browser
func RunBookListTUI(store *db.Store) error {
	model, err := NewBookListModel(store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(BookListModel); ok && m.err != nil {
		return m.err
	}

	return nil
}
