package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leaflog/internal/db"
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldPages
	fieldCount
)

// AddBookModel represents the TUI model for the add-book form
type AddBookModel struct {
	width  int
	height int

	store   *db.Store
	inputs  []textinput.Model
	focused int

	fieldError string

	shimmer *ShimmerState

	// Exit state, read by RunAddBookTUI after the program quits
	cancelled        bool
	completed        bool
	createdBookID    uint
	createdBookTitle string
	err              error
}

// shimmerTickMsg drives the focused-label shimmer animation
type shimmerTickMsg struct{}

// NewAddBookModel creates a new add-book form model. Prefilled values
// come from smart parsing on the command line.
func NewAddBookModel(store *db.Store, prefilled map[string]string) AddBookModel {
	inputs := make([]textinput.Model, fieldCount)

	title := textinput.New()
	title.Placeholder = "e.g. Dune"
	title.CharLimit = 200
	title.Width = 44
	title.SetValue(prefilled["title"])
	title.Focus()
	inputs[fieldTitle] = title

	author := textinput.New()
	author.Placeholder = "e.g. Frank Herbert (optional)"
	author.CharLimit = 120
	author.Width = 44
	author.SetValue(prefilled["author"])
	inputs[fieldAuthor] = author

	pages := textinput.New()
	pages.Placeholder = "e.g. 412 (optional)"
	pages.CharLimit = 6
	pages.Width = 44
	pages.SetValue(prefilled["pages"])
	inputs[fieldPages] = pages

	return AddBookModel{
		store:   store,
		inputs:  inputs,
		shimmer: NewShimmerState(DefaultShimmerConfig()),
	}
}

// Init initializes the form model
func (m AddBookModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.shimmer.ShouldTick() {
		cmds = append(cmds, tea.Tick(m.shimmer.GetTickInterval(), func(t time.Time) tea.Msg {
			return shimmerTickMsg{}
		}))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m AddBookModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case shimmerTickMsg:
		if m.shimmer.ShouldTick() {
			return m, tea.Tick(m.shimmer.GetTickInterval(), func(t time.Time) tea.Msg {
				return shimmerTickMsg{}
			})
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "tab", "down":
			m.fieldError = ""
			m.setFocus((m.focused + 1) % fieldCount)
			return m, nil

		case "shift+tab", "up":
			m.fieldError = ""
			m.setFocus((m.focused + fieldCount - 1) % fieldCount)
			return m, nil

		case "enter":
			if m.focused < fieldCount-1 {
				m.setFocus(m.focused + 1)
				return m, nil
			}
			return m.submit()
		}
	}

	// Delegate everything else to the focused input
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// setFocus moves focus to the given field
func (m *AddBookModel) setFocus(idx int) {
	m.inputs[m.focused].Blur()
	m.focused = idx
	m.inputs[m.focused].Focus()
	m.shimmer.Reset()
}

// submit validates the form and creates the book
func (m AddBookModel) submit() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.inputs[fieldTitle].Value())
	if title == "" {
		m.fieldError = "Title is required"
		m.setFocus(fieldTitle)
		return m, nil
	}

	totalPages := 0
	pagesRaw := strings.TrimSpace(m.inputs[fieldPages].Value())
	if pagesRaw != "" {
		n, err := strconv.Atoi(pagesRaw)
		if err != nil || n < 0 {
			m.fieldError = "Pages must be a non-negative number"
			m.setFocus(fieldPages)
			return m, nil
		}
		totalPages = n
	}

	book, err := m.store.AddBook(db.AddBookRequest{
		Title:      title,
		Author:     strings.TrimSpace(m.inputs[fieldAuthor].Value()),
		TotalPages: totalPages,
	})
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.completed = true
	m.createdBookID = book.ID
	m.createdBookTitle = book.Title
	return m, tea.Quit
}

// View renders the form
func (m AddBookModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Bold(true)

	labels := []string{"📗 Title", "✍️  Author", "📄 Pages"}

	var rows []string
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Render("Add a book")
	rows = append(rows, header, "")

	for i, input := range m.inputs {
		if i == m.focused {
			rows = append(rows, m.shimmer.RenderShimmerText(labels[i], 30))
		} else {
			rows = append(rows, labelStyle.Render(labels[i]))
		}
		rows = append(rows, input.View(), "")
	}

	if m.fieldError != "" {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true)
		rows = append(rows, errStyle.Render("⚠ "+m.fieldError), "")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	rows = append(rows, helpStyle.Render("tab/↑↓ switch · enter next/save · esc cancel"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 3).
		Render(strings.Join(rows, "\n"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
