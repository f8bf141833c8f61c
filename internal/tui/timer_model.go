package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leaflog/internal/db"
	"leaflog/internal/models"
	"leaflog/internal/timer"
)

// TimerModel represents the TUI model for the live reading timer
type TimerModel struct {
	width  int
	height int

	store   *db.Store
	session *models.ReadingSession
	book    *models.Book // nil for unassigned sessions
	timer   *timer.Timer

	// Display state. The ticking elapsed value is presentational only;
	// the state machine recomputes authoritative minutes from wall-clock
	// timestamps on stop.
	elapsedTime time.Duration

	// Animation state
	timerAnimation int

	// UI state
	stopping bool // user pressed S, stop and save on exit
	exiting  bool // user pressed ESC/Q, exit but keep the session running
	saved    *models.ReadingSession
	err      error
}

// timerTickMsg is sent every second to update the display
type timerTickMsg struct{}

// animationTickMsg is sent for faster animations
type animationTickMsg struct{}

// NewTimerModel creates a new reading timer TUI model
func NewTimerModel(store *db.Store, session *models.ReadingSession, book *models.Book, pagesPerMinute float64) TimerModel {
	t := timer.New(nil)
	t.Start(session.BookID, pagesPerMinute)

	return TimerModel{
		store:   store,
		session: session,
		book:    book,
		timer:   t,
	}
}

// Init initializes the timer model
func (m TimerModel) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return timerTickMsg{}
		}),
		tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
			return animationTickMsg{}
		}),
	)
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.elapsedTime = m.timer.Elapsed()
		if !m.stopping && !m.exiting {
			return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
				return timerTickMsg{}
			})
		}
		return m, nil

	case animationTickMsg:
		if m.timer.State() == timer.StateRunning {
			m.timerAnimation = (m.timerAnimation + 1) % 4
		}
		if !m.stopping && !m.exiting {
			return m, tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
				return animationTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.BlurMsg:
		// Terminal lost focus: implicit pause, the session survives.
		m.timer.Suspend()
		m.elapsedTime = m.timer.Elapsed()
		return m, nil

	case tea.FocusMsg:
		// Terminal regained focus: implicit resume of a paused session.
		m.timer.Wake()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case " ", "p":
			// Toggle pause/resume
			switch m.timer.State() {
			case timer.StateRunning:
				m.timer.Pause()
			case timer.StatePaused:
				m.timer.Resume()
			}
			m.elapsedTime = m.timer.Elapsed()
			return m, nil
		case "s", "S":
			// Stop the timer and save
			m.stopping = true
			m.finalize()
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			// Exit without stopping; the session row stays active
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// finalize hands the state machine's record to the session repository.
func (m *TimerModel) finalize() {
	final, ok := m.timer.Stop(nil)
	if !ok {
		return
	}
	saved, err := m.store.FinalizeActiveSession(final, models.MoodNeutral, "")
	if err != nil {
		m.err = err
		return
	}
	m.saved = saved
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	helpBarHeight := 1

	contentHeight := m.height - helpBarHeight - 1

	// Narrow view: just the timer panel, full width
	if m.width < 90 {
		timerPanel := m.renderTimerPanel(m.width, contentHeight)

		return lipgloss.JoinVertical(
			lipgloss.Left,
			timerPanel,
			helpBar,
		)
	}

	// Wide view: split screen
	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2

	leftPanel := m.renderTimerPanel(leftWidth, contentHeight)
	rightPanel := m.renderBookPanel(rightWidth, contentHeight)

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		"  ",
		rightPanel,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		helpBar,
	)
}

// renderTimerPanel renders the left timer panel
func (m TimerModel) renderTimerPanel(width, height int) string {
	var components []string

	// Animated header; frozen glyph while paused
	var headerText string
	if m.timer.State() == timer.StatePaused {
		headerText = "⏸  PAUSED  ⏸"
	} else {
		animChars := []string{"📖", "📕", "📖", "📗"}
		animChar := animChars[m.timerAnimation]
		headerText = fmt.Sprintf("%s  READING  %s", animChar, animChar)
	}

	headerColor := ColorAccentBright
	if m.timer.State() == timer.StatePaused {
		headerColor = ColorWarning
	}
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(headerColor)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)

	components = append(components, headerStyle.Render(headerText))

	// Book ID and title, or the unassigned marker
	idStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)

	if m.book != nil {
		components = append(components, idStyle.Render(fmt.Sprintf("#%d", m.book.ID)))

		titleText := m.book.Title
		if len(titleText) > width-4 {
			titleText = titleText[:width-7] + "..."
		}
		components = append(components, titleStyle.Render(titleText))
	} else {
		components = append(components, titleStyle.Render("Unassigned session"))
	}

	// Big clock display
	clockDisplay := m.renderBigClock()
	clockLines := strings.Split(clockDisplay, "\n")
	clockContent := ""
	for _, line := range clockLines {
		centeredLine := lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(width).
			Render(line)
		clockContent += centeredLine + "\n"
	}
	components = append(components, strings.TrimRight(clockContent, "\n"))

	// Session start time
	sessionInfo := fmt.Sprintf("Started at %s", m.session.StartedAt.Format("15:04:05"))
	sessionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, sessionStyle.Render(sessionInfo))

	content := strings.Join(components, "\n\n")

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return panelStyle.Render(content)
}

// renderBigClock renders the ASCII art clock
func (m TimerModel) renderBigClock() string {
	duration := m.elapsedTime
	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60
	seconds := int(duration.Seconds()) % 60

	// ASCII art for digits (5x5 characters each)
	digits := map[rune][][]string{
		'0': {
			{" ███ "},
			{"█   █"},
			{"█   █"},
			{"█   █"},
			{" ███ "},
		},
		'1': {
			{"  █  "},
			{" ██  "},
			{"  █  "},
			{"  █  "},
			{"█████"},
		},
		'2': {
			{" ███ "},
			{"█   █"},
			{"   █ "},
			{"  █  "},
			{"█████"},
		},
		'3': {
			{" ███ "},
			{"█   █"},
			{"  ██ "},
			{"█   █"},
			{" ███ "},
		},
		'4': {
			{"█   █"},
			{"█   █"},
			{"█████"},
			{"    █"},
			{"    █"},
		},
		'5': {
			{"█████"},
			{"█    "},
			{"████ "},
			{"    █"},
			{"████ "},
		},
		'6': {
			{" ███ "},
			{"█    "},
			{"████ "},
			{"█   █"},
			{" ███ "},
		},
		'7': {
			{"█████"},
			{"    █"},
			{"   █ "},
			{"  █  "},
			{" █   "},
		},
		'8': {
			{" ███ "},
			{"█   █"},
			{" ███ "},
			{"█   █"},
			{" ███ "},
		},
		'9': {
			{" ███ "},
			{"█   █"},
			{" ████"},
			{"    █"},
			{" ███ "},
		},
		':': {
			{"     "},
			{"  █  "},
			{"     "},
			{"  █  "},
			{"     "},
		},
	}

	timeStr := ""
	if hours > 0 {
		timeStr = fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	} else {
		timeStr = fmt.Sprintf("%02d:%02d", minutes, seconds)
	}

	var lines [5]strings.Builder
	for _, char := range timeStr {
		if digitArt, ok := digits[char]; ok {
			for i := 0; i < 5; i++ {
				lines[i].WriteString(digitArt[i][0])
				lines[i].WriteString(" ")
			}
		}
	}

	clockColor := ColorAccentBright
	if m.timer.State() == timer.StatePaused {
		clockColor = ColorDisabledText
	}
	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(clockColor)).
		Bold(true)

	var result strings.Builder
	for i := 0; i < 5; i++ {
		result.WriteString(clockStyle.Render(lines[i].String()))
		if i < 4 {
			result.WriteString("\n")
		}
	}

	return result.String()
}

// renderBookPanel renders the right panel with book details
func (m TimerModel) renderBookPanel(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")

	logoLines := []string{
		"██╗     ███████╗ █████╗ ███████╗",
		"██║     ██╔════╝██╔══██╗██╔════╝",
		"██║     █████╗  ███████║█████╗  ",
		"██║     ██╔══╝  ██╔══██║██╔══╝  ",
		"███████╗███████╗██║  ██║██║     ",
		"╚══════╝╚══════╝╚═╝  ╚═╝╚═╝     ",
	}

	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width - 8)

	b.WriteString(logoStyle.Render(strings.Join(logoLines, "\n")))
	b.WriteString("\n\n")

	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBorder)).
		Align(lipgloss.Center).
		Width(width - 8)
	separatorLine := strings.Repeat("─", min(width-12, 40))
	b.WriteString(separatorStyle.Render(separatorLine))
	b.WriteString("\n\n")

	if m.book == nil {
		infoStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Align(lipgloss.Center).
			Width(width - 8)
		b.WriteString(infoStyle.Render("No book attached to this session."))
		b.WriteString("\n")
		b.WriteString(infoStyle.Render("It will be listed as Unassigned."))
		return b.String()
	}

	// Title in a bordered box
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(width - 12).
		Padding(0, 1)
	b.WriteString(titleStyle.Render(m.book.Title))
	b.WriteString("\n\n")

	lineStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width - 8)

	authorValue := "unknown"
	authorColor := ColorDisabledText
	if m.book.Author != "" {
		authorValue = m.book.Author
		authorColor = ColorAccentBright
	}
	authorLine := fmt.Sprintf("✍️  Author: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(authorColor)).Render(authorValue))
	b.WriteString(lineStyle.Render(authorLine))
	b.WriteString("\n")

	progressValue := "no page count"
	progressColor := ColorDisabledText
	if m.book.TotalPages > 0 {
		progressValue = fmt.Sprintf("%d/%d (%.0f%%)", m.book.CurrentPage, m.book.TotalPages, m.book.Progress()*100)
		progressColor = ColorAccentBright
	}
	progressLine := fmt.Sprintf("🔖 Progress: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(progressColor)).Render(progressValue))
	b.WriteString(lineStyle.Render(progressLine))
	b.WriteString("\n")

	addedLine := fmt.Sprintf("📝 Added: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(m.book.CreatedAt.Format("Jan 02, 2006")))
	b.WriteString(lineStyle.Render(addedLine))

	return b.String()
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	helpText := "space pause/resume · s stop & save · esc/q exit (keep running) · ctrl+c force quit"

	return helpStyle.Render(helpText)
}

// RunReadingTimerTUI runs the live reading timer TUI
func RunReadingTimerTUI(store *db.Store, session *models.ReadingSession, book *models.Book, pagesPerMinute float64) error {
	model := NewTimerModel(store, session, book, pagesPerMinute)

	// Focus reporting drives the implicit pause on backgrounding.
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	timerModel := finalModel.(TimerModel)
	switch {
	case timerModel.err != nil:
		return fmt.Errorf("failed to save session: %w", timerModel.err)

	case timerModel.stopping && timerModel.saved != nil:
		saved := timerModel.saved
		fmt.Printf("⏹️  Session saved: %d min, %d pages\n", saved.Minutes, saved.Pages)

	case timerModel.exiting:
		fmt.Println("\n💡 The timer is still running in the background.")
		fmt.Println("   Use 'leaflog status' to check it or 'leaflog stop' to finish.")
	}

	return nil
}

// min returns the smaller of two ints
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
