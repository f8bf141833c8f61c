// Package timer implements the reading session state machine:
// idle → running → paused → running → … → idle. Elapsed display values
// tick elsewhere; the authoritative minute count at stop time is always
// recomputed from wall-clock interval timestamps so missed ticks during
// backgrounding can't lose time.
package timer

import (
	"math"
	"time"

	"leaflog/internal/clock"
	"leaflog/internal/models"
)

// State is the timer's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Timer accrues reading time across pause/resume/background transitions.
// Invalid transitions (pause while idle, start while running, ...) are
// silent no-ops, never errors.
type Timer struct {
	clk clock.Clock

	state          State
	bookID         *uint
	pagesPerMinute float64
	startedAt      time.Time
	resumedAt      time.Time // start of the open running interval
	accumulated    time.Duration
}

// New returns an idle timer. A nil clock means the system clock.
func New(clk clock.Clock) *Timer {
	if clk == nil {
		clk = clock.System{}
	}
	return &Timer{clk: clk}
}

// State returns the current lifecycle state.
func (t *Timer) State() State {
	return t.state
}

// StartedAt returns the wall-clock start of the session, zero when idle.
func (t *Timer) StartedAt() time.Time {
	return t.startedAt
}

// Start begins a new session. Only valid from idle.
func (t *Timer) Start(bookID *uint, pagesPerMinute float64) {
	if t.state != StateIdle {
		return
	}
	now := t.clk.Now()
	t.bookID = bookID
	t.pagesPerMinute = pagesPerMinute
	t.startedAt = now
	t.resumedAt = now
	t.accumulated = 0
	t.state = StateRunning
}

// Pause folds the open running interval into the accumulated total.
// Only valid from running.
func (t *Timer) Pause() {
	if t.state != StateRunning {
		return
	}
	t.accumulated += t.clk.Now().Sub(t.resumedAt)
	t.state = StatePaused
}

// Resume opens a new running interval. Only valid from paused.
func (t *Timer) Resume() {
	if t.state != StatePaused {
		return
	}
	t.resumedAt = t.clk.Now()
	t.state = StateRunning
}

// Suspend is the external background signal: an implicit pause while
// running, otherwise a no-op (the session is not abandoned).
func (t *Timer) Suspend() {
	t.Pause()
}

// Wake is the external foreground signal: an implicit resume, valid only
// when a started session is sitting paused.
func (t *Timer) Wake() {
	t.Resume()
}

// Elapsed returns accumulated time plus the open running interval. This
// is the presentational value behind the ticking display; Stop does not
// consume it.
func (t *Timer) Elapsed() time.Duration {
	if t.state == StateRunning {
		return t.accumulated + t.clk.Now().Sub(t.resumedAt)
	}
	return t.accumulated
}

// Stop finalizes the session from running or paused and resets to idle.
// Minutes come from the accumulated running intervals; pages come from
// the override when given, else minutes × pagesPerMinute, else 0.
// Returns false when the timer was idle.
func (t *Timer) Stop(overridePages *int) (models.ReadingSession, bool) {
	if t.state == StateIdle {
		return models.ReadingSession{}, false
	}

	now := t.clk.Now()
	if t.state == StateRunning {
		t.accumulated += now.Sub(t.resumedAt)
	}

	minutes := int(math.Round(t.accumulated.Seconds() / 60))
	pages := 0
	switch {
	case overridePages != nil:
		pages = *overridePages
		if pages < 0 {
			pages = 0
		}
	case t.pagesPerMinute > 0:
		pages = int(math.Round(float64(minutes) * t.pagesPerMinute))
	}

	session := models.ReadingSession{
		BookID:     t.bookID,
		StartedAt:  t.startedAt,
		FinishedAt: &now,
		Minutes:    minutes,
		Pages:      pages,
	}

	*t = Timer{clk: t.clk}
	return session, true
}
