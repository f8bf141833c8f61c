package achievements

import (
	"sync"
	"time"

	"leaflog/internal/clock"
	"leaflog/internal/models"
)

// DefaultWindow is the coalescing delay before a scheduled evaluation
// runs. Non-zero so that bursts of mutations within one user action
// (book + session + mood changing together) produce a single pass.
const DefaultWindow = 150 * time.Millisecond

// Snapshot is the full in-memory history handed to the engine by value.
type Snapshot struct {
	Books        []models.Book
	Sessions     []models.ReadingSession
	Moods        []models.MoodEntry
	Achievements []models.Achievement
}

// LoadFunc produces the current snapshot.
type LoadFunc func() (Snapshot, error)

// CommitFunc persists the updated achievement set after a pass that
// unlocked something.
type CommitFunc func(updated, newlyUnlocked []models.Achievement) error

// Evaluator is the explicit trigger point between the repositories and
// the engine. Repositories call Notify after every mutation; near-
// simultaneous notifications are debounced into one evaluation pass.
// Flush forces the pending pass synchronously (used before the process
// exits, since a short-lived CLI rarely outlives the window).
type Evaluator struct {
	mu      sync.Mutex
	window  time.Duration
	clk     clock.Clock
	load    LoadFunc
	commit  CommitFunc
	timer   *time.Timer
	pending bool
}

// NewEvaluator wires the trigger. A window <= 0 falls back to DefaultWindow.
func NewEvaluator(window time.Duration, clk clock.Clock, load LoadFunc, commit CommitFunc) *Evaluator {
	if window <= 0 {
		window = DefaultWindow
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &Evaluator{window: window, clk: clk, load: load, commit: commit}
}

// Notify schedules an evaluation pass after the coalescing window.
// Repeated calls within the window collapse into a single pass.
func (e *Evaluator) Notify() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pending = true
	if e.timer == nil {
		e.timer = time.AfterFunc(e.window, func() {
			e.Flush() //nolint:errcheck // background pass; next Flush retries
		})
		return
	}
	e.timer.Reset(e.window)
}

// Flush runs the pending evaluation immediately and returns whatever was
// newly unlocked. A flush with nothing pending is a no-op.
func (e *Evaluator) Flush() ([]models.Achievement, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.pending {
		return nil, nil
	}
	e.pending = false
	if e.timer != nil {
		e.timer.Stop()
	}

	snap, err := e.load()
	if err != nil {
		e.pending = true // retry on the next flush
		return nil, err
	}

	updated, newly := EvaluateAll(snap.Books, snap.Sessions, snap.Moods, snap.Achievements, e.clk.Now())
	if len(newly) == 0 {
		// Value-identical to the current set; nothing to persist or announce.
		return nil, nil
	}
	if err := e.commit(updated, newly); err != nil {
		return nil, err
	}
	return newly, nil
}
