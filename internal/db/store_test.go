package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaflog/internal/achievements"
	"leaflog/internal/models"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()

	clk := &fakeClock{now: time.Date(2025, 7, 1, 20, 0, 0, 0, time.UTC)}
	store, err := Open(Options{
		Path:       filepath.Join(t.TempDir(), "leaflog.db"),
		EvalWindow: time.Hour, // background pass never fires during a test
		Clock:      clk,
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store, clk
}

func TestOpenSeedsAchievementsAndSettings(t *testing.T) {
	store, _ := newTestStore(t)

	all, err := store.GetAchievements()
	require.NoError(t, err)
	assert.Len(t, all, len(achievements.Catalog()))
	for _, a := range all {
		assert.False(t, a.IsUnlocked, "code %s", a.Code)
	}

	settings, err := store.Settings()
	require.NoError(t, err)
	assert.NotEmpty(t, settings.InstallID)
	assert.Equal(t, 150, settings.WeeklyGoalMinutes)
}

func TestAddBookValidation(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.AddBook(AddBookRequest{Title: "   "})
	assert.Error(t, err)

	book, err := store.AddBook(AddBookRequest{Title: "  Dune ", Author: " Frank Herbert ", TotalPages: 412})
	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "Frank Herbert", book.Author)
}

func TestProgressClampsToPageCount(t *testing.T) {
	store, _ := newTestStore(t)

	book, err := store.AddBook(AddBookRequest{Title: "Dune", TotalPages: 100})
	require.NoError(t, err)

	book, err = store.SetPage(book.ID, 90)
	require.NoError(t, err)
	assert.Equal(t, 90, book.CurrentPage)

	// +20 overshoots; the bookmark lands on the last page.
	book, err = store.AddProgress(book.ID, 20)
	require.NoError(t, err)
	assert.Equal(t, 100, book.CurrentPage)
	assert.True(t, book.Finished())

	// Backing up below zero clamps too.
	book, err = store.AddProgress(book.ID, -500)
	require.NoError(t, err)
	assert.Equal(t, 0, book.CurrentPage)
}

func TestFinishBookRules(t *testing.T) {
	store, _ := newTestStore(t)

	noPages, err := store.AddBook(AddBookRequest{Title: "Pamphlet"})
	require.NoError(t, err)
	_, err = store.FinishBook(noPages.ID)
	assert.Error(t, err)

	book, err := store.AddBook(AddBookRequest{Title: "Dune", TotalPages: 412})
	require.NoError(t, err)

	book, err = store.FinishBook(book.ID)
	require.NoError(t, err)
	assert.True(t, book.Finished())

	_, err = store.FinishBook(book.ID)
	assert.Error(t, err)
}

func TestRemoveBookKeepsSessions(t *testing.T) {
	store, clk := newTestStore(t)

	book, err := store.AddBook(AddBookRequest{Title: "Dune", TotalPages: 412})
	require.NoError(t, err)

	_, err = store.LogSession(LogSessionRequest{
		BookID:     &book.ID,
		StartedAt:  clk.now.Add(-30 * time.Minute),
		FinishedAt: clk.now,
		Minutes:    30,
		Pages:      20,
	})
	require.NoError(t, err)

	_, err = store.RemoveBook(book.ID)
	require.NoError(t, err)

	_, err = store.GetBookByID(book.ID)
	assert.Error(t, err)

	// The session survives with its dangling book reference.
	sessions, err := store.GetSessions(nil)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.NotNil(t, sessions[0].BookID)
	assert.Equal(t, book.ID, *sessions[0].BookID)
}

func TestLogSessionReconcilesAndAppendsMood(t *testing.T) {
	store, clk := newTestStore(t)

	// Typed 10 minutes but the window spans 45.
	session, err := store.LogSession(LogSessionRequest{
		StartedAt:  clk.now.Add(-45 * time.Minute),
		FinishedAt: clk.now,
		Minutes:    10,
		Pages:      30,
		Mood:       models.MoodFocused,
	})
	require.NoError(t, err)
	assert.Equal(t, 45, session.Minutes)

	moods, err := store.GetMoods()
	require.NoError(t, err)
	require.Len(t, moods, 1)
	assert.Equal(t, models.MoodFocused, moods[0].Kind)
}

func TestTimerSessionLifecycle(t *testing.T) {
	store, clk := newTestStore(t)

	active, err := store.ActiveSession()
	require.NoError(t, err)
	assert.Nil(t, active)

	_, err = store.StartTimerSession(nil)
	require.NoError(t, err)

	// A second start is refused while one is live.
	_, err = store.StartTimerSession(nil)
	assert.Error(t, err)

	active, err = store.ActiveSession()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.True(t, active.Active())

	// The live row does not count as a completed session.
	sessions, err := store.GetSessions(nil)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	clk.now = clk.now.Add(25 * time.Minute)
	saved, err := store.StopActiveSession(nil, models.MoodCalm, "")
	require.NoError(t, err)
	assert.Equal(t, 25, saved.Minutes)
	assert.False(t, saved.Active())

	active, err = store.ActiveSession()
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestStopActiveSessionPagesOverride(t *testing.T) {
	store, clk := newTestStore(t)

	_, err := store.StartTimerSession(nil)
	require.NoError(t, err)
	clk.now = clk.now.Add(10 * time.Minute)

	pages := 17
	saved, err := store.StopActiveSession(&pages, models.MoodNeutral, "")
	require.NoError(t, err)
	assert.Equal(t, 17, saved.Pages)
}

func TestDiscardActiveSession(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.StartTimerSession(nil)
	require.NoError(t, err)

	require.NoError(t, store.DiscardActiveSession())

	active, err := store.ActiveSession()
	require.NoError(t, err)
	assert.Nil(t, active)

	// Nothing was recorded.
	sessions, err := store.GetSessions(nil)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	assert.Error(t, store.DiscardActiveSession())
}

func TestMoodRules(t *testing.T) {
	store, clk := newTestStore(t)

	// Empty kind defaults to neutral.
	entry, err := store.AddMood("", "", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, models.MoodNeutral, entry.Kind)
	assert.Equal(t, clk.now, entry.Date.UTC())

	// Unknown kinds are rejected.
	_, err = store.AddMood("grumpy", "", time.Time{})
	assert.Error(t, err)

	_, err = store.AddMood(models.MoodCalm, "after dinner", time.Time{})
	require.NoError(t, err)

	n, err := store.ClearMoods()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	moods, err := store.GetMoods()
	require.NoError(t, err)
	assert.Empty(t, moods)
}

func TestFlushAchievementsAnnouncesUnlocks(t *testing.T) {
	store, clk := newTestStore(t)

	_, err := store.LogSession(LogSessionRequest{
		StartedAt:  clk.now.Add(-time.Hour),
		FinishedAt: clk.now,
		Minutes:    60,
	})
	require.NoError(t, err)

	newly, err := store.FlushAchievements()
	require.NoError(t, err)

	got := make(map[string]bool, len(newly))
	for _, a := range newly {
		got[a.Code] = true
	}
	assert.True(t, got["first_session"])
	assert.True(t, got["minutes_60"])

	// A second flush with no further mutations stays quiet.
	newly, err = store.FlushAchievements()
	require.NoError(t, err)
	assert.Empty(t, newly)

	points, err := store.UnlockedPoints()
	require.NoError(t, err)
	assert.Equal(t, 20, points) // first_session 10 + minutes_60 10
}

func TestResetAchievementsLocksEverything(t *testing.T) {
	store, clk := newTestStore(t)

	_, err := store.LogSession(LogSessionRequest{
		StartedAt:  clk.now.Add(-time.Minute),
		FinishedAt: clk.now,
		Minutes:    1,
	})
	require.NoError(t, err)
	_, err = store.FlushAchievements()
	require.NoError(t, err)

	require.NoError(t, store.ResetAchievements())

	all, err := store.GetAchievements()
	require.NoError(t, err)
	for _, a := range all {
		assert.False(t, a.IsUnlocked, "code %s", a.Code)
		assert.Nil(t, a.UnlockedAt, "code %s", a.Code)
	}

	// Reset itself schedules no pass; the history still holds, so the next
	// mutation unlocks again.
	newly, err := store.FlushAchievements()
	require.NoError(t, err)
	assert.Empty(t, newly)
}

func TestDedupeBooksOnOpen(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 7, 1, 20, 0, 0, 0, time.UTC)}
	path := filepath.Join(t.TempDir(), "leaflog.db")

	store, err := Open(Options{Path: path, EvalWindow: time.Hour, Clock: clk})
	require.NoError(t, err)

	_, err = store.AddBook(AddBookRequest{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)
	_, err = store.AddBook(AddBookRequest{Title: "dune", Author: "Frank  Herbert"})
	require.NoError(t, err)
	_, err = store.AddBook(AddBookRequest{Title: "Dune", Author: "someone else"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening runs the repair ladder; the case-and-spacing duplicate goes.
	store, err = Open(Options{Path: path, EvalWindow: time.Hour, Clock: clk})
	require.NoError(t, err)
	defer store.Close()

	books, err := store.GetBooks()
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Dune", books[0].Title)
}
