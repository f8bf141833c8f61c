package achievements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaflog/internal/models"
)

func finishedSession(day time.Time, minutes, pages int) models.ReadingSession {
	end := day.Add(time.Duration(minutes) * time.Minute)
	return models.ReadingSession{StartedAt: day, FinishedAt: &end, Minutes: minutes, Pages: pages}
}

func codes(list []models.Achievement) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Code)
	}
	return out
}

func TestEvaluateAllFirstSession(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	sessions := []models.ReadingSession{
		finishedSession(now.Add(-time.Hour), 10, 5),
	}

	updated, newly := EvaluateAll(nil, sessions, nil, Seed(), now)

	require.Len(t, newly, 1)
	assert.Equal(t, "first_session", newly[0].Code)
	assert.True(t, newly[0].IsUnlocked)
	require.NotNil(t, newly[0].UnlockedAt)
	assert.Equal(t, now, *newly[0].UnlockedAt)

	// The full set keeps catalog order and length.
	assert.Len(t, updated, len(Catalog()))
}

func TestEvaluateAllIsIdempotent(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	var sessions []models.ReadingSession
	for i := 0; i < 12; i++ {
		sessions = append(sessions, finishedSession(now.AddDate(0, 0, -i), 30, 10))
	}

	first, newly := EvaluateAll(nil, sessions, nil, Seed(), now)
	require.NotEmpty(t, newly)

	// Same inputs with the updated set: nothing new, nothing changed.
	second, newlyAgain := EvaluateAll(nil, sessions, nil, first, now.Add(time.Hour))
	assert.Empty(t, newlyAgain)
	assert.Equal(t, first, second)
}

func TestEvaluateAllUnlockIsMonotonic(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	sessions := []models.ReadingSession{finishedSession(now, 10, 5)}

	updated, _ := EvaluateAll(nil, sessions, nil, Seed(), now)

	// History shrinks to nothing; the unlock must survive.
	after, newly := EvaluateAll(nil, nil, nil, updated, now.Add(time.Hour))
	assert.Empty(t, newly)

	for i, a := range after {
		assert.Equal(t, updated[i].IsUnlocked, a.IsUnlocked, "code %s", a.Code)
	}
}

func TestEvaluateAllThresholds(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		books    []models.Book
		sessions []models.ReadingSession
		moods    []models.MoodEntry
		want     []string
	}{
		{
			name: "one hour total",
			sessions: []models.ReadingSession{
				finishedSession(now, 60, 0),
			},
			want: []string{"first_session", "minutes_60"},
		},
		{
			name: "hundred pages",
			sessions: []models.ReadingSession{
				finishedSession(now, 10, 100),
			},
			want: []string{"first_session", "pages_100"},
		},
		{
			name: "three day streak",
			sessions: []models.ReadingSession{
				finishedSession(now, 5, 1),
				finishedSession(now.AddDate(0, 0, -1), 5, 1),
				finishedSession(now.AddDate(0, 0, -2), 5, 1),
			},
			want: []string{"first_session", "streak_3"},
		},
		{
			name: "mood explorer",
			moods: []models.MoodEntry{
				{Kind: models.MoodCalm},
				{Kind: models.MoodFocused},
				{Kind: models.MoodExcited},
			},
			want: []string{"moods_3"},
		},
		{
			name: "first finish",
			books: []models.Book{
				{Title: "Dune", TotalPages: 412, CurrentPage: 412},
			},
			want: []string{"first_finish"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, newly := EvaluateAll(tt.books, tt.sessions, tt.moods, Seed(), now)
			assert.Equal(t, tt.want, codes(newly))
		})
	}
}

func TestEvaluateAllIgnoresActiveSession(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	sessions := []models.ReadingSession{
		{StartedAt: now, FinishedAt: nil}, // live timer row
	}

	_, newly := EvaluateAll(nil, sessions, nil, Seed(), now)
	assert.NotContains(t, codes(newly), "first_session")
}

func TestEvaluateAllCarriesStaleCodes(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	current := Seed()
	stale := models.Achievement{Code: "retired_badge", Title: "Retired", IsUnlocked: true}
	current = append(current, stale)

	updated, _ := EvaluateAll(nil, nil, nil, current, now)

	require.Len(t, updated, len(Catalog())+1)
	last := updated[len(updated)-1]
	assert.Equal(t, "retired_badge", last.Code)
	assert.True(t, last.IsUnlocked)
}

func TestEvaluateAllSeedsMissingCodes(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	// Persisted set predates most of the catalog.
	current := []models.Achievement{{Code: "first_session"}}

	updated, _ := EvaluateAll(nil, nil, nil, current, now)
	assert.Equal(t, codes(Seed()), codes(updated))
}
