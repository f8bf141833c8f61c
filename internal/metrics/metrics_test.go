package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"leaflog/internal/models"
)

func sessionOn(day time.Time, minutes, pages int) models.ReadingSession {
	end := day.Add(time.Duration(minutes) * time.Minute)
	return models.ReadingSession{
		StartedAt:  day,
		FinishedAt: &end,
		Minutes:    minutes,
		Pages:      pages,
	}
}

func TestTotalMinutesAndPages(t *testing.T) {
	bookA := uint(1)
	bookB := uint(2)
	day := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)

	sessions := []models.ReadingSession{
		{BookID: &bookA, StartedAt: day, Minutes: 30, Pages: 20},
		{BookID: &bookB, StartedAt: day, Minutes: 15, Pages: 10},
		{BookID: nil, StartedAt: day, Minutes: 5, Pages: 2},
		{BookID: &bookA, StartedAt: day, Minutes: -10, Pages: -5}, // corrupt row
	}

	assert.Equal(t, 50, TotalMinutes(sessions, nil))
	assert.Equal(t, 32, TotalPages(sessions, nil))
	assert.Equal(t, 30, TotalMinutes(sessions, &bookA))
	assert.Equal(t, 10, TotalPages(sessions, &bookB))
}

func TestLongestStreakDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 21, 30, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		days []int
		want int
	}{
		{name: "empty", days: nil, want: 0},
		{name: "single day", days: []int{5}, want: 1},
		{name: "two runs", days: []int{1, 2, 3, 7, 8}, want: 3},
		{name: "gap resets", days: []int{1, 3, 5}, want: 1},
		{name: "duplicates within a day collapse", days: []int{4, 4, 4, 5}, want: 2},
		{name: "unsorted input", days: []int{9, 7, 8}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sessions []models.ReadingSession
			for _, d := range tt.days {
				sessions = append(sessions, sessionOn(day(d), 10, 0))
			}
			assert.Equal(t, tt.want, LongestStreakDays(sessions))
		})
	}
}

func TestLongestStreakGrowsMonotonically(t *testing.T) {
	day := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	var sessions []models.ReadingSession
	prev := 0
	for i := 0; i < 10; i++ {
		sessions = append(sessions, sessionOn(day.AddDate(0, 0, i), 10, 0))
		got := LongestStreakDays(sessions)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
	assert.Equal(t, 10, prev)
}

func TestSumInWindow(t *testing.T) {
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	sessions := []models.ReadingSession{
		sessionOn(base.Add(-time.Minute), 10, 5),       // just before the window
		sessionOn(base, 20, 12),                        // inclusive start
		sessionOn(base.Add(23*time.Hour), 30, 8),       // inside
		sessionOn(base.Add(24*time.Hour), 99, 99),      // exclusive end
	}

	got := SumInWindow(sessions, base, base.Add(24*time.Hour))
	assert.Equal(t, WindowTotals{Minutes: 50, Pages: 20, Sessions: 2}, got)
}

func TestDominantMood(t *testing.T) {
	entry := func(k models.MoodKind) models.MoodEntry {
		return models.MoodEntry{Kind: k, Date: time.Now()}
	}

	tests := []struct {
		name  string
		moods []models.MoodEntry
		want  models.MoodKind
	}{
		{name: "empty history reads neutral", moods: nil, want: models.MoodNeutral},
		{name: "single entry", moods: []models.MoodEntry{entry(models.MoodSleepy)}, want: models.MoodSleepy},
		{
			// calm twice: 2*(0.6*0.80+0.4*0.35)=1.24 beats excited once: 0.91
			name:  "count beats per-entry weight",
			moods: []models.MoodEntry{entry(models.MoodCalm), entry(models.MoodCalm), entry(models.MoodExcited)},
			want:  models.MoodCalm,
		},
		{
			name:  "tie goes to first encountered",
			moods: []models.MoodEntry{entry(models.MoodFocused), entry(models.MoodFocused)},
			want:  models.MoodFocused,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DominantMood(tt.moods))
		})
	}
}

func TestAggregateMoodMetrics(t *testing.T) {
	t.Run("empty baseline", func(t *testing.T) {
		got := AggregateMoodMetrics(nil)
		assert.Equal(t, 0.5, got.Energy)
		assert.Equal(t, 0.6, got.Valence)
	})

	t.Run("averages taxonomy scores", func(t *testing.T) {
		moods := []models.MoodEntry{
			{Kind: models.MoodCalm},    // 0.35 / 0.80
			{Kind: models.MoodExcited}, // 0.85 / 0.95
		}
		got := AggregateMoodMetrics(moods)
		assert.InDelta(t, 0.60, got.Energy, 1e-9)
		assert.InDelta(t, 0.875, got.Valence, 1e-9)
	})

	t.Run("unknown kind falls back to neutral", func(t *testing.T) {
		moods := []models.MoodEntry{{Kind: models.MoodKind("grumpy")}}
		got := AggregateMoodMetrics(moods)
		assert.Equal(t, 0.5, got.Energy)
		assert.Equal(t, 0.6, got.Valence)
	})
}

func TestDistinctMoodKinds(t *testing.T) {
	moods := []models.MoodEntry{
		{Kind: models.MoodCalm},
		{Kind: models.MoodCalm},
		{Kind: models.MoodFocused},
	}
	assert.Equal(t, 2, DistinctMoodKinds(moods))
	assert.Equal(t, 0, DistinctMoodKinds(nil))
}

func TestBooksFinished(t *testing.T) {
	books := []models.Book{
		{Title: "A", TotalPages: 100, CurrentPage: 100},
		{Title: "B", TotalPages: 100, CurrentPage: 99},
		{Title: "C", TotalPages: 0, CurrentPage: 0}, // no page count, never finished
	}
	assert.Equal(t, 1, BooksFinished(books))
}
