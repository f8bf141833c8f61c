// Package metrics holds the pure aggregate functions computed over
// snapshots of the reading history. Everything here is stateless and
// defensively clamps negative minutes/pages, since upstream repair of
// corrupt stored data is best-effort.
package metrics

import (
	"sort"
	"time"

	"leaflog/internal/models"
)

// TotalMinutes sums session minutes, optionally filtered by book.
func TotalMinutes(sessions []models.ReadingSession, bookID *uint) int {
	total := 0
	for _, s := range sessions {
		if bookID != nil && (s.BookID == nil || *s.BookID != *bookID) {
			continue
		}
		if s.Minutes > 0 {
			total += s.Minutes
		}
	}
	return total
}

// TotalPages sums session pages, optionally filtered by book.
func TotalPages(sessions []models.ReadingSession, bookID *uint) int {
	total := 0
	for _, s := range sessions {
		if bookID != nil && (s.BookID == nil || *s.BookID != *bookID) {
			continue
		}
		if s.Pages > 0 {
			total += s.Pages
		}
	}
	return total
}

// LongestStreakDays returns the longest run of consecutive local calendar
// days that contain at least one session. Empty input returns 0.
func LongestStreakDays(sessions []models.ReadingSession) int {
	if len(sessions) == 0 {
		return 0
	}

	seen := make(map[time.Time]bool, len(sessions))
	for _, s := range sessions {
		seen[dayOf(s.StartedAt)] = true
	}

	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// WindowTotals aggregates sessions whose start falls inside a day window.
type WindowTotals struct {
	Minutes  int
	Pages    int
	Sessions int
}

// SumInWindow sums minutes, pages and session count for sessions starting
// in [from, toExclusive).
func SumInWindow(sessions []models.ReadingSession, from, toExclusive time.Time) WindowTotals {
	var w WindowTotals
	for _, s := range sessions {
		if s.StartedAt.Before(from) || !s.StartedAt.Before(toExclusive) {
			continue
		}
		if s.Minutes > 0 {
			w.Minutes += s.Minutes
		}
		if s.Pages > 0 {
			w.Pages += s.Pages
		}
		w.Sessions++
	}
	return w
}

// DominantMood returns the mood kind with the highest accumulated weight
// (0.6*valence + 0.4*energy per occurrence). Ties go to the kind whose
// maximum was encountered first; an empty history reads as neutral.
func DominantMood(moods []models.MoodEntry) models.MoodKind {
	if len(moods) == 0 {
		return models.MoodNeutral
	}

	weights := make(map[models.MoodKind]float64)
	var order []models.MoodKind
	for _, m := range moods {
		if _, seen := weights[m.Kind]; !seen {
			order = append(order, m.Kind)
		}
		p := m.Kind.Profile()
		weights[m.Kind] += 0.6*p.Valence + 0.4*p.Energy
	}

	best := order[0]
	for _, k := range order[1:] {
		if weights[k] > weights[best] {
			best = k
		}
	}
	return best
}

// MoodAggregate is the mean energy/valence over a mood history.
type MoodAggregate struct {
	Energy  float64
	Valence float64
}

// AggregateMoodMetrics averages the fixed taxonomy scores over every
// occurrence. The empty-history baseline is (0.5, 0.6).
func AggregateMoodMetrics(moods []models.MoodEntry) MoodAggregate {
	if len(moods) == 0 {
		return MoodAggregate{Energy: 0.5, Valence: 0.6}
	}

	var energy, valence float64
	for _, m := range moods {
		p := m.Kind.Profile()
		energy += p.Energy
		valence += p.Valence
	}
	n := float64(len(moods))
	return MoodAggregate{Energy: energy / n, Valence: valence / n}
}

// DistinctMoodKinds counts how many different mood kinds have been logged.
func DistinctMoodKinds(moods []models.MoodEntry) int {
	seen := make(map[models.MoodKind]bool)
	for _, m := range moods {
		seen[m.Kind] = true
	}
	return len(seen)
}

// BooksFinished counts books read cover to cover.
func BooksFinished(books []models.Book) int {
	n := 0
	for _, b := range books {
		if b.Finished() {
			n++
		}
	}
	return n
}

// dayOf truncates a timestamp to its local calendar day.
func dayOf(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
