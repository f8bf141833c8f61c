package achievements

import (
	"time"

	"leaflog/internal/metrics"
	"leaflog/internal/models"
)

// EvaluateAll checks every catalog predicate against the full history and
// returns the updated achievement set plus the subset newly unlocked in
// this pass. Unlocking is monotonic: already-unlocked records pass through
// untouched, so a second call with identical inputs and the updated set
// yields no new unlocks. Persisted records whose code has dropped out of
// the catalog are carried through at the end, never deleted. The function
// has no side effects; the caller decides whether to persist and notify.
func EvaluateAll(books []models.Book, sessions []models.ReadingSession, moods []models.MoodEntry, current []models.Achievement, now time.Time) (updated, newlyUnlocked []models.Achievement) {
	byCode := make(map[string]models.Achievement, len(current))
	for _, a := range current {
		byCode[a.Code] = a
	}

	updated = make([]models.Achievement, 0, len(current))
	for _, def := range catalog {
		rec, ok := byCode[def.Code]
		if !ok {
			// Not yet seeded for this code (e.g. catalog grew since the
			// last run); start from the locked seed.
			rec = models.Achievement{
				Code:        def.Code,
				Title:       def.Title,
				Description: def.Description,
				Icon:        def.Icon,
				Points:      def.Points,
			}
		}
		delete(byCode, def.Code)

		if !rec.IsUnlocked && holds(def, books, sessions, moods) {
			unlockedAt := now
			rec.IsUnlocked = true
			rec.UnlockedAt = &unlockedAt
			newlyUnlocked = append(newlyUnlocked, rec)
		}
		updated = append(updated, rec)
	}

	// Stale codes with no catalog entry are tolerated by passthrough.
	for _, a := range current {
		if _, stale := byCode[a.Code]; stale {
			updated = append(updated, a)
		}
	}

	return updated, newlyUnlocked
}

// holds evaluates one catalog predicate against the history snapshot.
func holds(def Definition, books []models.Book, sessions []models.ReadingSession, moods []models.MoodEntry) bool {
	switch def.Kind {
	case TotalSessionsAtLeast:
		return completedSessions(sessions) >= def.Threshold
	case TotalMinutesAtLeast:
		return metrics.TotalMinutes(sessions, nil) >= def.Threshold
	case TotalPagesAtLeast:
		return metrics.TotalPages(sessions, nil) >= def.Threshold
	case StreakAtLeast:
		return metrics.LongestStreakDays(sessions) >= def.Threshold
	case DistinctMoodsAtLeast:
		return metrics.DistinctMoodKinds(moods) >= def.Threshold
	case BooksFinishedAtLeast:
		return metrics.BooksFinished(books) >= def.Threshold
	}
	return false
}

// completedSessions counts finished sessions; the in-flight timer row
// doesn't count toward session achievements.
func completedSessions(sessions []models.ReadingSession) int {
	n := 0
	for _, s := range sessions {
		if !s.Active() {
			n++
		}
	}
	return n
}
