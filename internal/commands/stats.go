package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"leaflog/internal/db"
	"leaflog/internal/metrics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show reading statistics",
	Long:  `Totals, streak, recent windows and mood aggregates over the whole history.`,
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		sessions, err := store.GetSessions(nil)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		moods, err := store.GetMoods()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		books, err := store.GetBooks()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		tomorrow := today.AddDate(0, 0, 1)
		weekAgo := today.AddDate(0, 0, -6)

		todayTotals := metrics.SumInWindow(sessions, today, tomorrow)
		weekTotals := metrics.SumInWindow(sessions, weekAgo, tomorrow)

		fmt.Println("📊 Reading stats")
		fmt.Printf("  Sessions:       %d\n", len(sessions))
		fmt.Printf("  Total time:     %s\n", formatDuration(time.Duration(metrics.TotalMinutes(sessions, nil))*time.Minute))
		fmt.Printf("  Total pages:    %d\n", metrics.TotalPages(sessions, nil))
		fmt.Printf("  Books finished: %d\n", metrics.BooksFinished(books))
		fmt.Printf("  Longest streak: %d day(s)\n", metrics.LongestStreakDays(sessions))
		fmt.Println()
		fmt.Printf("  Today:     %d min, %d pages over %d session(s)\n", todayTotals.Minutes, todayTotals.Pages, todayTotals.Sessions)
		fmt.Printf("  This week: %d min, %d pages over %d session(s)\n", weekTotals.Minutes, weekTotals.Pages, weekTotals.Sessions)

		if settings, err := store.Settings(); err == nil && settings.WeeklyGoalMinutes > 0 {
			pct := float64(weekTotals.Minutes) / float64(settings.WeeklyGoalMinutes) * 100
			fmt.Printf("  Weekly goal: %d/%d min (%.0f%%)\n", weekTotals.Minutes, settings.WeeklyGoalMinutes, pct)
		}

		if len(moods) > 0 {
			agg := metrics.AggregateMoodMetrics(moods)
			fmt.Println()
			fmt.Printf("  Dominant mood: %s\n", metrics.DominantMood(moods))
			fmt.Printf("  Mood energy/valence: %.2f / %.2f over %d entries\n", agg.Energy, agg.Valence, len(moods))
		}
	}),
}
