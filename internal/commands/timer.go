package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"leaflog/internal/db"
	"leaflog/internal/models"
	"leaflog/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start [book-id]",
	Short: "Start the live reading timer",
	Long: `Start the live reading timer. Opens the interactive timer by default,
use --no-ui for a simple start. With no book ID the session is unassigned.

Examples:
  leaflog start 3            # Timer for book #3 with interactive UI
  leaflog start              # Unassigned session
  leaflog start 3 --ppm 0.8  # Estimate pages at 0.8 pages/minute on stop`,
	Args: cobra.MaximumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		var bookID *uint
		var book *models.Book
		if len(args) == 1 {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				fmt.Printf("Error: invalid book ID '%s'\n", args[0])
				return
			}
			b, err := store.GetBookByID(uint(id))
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			book = b
			bookID = &b.ID
		}

		ppm, _ := cmd.Flags().GetFloat64("ppm")
		if !cmd.Flags().Changed("ppm") {
			ppm = defaultPagesPerMinute(store)
		}

		session, err := store.StartTimerSession(bookID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if noUI, _ := cmd.Flags().GetBool("no-ui"); noUI {
			if book != nil {
				fmt.Printf("⏱️  Started reading timer for #%d: %s\n", book.ID, book.Title)
			} else {
				fmt.Println("⏱️  Started reading timer (unassigned)")
			}
			fmt.Printf("Started at: %s\n", session.StartedAt.Format("15:04:05"))
			return
		}

		if err := tui.RunReadingTimerTUI(store, session, book, ppm); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the reading timer",
	Long: `Stop the live reading timer and record the session. Minutes come from
the wall clock since start; use the interactive timer if you pause a lot.`,
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		if discard, _ := cmd.Flags().GetBool("discard"); discard {
			if err := store.DiscardActiveSession(); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Println("🗑️  Discarded the running session.")
			return
		}

		var overridePages *int
		if cmd.Flags().Changed("pages") {
			pages, _ := cmd.Flags().GetInt("pages")
			overridePages = &pages
		}
		mood, _ := cmd.Flags().GetString("mood")
		note, _ := cmd.Flags().GetString("note")

		session, err := store.StopActiveSession(overridePages, models.MoodKind(mood), note)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("⏹️  Stopped reading timer: %d min, %d pages\n", session.Minutes, session.Pages)
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the reading timer status",
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		session, err := store.ActiveSession()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if session == nil {
			fmt.Println("No reading timer running")
			return
		}

		target := "unassigned"
		if session.BookID != nil {
			if book, err := store.GetBookByID(*session.BookID); err == nil {
				target = fmt.Sprintf("#%d: %s", book.ID, book.Title)
			} else {
				target = "Unassigned"
			}
		}

		elapsed := time.Since(session.StartedAt)
		fmt.Printf("⏱️  Currently reading: %s\n", target)
		fmt.Printf("Started at: %s\n", session.StartedAt.Format("15:04:05"))
		fmt.Printf("Elapsed time: %s\n", formatDuration(elapsed))
	}),
}

// defaultPagesPerMinute prefers the settings row, then the config file.
func defaultPagesPerMinute(store *db.Store) float64 {
	if settings, err := store.Settings(); err == nil && settings.DefaultPagesPerMinute > 0 {
		return settings.DefaultPagesPerMinute
	}
	return loadedConfig().PagesPerMinute
}

func init() {
	startCmd.Flags().Bool("no-ui", false, "Start timer without interactive UI")
	startCmd.Flags().Float64("ppm", 0, "Pages per minute used to estimate pages on stop")
	stopCmd.Flags().Int("pages", 0, "Pages read this session (overrides the estimate)")
	stopCmd.Flags().String("mood", "", "Mood after reading: calm, focused, sleepy, excited, neutral")
	stopCmd.Flags().String("note", "", "Session note")
	stopCmd.Flags().Bool("discard", false, "Abandon the running session without recording it")
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}
