package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"leaflog/internal/db"
	"leaflog/internal/models"
	"leaflog/internal/parser"
)

var logCmd = &cobra.Command{
	Use:   "log [book-id]",
	Short: "Quick-log a reading session",
	Long: `Record a finished reading session without running the timer.
With no book ID the session is logged as unassigned.

The stored minute count is the larger of what you type and the start/end
delta, so a backdated window can only raise it.

Examples:
  leaflog log 3 -m 45 -p 30              # 45 minutes, 30 pages on book #3
  leaflog log -m 20 --mood calm          # unassigned session
  leaflog log 3 -m 30 --on yesterday     # backdated`,
	Args: cobra.MaximumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		var bookID *uint
		if len(args) == 1 {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				fmt.Printf("Error: invalid book ID '%s'\n", args[0])
				return
			}
			uid := uint(id)
			bookID = &uid
		}

		minutes, _ := cmd.Flags().GetInt("minutes")
		pages, _ := cmd.Flags().GetInt("pages")
		note, _ := cmd.Flags().GetString("note")
		mood, _ := cmd.Flags().GetString("mood")
		moodNote, _ := cmd.Flags().GetString("mood-note")

		if minutes <= 0 && pages <= 0 {
			fmt.Println("Nothing to log. Pass --minutes and/or --pages.")
			return
		}

		end := time.Now()
		if on, _ := cmd.Flags().GetString("on"); on != "" {
			when, err := parser.ParseWhen(on, end)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			// Anchor the session to the evening of that day.
			end = when.Add(20 * time.Hour)
		}
		start := end.Add(-time.Duration(minutes) * time.Minute)

		session, err := store.LogSession(db.LogSessionRequest{
			BookID:     bookID,
			StartedAt:  start,
			FinishedAt: end,
			Minutes:    minutes,
			Pages:      pages,
			Note:       note,
			Mood:       models.MoodKind(mood),
			MoodNote:   moodNote,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		target := "unassigned"
		if session.BookID != nil {
			if book, err := store.GetBookByID(*session.BookID); err == nil {
				target = book.Title
			}
		}
		fmt.Printf("📖 Logged %d min, %d pages (%s)\n", session.Minutes, session.Pages, target)

		// Move the bookmark along with the pages read.
		if session.BookID != nil && session.Pages > 0 {
			if book, err := store.AddProgress(*session.BookID, session.Pages); err == nil {
				fmt.Printf("🔖 %s: page %d/%d\n", book.Title, book.CurrentPage, book.TotalPages)
			}
		}
	}),
}

func init() {
	logCmd.Flags().IntP("minutes", "m", 0, "Minutes read")
	logCmd.Flags().IntP("pages", "p", 0, "Pages read")
	logCmd.Flags().String("note", "", "Session note")
	logCmd.Flags().String("mood", "", "Mood after reading: calm, focused, sleepy, excited, neutral")
	logCmd.Flags().String("mood-note", "", "Note on the mood entry")
	logCmd.Flags().String("on", "", "Day it happened: today, yesterday, dd/mm/yyyy, X days ago")
}
