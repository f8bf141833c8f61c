package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"leaflog/internal/db"
	"leaflog/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <csv|json>",
	Short: "Export your reading history",
	Long: `Export the reading history to stdout (or --out <file>).

csv   One row per session: id,bookId,bookTitle,startISO8601,endISO8601,minutes,pages
json  Snapshot of all five collections (books, sessions, moods, achievements, settings)`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"csv", "json"},
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		out := os.Stdout
		if path, _ := cmd.Flags().GetString("out"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			defer f.Close()
			out = f
		}

		switch args[0] {
		case "csv":
			sessions, err := store.GetSessions(nil)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			books, err := store.GetBooks()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if err := export.WriteSessionsCSV(out, sessions, books); err != nil {
				fmt.Printf("Error: %v\n", err)
			}

		case "json":
			snap, err := buildSnapshot(store)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if err := export.WriteJSON(out, snap); err != nil {
				fmt.Printf("Error: %v\n", err)
			}

		default:
			fmt.Printf("Error: unknown format %q (use csv or json)\n", args[0])
		}
	}),
}

func buildSnapshot(store *db.Store) (export.Snapshot, error) {
	var snap export.Snapshot
	var err error
	if snap.Books, err = store.GetBooks(); err != nil {
		return snap, err
	}
	if snap.Sessions, err = store.GetSessions(nil); err != nil {
		return snap, err
	}
	if snap.Moods, err = store.GetMoods(); err != nil {
		return snap, err
	}
	if snap.Achievements, err = store.GetAchievements(); err != nil {
		return snap, err
	}
	if snap.Settings, err = store.Settings(); err != nil {
		return snap, err
	}
	return snap, nil
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "Write to file instead of stdout")
}
