package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"leaflog/internal/db"
	"leaflog/internal/models"
	"leaflog/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List your books",
	Long:    `List the reading collection with an interactive UI, or plain text with --no-ui.`,
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		books, err := store.GetBooks()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(books); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		if noUI, _ := cmd.Flags().GetBool("no-ui"); noUI {
			printBooks(books, store)
			return
		}

		if err := tui.RunBookListTUI(store); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

// printBooks renders the plain-text listing.
func printBooks(books []models.Book, store *db.Store) {
	if len(books) == 0 {
		fmt.Println("No books yet. Add one with 'leaflog add'.")
		return
	}

	for _, b := range books {
		marker := "📖"
		if b.Finished() {
			marker = "✅"
		}
		line := fmt.Sprintf("%s #%d %s", marker, b.ID, b.Title)
		if b.Author != "" {
			line += " — " + b.Author
		}
		if b.TotalPages > 0 {
			line += fmt.Sprintf("  [%d/%d, %.0f%%]", b.CurrentPage, b.TotalPages, b.Progress()*100)
		}
		fmt.Println(line)

		bookID := b.ID
		sessions, err := store.GetSessions(&bookID)
		if err == nil && len(sessions) > 0 {
			minutes := 0
			for _, s := range sessions {
				if s.Minutes > 0 {
					minutes += s.Minutes
				}
			}
			fmt.Printf("    %d sessions, %d min total\n", len(sessions), minutes)
		}
	}
}

func init() {
	listCmd.Flags().Bool("no-ui", false, "Simple text output")
	listCmd.Flags().Bool("json", false, "JSON output")
}
