package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"leaflog/internal/db"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search books by title or author",
	Args:  cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		query := strings.Join(args, " ")
		books, err := store.SearchBooks(query)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if len(books) == 0 {
			fmt.Printf("No books matching %q\n", query)
			return
		}

		fmt.Printf("Found %d book(s):\n", len(books))
		printBooks(books, store)
	}),
}
