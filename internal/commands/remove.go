package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"leaflog/internal/db"
)

var removeCmd = &cobra.Command{
	Use:     "rm <book_id>",
	Aliases: []string{"remove"},
	Short:   "Remove a book from your collection",
	Long: `Remove a book. Its logged sessions are kept and show up as
"Unassigned" in listings and exports.`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		bookID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid book ID '%s'\n", args[0])
			return
		}

		book, err := store.RemoveBook(uint(bookID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Removed #%d: %s\n", book.ID, book.Title)
	}),
}
