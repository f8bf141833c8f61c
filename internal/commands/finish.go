package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"leaflog/internal/db"
)

var finishCmd = &cobra.Command{
	Use:   "finish <book_id>",
	Short: "Mark a book as finished",
	Long:  `Mark a book as read cover to cover (bookmark jumps to the last page).`,
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		bookID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid book ID '%s'\n", args[0])
			return
		}

		book, err := store.FinishBook(uint(bookID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Finished #%d: %s (%d pages)\n", book.ID, book.Title, book.TotalPages)
	}),
}
