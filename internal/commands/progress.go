package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"leaflog/internal/db"
	"leaflog/internal/models"
)

var progressCmd = &cobra.Command{
	Use:   "progress <book_id> <page|+pages|-pages>",
	Short: "Move your bookmark",
	Long: `Update how far you are into a book.

A bare number places the bookmark on that page; +N/-N moves it relative to
where it is. The bookmark is clamped to [0, total pages].

Usage:
  leaflog progress 3 120    - now on page 120
  leaflog progress 3 +20    - read 20 more pages`,
	Args: cobra.ExactArgs(2),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		bookID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid book ID '%s'\n", args[0])
			return
		}

		arg := strings.TrimSpace(args[1])
		relative := strings.HasPrefix(arg, "+") || strings.HasPrefix(arg, "-")
		amount, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Printf("Error: invalid page value '%s'\n", arg)
			return
		}

		var book *models.Book
		if relative {
			b, err := store.AddProgress(uint(bookID), amount)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			book = b
		} else {
			b, err := store.SetPage(uint(bookID), amount)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			book = b
		}

		fmt.Printf("🔖 #%d %s: page %d/%d (%.0f%%)\n", book.ID, book.Title, book.CurrentPage, book.TotalPages, book.Progress()*100)
		if book.Finished() {
			fmt.Println("✅ Finished! Nicely done.")
		}
	}),
}
