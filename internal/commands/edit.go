package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"leaflog/internal/db"
)

var editCmd = &cobra.Command{
	Use:   "edit <book_id>",
	Short: "Edit a book's metadata",
	Long: `Edit a book's title, author or page count.

Only the flags you pass are changed; the current page is re-clamped if the
page count shrinks below it.

Usage:
  leaflog edit 42 --title "New Title"
  leaflog edit 42 --pages 480`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		bookID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid book ID '%s'\n", args[0])
			return
		}

		var req db.EditBookRequest
		if cmd.Flags().Changed("title") {
			title, _ := cmd.Flags().GetString("title")
			req.Title = &title
		}
		if cmd.Flags().Changed("author") {
			author, _ := cmd.Flags().GetString("author")
			req.Author = &author
		}
		if cmd.Flags().Changed("pages") {
			pages, _ := cmd.Flags().GetInt("pages")
			req.TotalPages = &pages
		}
		if req.Title == nil && req.Author == nil && req.TotalPages == nil {
			fmt.Println("Nothing to change. Pass --title, --author or --pages.")
			return
		}

		book, err := store.EditBook(uint(bookID), req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✏️  Updated book #%d: %s\n", book.ID, book.Title)
		if book.Author != "" {
			fmt.Printf("  Author: %s\n", book.Author)
		}
		if book.TotalPages > 0 {
			fmt.Printf("  Pages: %d/%d\n", book.CurrentPage, book.TotalPages)
		}
	}),
}

func init() {
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().String("author", "", "New author")
	editCmd.Flags().Int("pages", 0, "New total page count")
}
