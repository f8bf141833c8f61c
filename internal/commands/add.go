package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"leaflog/internal/db"
	"leaflog/internal/parser"
	"leaflog/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [book description]",
	Short: "Add a book to your collection",
	Long: `Add a book to your reading collection.

Modes:
  Interactive: leaflog add -i (or just 'leaflog add' with no arguments)
  Quick: leaflog add "Book title" (with optional flags)
  Smart parsing: leaflog add "Dune by Frank Herbert p:412"

Smart parsing syntax:
  by Author   - Author name (last ' by ' wins)
  p:320       - Total page count`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		interactive, _ := cmd.Flags().GetBool("interactive")

		// If no args and not explicitly interactive, go interactive
		if len(args) == 0 && !interactive {
			interactive = true
		}

		if interactive {
			runInteractiveAdd(cmd, args)
			return
		}

		parsed := parser.ParseBook(strings.Join(args, " "))
		if len(parsed.Errors) > 0 {
			fmt.Printf("⚠️  Found issues with parsing: %s\n", strings.Join(parsed.Errors, ", "))
			fmt.Println("Opening interactive mode for confirmation...")
			runInteractiveAddWithParsed(cmd, parsed)
			return
		}
		runDirectAdd(cmd, parsed)
	},
}

// runInteractiveAdd starts interactive mode
func runInteractiveAdd(cmd *cobra.Command, args []string) {
	prefilled := make(map[string]string)

	if len(args) > 0 {
		prefilled["title"] = strings.Join(args, " ")
	}
	fillFromFlags(cmd, prefilled)

	store, err := openStore()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer store.Close()

	if err := tui.RunAddBookTUI(store, prefilled); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
	announceUnlocks(store)
}

// runInteractiveAddWithParsed starts interactive mode with parsed data
func runInteractiveAddWithParsed(cmd *cobra.Command, parsed parser.ParsedBook) {
	prefilled := make(map[string]string)
	prefilled["title"] = parsed.Title
	if parsed.Author != "" {
		prefilled["author"] = parsed.Author
	}
	if parsed.TotalPages > 0 {
		prefilled["pages"] = fmt.Sprintf("%d", parsed.TotalPages)
	}
	fillFromFlags(cmd, prefilled)

	store, err := openStore()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer store.Close()

	if err := tui.RunAddBookTUI(store, prefilled); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
	announceUnlocks(store)
}

// fillFromFlags lets explicit flags override parsed/prefilled values.
func fillFromFlags(cmd *cobra.Command, prefilled map[string]string) {
	if author, _ := cmd.Flags().GetString("author"); author != "" {
		prefilled["author"] = author
	}
	if pages, _ := cmd.Flags().GetInt("pages"); pages > 0 {
		prefilled["pages"] = fmt.Sprintf("%d", pages)
	}
}

// runDirectAdd creates the book directly without TUI
func runDirectAdd(cmd *cobra.Command, parsed parser.ParsedBook) {
	title := parsed.Title
	author := parsed.Author
	pages := parsed.TotalPages

	// Explicit flags take precedence
	if flagAuthor, _ := cmd.Flags().GetString("author"); flagAuthor != "" {
		author = flagAuthor
	}
	if flagPages, _ := cmd.Flags().GetInt("pages"); flagPages > 0 {
		pages = flagPages
	}

	store, err := openStore()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer store.Close()

	book, err := store.AddBook(db.AddBookRequest{
		Title:      title,
		Author:     author,
		TotalPages: pages,
	})
	if err != nil {
		fmt.Printf("Error adding book: %v\n", err)
		return
	}

	fmt.Printf("📗 Added book #%d: %s\n", book.ID, book.Title)
	if book.Author != "" {
		fmt.Printf("  Author: %s\n", book.Author)
	}
	if book.TotalPages > 0 {
		fmt.Printf("  Pages: %d\n", book.TotalPages)
	}
	announceUnlocks(store)
}

func init() {
	addCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	addCmd.Flags().StringP("author", "a", "", "Author name")
	addCmd.Flags().IntP("pages", "p", 0, "Total page count")
}
