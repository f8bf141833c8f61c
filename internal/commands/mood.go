package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"leaflog/internal/db"
	"leaflog/internal/models"
	"leaflog/internal/parser"
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Log and review reading moods",
}

var moodAddCmd = &cobra.Command{
	Use:   "add <kind>",
	Short: "Log a mood entry",
	Long: `Log how reading feels right now. Kinds: calm, focused, sleepy,
excited, neutral.`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		note, _ := cmd.Flags().GetString("note")

		date := time.Now()
		if on, _ := cmd.Flags().GetString("on"); on != "" {
			when, err := parser.ParseWhen(on, date)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			date = when.Add(20 * time.Hour)
		}

		entry, err := store.AddMood(models.MoodKind(strings.ToLower(args[0])), note, date)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("💭 Logged mood: %s (%s)\n", entry.Kind, entry.Date.Format("Jan 02 15:04"))
		if tags := entry.Kind.Profile().Tags; len(tags) > 0 {
			fmt.Printf("  Suggested shelves: %s\n", strings.Join(tags, ", "))
		}
	}),
}

var moodListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List logged moods",
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		moods, err := store.GetMoods()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(moods) == 0 {
			fmt.Println("No moods logged yet.")
			return
		}

		for _, m := range moods {
			line := fmt.Sprintf("%s  %-8s", m.Date.Format("Jan 02 15:04"), m.Kind)
			if m.Note != "" {
				line += "  " + m.Note
			}
			fmt.Println(line)
		}
	}),
}

var moodClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase the whole mood history",
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Println("This erases every mood entry. Re-run with --yes to confirm.")
			return
		}

		n, err := store.ClearMoods()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🧹 Cleared %d mood entries.\n", n)
	}),
}

func init() {
	moodAddCmd.Flags().String("note", "", "Free-text note")
	moodAddCmd.Flags().String("on", "", "Day it happened: today, yesterday, dd/mm/yyyy, X days ago")
	moodClearCmd.Flags().Bool("yes", false, "Skip confirmation")

	moodCmd.AddCommand(moodAddCmd)
	moodCmd.AddCommand(moodListCmd)
	moodCmd.AddCommand(moodClearCmd)
}
