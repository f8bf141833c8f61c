package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"leaflog/internal/db"
)

var achievementsCmd = &cobra.Command{
	Use:     "achievements",
	Aliases: []string{"trophies"},
	Short:   "Show achievements",
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		all, err := store.GetAchievements()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		unlocked := 0
		for _, a := range all {
			if a.IsUnlocked {
				unlocked++
			}
		}
		points, _ := store.UnlockedPoints()
		fmt.Printf("🏆 Achievements: %d/%d unlocked, %d points\n\n", unlocked, len(all), points)

		onlyUnlocked, _ := cmd.Flags().GetBool("unlocked")
		for _, a := range all {
			if onlyUnlocked && !a.IsUnlocked {
				continue
			}
			if a.IsUnlocked {
				when := ""
				if a.UnlockedAt != nil {
					when = a.UnlockedAt.Format("Jan 02, 2006")
				}
				fmt.Printf("  %s %s (+%d pts) — %s  [%s]\n", a.Icon, a.Title, a.Points, a.Description, when)
			} else {
				fmt.Printf("  🔒 %s (+%d pts) — %s\n", a.Title, a.Points, a.Description)
			}
		}
	}),
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all achievements to locked",
	Long: `Flip every achievement back to its locked state. History is kept, so
the next logged activity may immediately unlock some again.`,
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Println("This locks every achievement again. Re-run with --yes to confirm.")
			return
		}

		if err := store.ResetAchievements(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("🔁 All achievements reset to locked.")
	}),
}

func init() {
	achievementsCmd.Flags().Bool("unlocked", false, "Show only unlocked achievements")
	resetCmd.Flags().Bool("yes", false, "Skip confirmation")
}
