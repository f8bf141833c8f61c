package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"leaflog/internal/config"
	"leaflog/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "leaflog",
	Short: "A CLI reading-habit tracker",
	Long: `leaflog is a command-line tool for tracking your reading habit.
Log books and reading sessions, run a live timer, record your mood,
and unlock achievements as the pages pile up.`,
}

// openStore loads the config and opens the database.
func openStore() (*db.Store, error) {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	opts := db.Options{EvalWindow: cfg.EvalWindow()}
	if cfg.DataDir != "" {
		opts.Path = filepath.Join(cfg.DataDir, "leaflog.db")
	}
	return db.Open(opts)
}

// loadedConfig returns the parsed config for commands that need defaults
// beyond the store (e.g. the timer's pages-per-minute rate).
func loadedConfig() config.Config {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return config.Default()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Default()
	}
	return cfg
}

// withStore wraps a command function: open the store, run, then flush the
// achievement evaluator and announce anything this invocation unlocked.
func withStore(fn func(*cobra.Command, []string, *db.Store)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		fn(cmd, args, store)
		announceUnlocks(store)
	}
}

// announceUnlocks forces the pending evaluation pass and prints the
// newly-unlocked achievements.
func announceUnlocks(store *db.Store) {
	newly, err := store.FlushAchievements()
	if err != nil {
		fmt.Printf("Error evaluating achievements: %v\n", err)
		return
	}
	for _, a := range newly {
		fmt.Printf("\n%s Achievement unlocked: %s · %s (+%d pts)\n", a.Icon, a.Title, a.Description, a.Points)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("leaflog %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(finishCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(moodCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
