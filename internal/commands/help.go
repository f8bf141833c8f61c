package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for leaflog",
	Long:  `Display detailed help for all leaflog commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
██╗     ███████╗ █████╗ ███████╗██╗      ██████╗  ██████╗
██║     ██╔════╝██╔══██╗██╔════╝██║     ██╔═══██╗██╔════╝
██║     █████╗  ███████║█████╗  ██║     ██║   ██║██║  ███╗
██║     ██╔══╝  ██╔══██║██╔══╝  ██║     ██║   ██║██║   ██║
███████╗███████╗██║  ██║██║     ███████╗╚██████╔╝╚██████╔╝
╚══════╝╚══════╝╚═╝  ╚═╝╚═╝     ╚══════╝ ╚═════╝  ╚═════╝

leaflog - CLI Reading Habit Tracker

COMMANDS:

  add <book>              Add a book with smart parsing
    -a, --author          Author name
    -p, --pages           Total page count
    -i, --interactive     Interactive TUI form

    Smart syntax:
      by Author     Author name (last ' by ' wins)
      p:320         Page count

    Example:
      leaflog add "Dune by Frank Herbert p:412"

  ls                      Browse your books with interactive UI
    --no-ui               Simple text output
    --json                JSON output

  search <query>          Search books by title or author
  edit <id>               Edit title/author/pages
  progress <id> <+n|n>    Move the bookmark (clamped to the page count)
  finish <id>             Mark a book finished
  rm <id>                 Remove a book (sessions are kept as Unassigned)

  log [id]                Quick-log a session
    -m, --minutes         Minutes read
    -p, --pages           Pages read
    --mood                Mood after reading
    --on                  Backdate: today, yesterday, dd/mm/yyyy, X days ago

  start [id]              Live reading timer (pause/resume aware)
    --ppm                 Pages-per-minute estimate used on stop
    --no-ui               Start without the interactive timer
  stop                    Stop the timer and record the session
    --pages               Actual pages read (overrides the estimate)
    --discard             Abandon without recording
  status                  Show the running timer

  mood add <kind>         Log a mood: calm, focused, sleepy, excited, neutral
  mood ls                 List moods
  mood clear --yes        Erase the mood history

  stats                   Totals, streak, weekly window, mood aggregates
  achievements            Locked/unlocked achievements and points
  reset --yes             Lock all achievements again
  export <csv|json>       Export the history

  help                    Show this help
  version                 Show version information

Timer keys: space pause/resume · s stop & save · esc/q exit (keep running)

`)
}
