package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/horde/internal/platform/tui"
	"github.com/vovakirdan/horde/internal/registry"
	"github.com/vovakirdan/horde/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show the best recorded runs",
	Long: `Display the best runs recorded for a level, plus the high score file.

Examples:
  horde scores
  horde scores forest --limit 20
  horde scores --tui
  horde scores forest --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the runs interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded runs of the level")
}

func runScores(_ *cobra.Command, args []string) {
	levelID := levelArg(args)

	if !registry.Exists(levelID) {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'horde list' to see available levels.")
		os.Exit(1)
	}

	game, err := registry.Create(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating level: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, levelID, title, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		}
		return
	}

	if flagScoresClear {
		if err := store.ClearRuns(levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Printf("Cleared runs for %s.\n", title)
		return
	}

	runs, err := store.TopRuns(levelID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if high, err := readHighScore(loadConfig()); err == nil {
		fmt.Printf("High score file: %d\n", high)
	} else {
		fmt.Printf("High score file: unreadable (%v)\n", err)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'horde play %s' to record the first run!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-7s  %-16s  %-6s  %s\n", "Rank", "Score", "Player", "Time", "Date")
	fmt.Printf("  %-4s  %-7s  %-16s  %-6s  %s\n", "----", "-----", "------", "----", "----")
	for i, r := range runs {
		mark := ""
		if r.NewHigh {
			mark = " *"
		}
		secs := int(r.Duration() / time.Second)
		fmt.Printf("  %-4d  %-7d  %-16s  %d:%02d    %s%s\n",
			i+1, r.Score, r.Player, secs/60, secs%60, r.CreatedAt.Format("2006-01-02 15:04"), mark)
	}

	if stats, err := store.Stats(levelID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f\n", stats.Runs, stats.BestScore, stats.AvgScore)
	}
}
