package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/horde/internal/config"
	"github.com/vovakirdan/horde/internal/core"
	"github.com/vovakirdan/horde/internal/games/horde"
	"github.com/vovakirdan/horde/internal/platform/tui"
	"github.com/vovakirdan/horde/internal/registry"
	"github.com/vovakirdan/horde/internal/score"
	"github.com/vovakirdan/horde/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level (forest by default).

Controls:
  Left/Right, A/D  - Walk
  Space/Up/W       - Jump
  Z/F              - Shoot
  R                - Reload (restart after game over)
  P/Esc            - Pause
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot

Difficulty options:
  easy   - More health and ammo, gentle spawn rate
  normal - Default loadout, spawn rate starts 30% harder
  hard   - Less health and ammo, spawn rate starts 70% harder
  fixed  - No difficulty adjustment, config values as written

Examples:
  horde play
  horde play forest --difficulty easy
  horde play --seed 42 --fps 30
  horde play --score-file ./data.dat --strict`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	levelID := levelArg(args)

	if !registry.Exists(levelID) {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'horde list' to see available levels.")
		os.Exit(1)
	}

	if err := checkScoreFile(loadConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(io.Discard)
	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	} else {
		defer logFile.Close()
		logger = newLogger(logFile)
	}
	horde.SetLogger(logger)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating level: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// The level still plays; the run just is not recorded.
		store = nil
	}

	runErr := tui.Run(game, store, cfg, playerName(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}

	printSummary(game)
}

// checkScoreFile reads the high score file before the alt screen opens so
// a corrupt file is reported on the plain terminal.
func checkScoreFile(cfg config.HordeConfig) error {
	_, err := readHighScore(cfg)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, score.ErrCorrupt) && !(flagStrict || cfg.Score.StrictLoad):
		fmt.Fprintf(os.Stderr, "Warning: %v (starting from a high score of 0)\n", err)
		return nil
	default:
		return err
	}
}

func printSummary(game registry.Game) {
	st := game.State()
	if st.Ticks == 0 {
		return
	}
	fmt.Printf("Score: %d  High score: %d\n", st.Score, st.HighScore)
	if st.NewHigh {
		fmt.Println("New high score!")
	}
}

// playerName names local runs after the OS user.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
