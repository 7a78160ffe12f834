// horde is a side-scrolling zombie survival game for the terminal.
//
// Usage:
//
//	horde list               - List available levels
//	horde play [level]       - Play a level (default: forest)
//	horde scores [level]     - Show the best recorded runs
//	horde generate [level]   - Print a generated level layout
//	horde serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible levels
//	--score-file <path>   - High score file (default: ~/.horde/data.dat)
//	--db <path>           - Run history database (default: ~/.horde/runs.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/horde/internal/config"
	"github.com/vovakirdan/horde/internal/games/horde"
	"github.com/vovakirdan/horde/internal/score"
)

var (
	flagFPS        int
	flagSeed       int64
	flagScoreFile  string
	flagDBPath     string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
	flagStrict     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "horde",
	Short: "Horde - survive the zombie horde in your terminal",
	Long: `Horde is a side-scrolling survival game. Walk the level, shoot the
zombies that pour in from both edges and grab the health packs and ammo
dropped along the way. Your score grows for every moment you stay alive.

Available commands:
  list      - Show all available levels
  play      - Play a level
  scores    - View the best recorded runs
  generate  - Print a generated level layout
  serve     - Start SSH server for remote play

Examples:
  horde play
  horde play forest --difficulty hard
  horde scores --tui
  horde generate --seed 42
  horde serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		horde.SetConfigPath(flagConfig)
		horde.SetDifficultyPreset(flagDifficulty)
		horde.SetScoreFile(flagScoreFile)
		horde.SetStrictLoad(flagStrict)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagScoreFile, "score-file", "", "High score file (default from config: ~/.horde/data.dat)")
	pf.StringVar(&flagDBPath, "db", "~/.horde/runs.db", "Path to run history database")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagConfig, "config", "", "Path to custom horde config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagStrict, "strict", false, "Refuse to start when the high score file is corrupt")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger at the --log-level threshold.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "horde",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens ~/.horde/horde.log for appending. Play mode logs there
// so log lines do not tear the alt screen.
func openLogFile() (*os.File, error) {
	path, err := config.ExpandHome("~/.horde/horde.log")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadConfig resolves the effective config the same way a level does.
func loadConfig() config.HordeConfig {
	cfg, err := config.LoadHorde(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.DefaultHordeConfig()
	}
	config.ApplyHordePreset(&cfg, config.ParsePreset(flagDifficulty))
	if flagScoreFile != "" {
		cfg.Score.File = flagScoreFile
	}
	return cfg
}

// readHighScore loads the persisted high score the levels compare against.
func readHighScore(cfg config.HordeConfig) (int, error) {
	path, err := config.ExpandHome(cfg.Score.File)
	if err != nil {
		return 0, err
	}
	return score.NewFileStore(path).Load()
}

// levelArg returns the level named on the command line or the default.
func levelArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return horde.LevelID
}
