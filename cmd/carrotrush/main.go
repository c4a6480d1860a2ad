// carrotrush is a terminal arcade game: steer the rabbit, catch carrots,
// dodge the falling poop.
//
// Usage:
//
//	carrotrush list              - List the game variants
//	carrotrush play [variant]    - Play a variant (default: rush)
//	carrotrush menu              - Pick a variant interactively
//	carrotrush serve             - Serve the game over SSH and the leaderboard over HTTP
//	carrotrush scores [variant]  - Show high scores
//	carrotrush replay <run-id>   - Re-simulate a saved run and check its score
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.carrotrush/scores.db)
//	--config <path>       - Load a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/carrot-rush/internal/config"
	"github.com/vovakirdan/carrot-rush/internal/core"
	"github.com/vovakirdan/carrot-rush/internal/games/rush"
	"github.com/vovakirdan/carrot-rush/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logger writes to --log-file when set, stderr otherwise.
var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "carrotrush"})

// logOut is the log file, nil when logging to stderr.
var logOut *os.File

func main() {
	err := rootCmd.Execute()
	if logOut != nil {
		logOut.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "carrotrush",
	Short: "Carrot Rush - dodge the poop, catch the carrots",
	Long: `Carrot Rush is a terminal arcade game. Steer the rabbit left and right,
catch falling carrots for points, grab cookies for spare lives and keep
out of the way of the poop. Reach the victory score to win the run.

Examples:
  carrotrush play
  carrotrush play rush_timed --difficulty hard
  carrotrush menu
  carrotrush serve --ssh :2222 --http :8080
  carrotrush scores rush
  carrotrush replay 0b6f9c0e-1b7e-4c11-9d0a-3a1f1f2b8f11`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := setupLogger(); err != nil {
			return err
		}
		if flagConfig != "" {
			if _, err := config.LoadRush(flagConfig); err != nil {
				return err
			}
		}
		rush.SetConfigPath(flagConfig)
		rush.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.carrotrush/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(listCmd, playCmd, menuCmd, serveCmd, scoresCmd, replayCmd)
}

func setupLogger() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logOut = f
		logger.SetOutput(f)
	}
	return nil
}

// gameLogger is the logger handed to full-screen sessions. Without a log
// file it discards everything so log lines cannot tear the screen.
func gameLogger() *log.Logger {
	if logOut == nil {
		return log.New(io.Discard)
	}
	return logger
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("Could not open scores database, runs will not be saved", "error", err)
		return nil
	}
	return store
}
