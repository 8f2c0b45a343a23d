package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game of 2048.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.t2048/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5% of new tiles are 4s
  normal - 10% of new tiles are 4s
  hard   - 25% of new tiles are 4s

Examples:
  t2048 play
  t2048 play --difficulty easy
  t2048 play --seed 42
  t2048 play --select
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var flagSelect bool

func init() {
	playCmd.Flags().BoolVarP(&flagSelect, "select", "s", false, "Pick the difficulty from a menu before playing")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	width, height := terminalSize()

	if flagSelect {
		preset, err := tui.RunDifficultySelector(gameCfg.Difficulty, width, height)
		if err != nil {
			return fmt.Errorf("difficulty menu: %w", err)
		}
		if preset == "" {
			return nil
		}
		config.ApplyPreset(&gameCfg, preset)
		logger.Debug("difficulty selected", "difficulty", preset)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	g := game.New(game.WithConfig(gameCfg))
	runErr := tui.Run(g, store, logger, cfg)

	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("could not close scores database", "error", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
