package main

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

var flagMoves string

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a move sequence without the UI",
	Long: `Start a game from --seed and apply a sequence of moves, printing the
board after each one. The same seed and moves always give the same game.

Moves are letters U, D, L, R (case-insensitive), or words separated by
spaces or commas: "up, left, down".

Examples:
  t2048 replay --seed 42 --moves LLURDR
  t2048 replay --seed 7 --moves "up left left down" --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runReplayCmd,
}

func init() {
	replayCmd.Flags().StringVarP(&flagMoves, "moves", "m", "", "Moves to apply, e.g. ULDR")
}

func runReplayCmd(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	dirs, err := parseMoves(flagMoves)
	if err != nil {
		return err
	}

	logger.Debug("replaying", "seed", flagSeed, "moves", len(dirs))
	return replay(cmd.OutOrStdout(), flagSeed, gameCfg.Spawn.FourProbability, dirs)
}

// parseMoves accepts letters ("ULDR") or separated words ("up,left").
func parseMoves(s string) ([]engine.Direction, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	var dirs []engine.Direction
	for _, field := range fields {
		if d, err := engine.ParseDirection(field); err == nil {
			dirs = append(dirs, d)
			continue
		}
		for _, r := range field {
			d, err := engine.ParseDirection(string(r))
			if err != nil {
				return nil, fmt.Errorf("move %q: %w", field, err)
			}
			dirs = append(dirs, d)
		}
	}
	return dirs, nil
}

// replay plays dirs from a fresh game and writes every step to w.
func replay(w io.Writer, seed int64, fourProbability float64, dirs []engine.Direction) error {
	ctrl := engine.NewController(engine.NewSource(seed), engine.WithFourProbability(fourProbability))
	state := ctrl.NewGame()

	fmt.Fprintf(w, "Seed %d\n%s\n", seed, state.Board())

	for i, d := range dirs {
		next := ctrl.ApplyMove(state, d)

		switch {
		case state.Terminal():
			fmt.Fprintf(w, "\n#%d %s: game over, ignored\n", i+1, d)
		case next.Moves() == state.Moves():
			fmt.Fprintf(w, "\n#%d %s: no change\n", i+1, d)
		default:
			fmt.Fprintf(w, "\n#%d %s: score %d\n%s\n", i+1, d, next.Score(), next.Board())
		}
		state = next
	}

	fmt.Fprintf(w, "\nFinal score: %d  Max tile: %d  Moves: %d  Status: %s\n",
		state.Score(), state.MaxTile(), state.Moves(), state.Status())
	return nil
}
