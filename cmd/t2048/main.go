// t2048 is the 2048 sliding-tile puzzle in the terminal.
//
// Usage:
//
//	t2048                    - Play a game (same as "t2048 play")
//	t2048 play               - Play a game
//	t2048 scores             - Show high scores
//	t2048 replay             - Replay a move sequence headlessly
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.t2048/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-file <path>     - Append logs to a file
//	--debug               - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide all tiles in one direction; equal neighbours merge into their sum.
After every move that changes the board a new 2 or 4 appears.
The game ends when no move can change the board.

Available commands:
  play     - Play a game (default)
  scores   - View high scores
  replay   - Replay a move sequence without the UI

Examples:
  t2048
  t2048 play --difficulty hard
  t2048 scores --limit 20
  t2048 replay --seed 42 --moves LLURDR`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	flags.StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	flags.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}
