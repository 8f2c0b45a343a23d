package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded games.

Examples:
  t2048 scores
  t2048 scores --limit 25
  t2048 scores --interactive
  t2048 scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", storage.DefaultLimit, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		stats, err := store.Stats()
		if err != nil {
			return err
		}
		if err := store.ClearScores(); err != nil {
			return err
		}
		logger.Info("scores cleared", "count", stats.GamesCount)
		fmt.Fprintf(out, "Cleared %d scores.\n", stats.GamesCount)
		return nil
	}

	if flagInteractive {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			width, height := terminalSize()
			return tui.RunScoreboard(store, width, height)
		}
		logger.Warn("stdout is not a terminal, printing scores as text")
	}

	return printScores(out, store, flagLimit)
}

// printScores writes the top scores as a plain-text table.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - 2048")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 't2048 play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-7s  %s\n", "Rank", "Score", "Tile", "Moves", "Mode", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-7s  %s\n", "----", "-----", "----", "-----", "----", "----")

	for i, e := range scores {
		mode := e.Difficulty
		if mode == "" {
			mode = "-"
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-6d  %-6d  %-7s  %s\n",
			i+1, e.Score, e.MaxTile, e.Moves, mode, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Best tile: %d  Games: %d\n", stats.HighScore, stats.BestTile, stats.GamesCount)
	return nil
}
