package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// newLogger builds the CLI logger. Logs go to --log-file when set and to
// fallback otherwise. The returned close func is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	w := fallback
	closeFn := func() error { return nil }

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig loads the YAML config and applies --difficulty on top.
func loadGameConfig(logger *log.Logger) (config.T2048Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.T2048Config{}, err
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !preset.Known() {
			return config.T2048Config{}, fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)",
				config.ErrInvalidConfig, flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	logger.Debug("config loaded",
		"difficulty", cfg.Difficulty,
		"four_probability", cfg.Spawn.FourProbability,
	)
	return cfg, nil
}
