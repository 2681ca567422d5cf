package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvlwalk/fixture"
	"github.com/katalvlaran/lvlwalk/internal/ctxlog"
)

// App runs one configured algorithm. Results go to outW, logs to the
// logger built from the config.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp builds an App with its own logger writing to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// Run loads the fixtures, executes the algorithm and prints its result
// as a single line.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	set, err := fixture.Load(ctx, a.config.FixturePath)
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}

	var result string
	if IsGridAlgorithm(a.config.Algorithm) {
		result, err = a.runGrid(ctx, set)
	} else {
		result, err = a.runGraph(ctx, set)
	}
	if err != nil {
		return err
	}
	a.logger.Debug("Algorithm finished.", "algorithm", a.config.Algorithm, "variant", a.config.Variant)

	_, err = fmt.Fprintln(a.outW, result)
	return err
}
