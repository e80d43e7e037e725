// Package app provides the core application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/law-makers/salesurl/internal/config"
	"github.com/law-makers/salesurl/internal/convert"
)

// Application holds the dependencies of one conversion run.
//
// It is created once at startup by the root command.
// Use Close() to log the end of the run.
type Application struct {
	Config    *config.Config
	Logger    *zerolog.Logger
	Converter *convert.Converter
	startTime time.Time
}

// Options overrides the process streams; zero values mean stdout/stderr.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
}

// New creates and initializes a new Application with all dependencies.
//
// It configures logging from cfg, then builds the converter over the fixed
// input and output paths. Logs go to stderr so stdout carries only the document.
func New(ctx context.Context, cfg *config.Config, opts Options) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	logLevel := zerolog.ErrorLevel // default: only failures unless -v is used
	switch cfg.LogLevel {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	var logWriter io.Writer
	if cfg.JSONLog {
		logWriter = opts.Stderr
	} else {
		logWriter = zerolog.ConsoleWriter{Out: opts.Stderr}
	}

	logger := log.Output(logWriter).With().Timestamp().Logger()

	logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Msg("Logger initialized")

	display := opts.Stdout
	if cfg.Quiet {
		display = io.Discard
	}
	converter := convert.New(cfg.InputPath, cfg.OutputPath, display, logger)
	logger.Debug().
		Str("input", cfg.InputPath).
		Str("output", cfg.OutputPath).
		Msg("Converter initialized")

	return &Application{
		Config:    cfg,
		Logger:    &logger,
		Converter: converter,
		startTime: time.Now(),
	}, nil
}

// Run performs the conversion once.
func (a *Application) Run(ctx context.Context) error {
	if a == nil {
		return fmt.Errorf("application is nil")
	}
	_, err := a.Converter.Convert(ctx)
	return err
}

// Close logs the end of the run.
func (a *Application) Close(ctx context.Context) error {
	a.Logger.Debug().Dur("uptime", time.Since(a.startTime)).Msg("Application shutdown complete")
	return nil
}
