// Package logging configures zerolog for the gateway and provides the
// field helpers shared across packages.
package logging

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controls how the process-wide logger is built.
type Config struct {
	Level       string // debug, info, warn, error
	Environment string // console output when "dev"
	Service     string // service field stamped on every line
}

// Init builds the process-wide logger and installs it as the zerolog
// global. Unparseable levels fall back to info.
func Init(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level)); err == nil {
		level = parsed
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	var logger zerolog.Logger
	if cfg.Environment == "dev" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	logger = logger.With().
		Timestamp().
		Str("service", cfg.Service).
		Logger()
	log.Logger = logger
	zerolog.DefaultContextLogger = &log.Logger
	return logger
}

// WithRequest returns a logger with gateway request context.
func WithRequest(method, requestId string) zerolog.Logger {
	return log.With().
		Str("method", method).
		Str("requestId", requestId).
		Logger()
}

// WithProvider derives a provider-tagged logger from the request logger
// carried in ctx, falling back to the global logger outside a request.
func WithProvider(ctx context.Context, provider string) zerolog.Logger {
	return zerolog.Ctx(ctx).With().
		Str("sttProvider", provider).
		Logger()
}

// WithComponent returns a logger with a component tag.
func WithComponent(component string) zerolog.Logger {
	return log.With().
		Str("component", component).
		Logger()
}
