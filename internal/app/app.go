// Package app holds process-wide state for the gateway service.
package app

import (
	"time"

	"github.com/rs/zerolog"

	"ai-media-gateway-service/internal/config"
	"ai-media-gateway-service/internal/observability/logging"
)

// ServiceName is stamped on every log line.
const ServiceName = "ai-media-gateway-service"

// Application owns the logger and startup bookkeeping for the process.
type Application struct {
	StartupTime time.Time
	Logger      zerolog.Logger
	Cfg         *config.Config
}

// New constructs an Application and installs the process-wide logger.
func New(cfg *config.Config) *Application {
	logger := logging.Init(logging.Config{
		Level:       cfg.Observability.LogLevel,
		Environment: cfg.Service.Environment,
		Service:     ServiceName,
	})

	a := &Application{
		Cfg:    cfg,
		Logger: logger,
	}
	a.Logger.Info().
		Str("environment", cfg.Service.Environment).
		Str("logLevel", cfg.Observability.LogLevel).
		Msg("Media gateway application created")
	return a
}

// Start records the startup time before the servers begin accepting traffic.
func (a *Application) Start() error {
	a.StartupTime = time.Now().UTC()
	a.Logger.Info().
		Time("startupTime", a.StartupTime).
		Msg("Media gateway starting")
	return nil
}

// Shutdown performs a best-effort cleanup before process exit.
func (a *Application) Shutdown() {
	a.Logger.Info().
		Dur("uptime", time.Since(a.StartupTime)).
		Msg("Media gateway shutting down")
}
