package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	httpapi "ai-media-gateway-service/internal/api/http"
	"ai-media-gateway-service/internal/app"
	"ai-media-gateway-service/internal/config"
	"ai-media-gateway-service/internal/credentials"
	"ai-media-gateway-service/internal/events"
	"ai-media-gateway-service/internal/observability"
	"ai-media-gateway-service/internal/rpc"
	"ai-media-gateway-service/internal/service/media"
	"ai-media-gateway-service/internal/service/stt/factory"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	application := app.New(cfg)
	if err := application.Start(); err != nil {
		log.Fatal().Err(err).Msg("Application startup failed")
	}

	ctx := context.Background()

	transcriber, err := factory.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to construct STT provider")
	}

	publisher := events.New(&events.Config{
		Enabled:   cfg.Kafka.Enabled,
		Brokers:   cfg.Kafka.Brokers,
		Topic:     cfg.Kafka.Topic,
		Principal: cfg.Service.Principal,
	})
	defer publisher.Close()

	resolver := credentials.NewResolver(cfg)

	registry := rpc.NewRegistry()
	registry.Register(media.MethodTranscribe, media.NewTranscribeHandler(
		transcriber,
		resolver,
		publisher,
		cfg.Limits.MaxAudioBytes,
		cfg.STT.RequestTimeout,
	))
	registry.Register("system.ping", rpc.HandlerFunc(
		func(ctx context.Context, params rpc.Params) (any, *rpc.Error) {
			return map[string]any{
				"status":    "ok",
				"principal": cfg.Service.Principal,
				"methods":   registry.Methods(),
			}, nil
		}))

	dispatcher := rpc.NewDispatcher(registry)

	obsServer := observability.NewServer(":" + cfg.Service.ObsPort)
	obsServer.Start()

	server := &http.Server{
		Addr:         ":" + cfg.Service.HTTPPort,
		Handler:      httpapi.NewRouter(dispatcher),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Media gateway listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP serve failed")
		}
	}()
	obsServer.SetReady()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("Shutting down media gateway")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP shutdown error")
	}
	if err := obsServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Observability shutdown error")
	}
	application.Shutdown()
}
