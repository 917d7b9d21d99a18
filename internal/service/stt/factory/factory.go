// Package factory constructs the configured transcription provider.
package factory

import (
	"context"
	"fmt"
	"strings"

	"ai-media-gateway-service/internal/config"
	"ai-media-gateway-service/internal/service/stt"
	"ai-media-gateway-service/internal/service/stt/google"
	"ai-media-gateway-service/internal/service/stt/mock"
	"ai-media-gateway-service/internal/service/stt/openai"
)

// New creates the transcriber selected by cfg.STT.Provider.
// Unknown provider names are a configuration error.
func New(ctx context.Context, cfg *config.Config) (stt.Transcriber, error) {
	switch strings.ToLower(cfg.STT.Provider) {
	case openai.ProviderName:
		return openai.New(openai.Config{
			BaseURL: cfg.STT.OpenAIBaseURL,
			Model:   cfg.STT.OpenAIModel,
			Timeout: cfg.STT.RequestTimeout,
		}), nil
	case google.ProviderName:
		return google.New(ctx, google.Config{
			Model:   cfg.STT.GoogleModel,
			Timeout: cfg.STT.RequestTimeout,
		})
	case mock.ProviderName:
		return mock.New(), nil
	default:
		return nil, fmt.Errorf("unknown STT provider: %s", cfg.STT.Provider)
	}
}
