// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is an immutable snapshot of service configuration.
type Config struct {
	Service       ServiceConfig
	STT           STTConfig
	Limits        LimitsConfig
	Kafka         KafkaConfig
	Observability ObservabilityConfig
}

// ServiceConfig holds process identity and listener settings.
type ServiceConfig struct {
	Principal   string
	HTTPPort    string
	ObsPort     string
	Environment string
}

// STTConfig holds transcription provider settings.
type STTConfig struct {
	// Provider selects the transcriber: "openai", "google", or "mock".
	Provider string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	GoogleModel string

	// RequestTimeout bounds each provider call.
	RequestTimeout time.Duration
}

// LimitsConfig holds request payload guardrails.
type LimitsConfig struct {
	// MaxAudioBytes is the maximum decoded audio payload accepted per
	// request. Oversized payloads are rejected, not truncated.
	MaxAudioBytes int64
}

// KafkaConfig holds audit event publishing settings.
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// ObservabilityConfig holds logging and metrics settings.
type ObservabilityConfig struct {
	LogLevel string
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		Service: ServiceConfig{
			Principal:   envOrDefault("SERVICE_PRINCIPAL", "svc-media-gateway"),
			HTTPPort:    envOrDefault("HTTP_PORT", "8080"),
			ObsPort:     envOrDefault("OBS_PORT", "9090"),
			Environment: envOrDefault("ENV", "prod"),
		},
		STT: STTConfig{
			Provider:       envOrDefault("STT_PROVIDER", "openai"),
			OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
			OpenAIBaseURL:  envOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			OpenAIModel:    envOrDefault("OPENAI_STT_MODEL", "whisper-1"),
			GoogleModel:    envOrDefault("GOOGLE_STT_MODEL", "latest_long"),
			RequestTimeout: envDuration("STT_REQUEST_TIMEOUT", 60*time.Second),
		},
		Limits: LimitsConfig{
			MaxAudioBytes: envInt64("MAX_AUDIO_BYTES", 25*1024*1024),
		},
		Kafka: KafkaConfig{
			Enabled: envBool("KAFKA_ENABLED", false),
			Brokers: envList("KAFKA_BROKERS"),
			Topic:   envOrDefault("KAFKA_TOPIC", "gateway.media.transcribed"),
		},
		Observability: ObservabilityConfig{
			LogLevel: envOrDefault("LOG_LEVEL", "info"),
		},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
