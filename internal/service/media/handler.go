// Package media provides the gateway method handlers for media requests.
// The transcription handler validates the incoming parameter bag, resolves
// the provider credential, makes a single bounded provider call, and emits
// exactly one structured response per request.
package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"ai-media-gateway-service/internal/credentials"
	"ai-media-gateway-service/internal/events"
	"ai-media-gateway-service/internal/models"
	"ai-media-gateway-service/internal/observability/logging"
	"ai-media-gateway-service/internal/observability/metrics"
	"ai-media-gateway-service/internal/rpc"
	"ai-media-gateway-service/internal/schema"
	"ai-media-gateway-service/internal/service/stt"
)

// MethodTranscribe is the gateway method name for audio transcription.
const MethodTranscribe = "media.transcribe"

const (
	defaultMIMEType = "audio/webm"
	defaultFileName = "recording.webm"
)

// TranscribeResult is the success payload of media.transcribe.
type TranscribeResult struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

// TranscribeHandler implements media.transcribe.
// It holds no per-request state and is safe for concurrent invocations.
type TranscribeHandler struct {
	transcriber stt.Transcriber
	resolver    credentials.Resolver
	publisher   *events.Publisher
	validator   *schema.Validator

	maxAudioBytes int64
	callTimeout   time.Duration
	metrics       *metrics.Metrics
}

// NewTranscribeHandler creates the transcription method handler.
func NewTranscribeHandler(
	transcriber stt.Transcriber,
	resolver credentials.Resolver,
	publisher *events.Publisher,
	maxAudioBytes int64,
	callTimeout time.Duration,
) *TranscribeHandler {
	return &TranscribeHandler{
		transcriber:   transcriber,
		resolver:      resolver,
		publisher:     publisher,
		validator:     schema.New(),
		maxAudioBytes: maxAudioBytes,
		callTimeout:   callTimeout,
		metrics:       metrics.DefaultMetrics,
	}
}

// Handle validates the request, resolves the provider credential, and
// performs a single transcription call. Validation order matters: the
// first failure wins and nothing downstream is touched.
func (h *TranscribeHandler) Handle(ctx context.Context, params rpc.Params) (any, *rpc.Error) {
	audio, ok := params.String("audio")
	if !ok || audio == "" {
		return nil, rpc.InvalidRequest("requires base64-encoded audio")
	}

	mimeType := params.StringOr("mime", defaultMIMEType)
	fileName := params.StringOr("fileName", defaultFileName)
	language, _ := params.TrimmedString("language")

	buf, err := base64.StdEncoding.DecodeString(audio)
	if err != nil {
		return nil, rpc.InvalidRequest("Invalid base64 audio data")
	}

	if h.maxAudioBytes > 0 && int64(len(buf)) > h.maxAudioBytes {
		h.metrics.RecordAudioOversized()
		return nil, rpc.InvalidRequest(fmt.Sprintf(
			"audio exceeds maximum size of %d bytes", h.maxAudioBytes))
	}
	h.metrics.RecordAudioAccepted(len(buf))

	provider := h.transcriber.Name()
	logger := logging.WithProvider(ctx, provider)

	apiKey, configured := h.resolver.APIKey(provider)
	if !configured {
		logger.Warn().Msg("No credential for provider")
		return nil, rpc.Unavailable("No API key configured").
			WithDetail("reason", rpc.ReasonMissingCredential).
			WithDetail("provider", provider)
	}

	start := time.Now()
	result, err := h.transcriber.Transcribe(ctx, stt.Request{
		Audio:    buf,
		FileName: fileName,
		MIMEType: mimeType,
		APIKey:   apiKey,
		Language: language,
		Timeout:  h.callTimeout,
	})
	duration := time.Since(start)
	h.metrics.RecordProviderCall(provider, err, duration.Seconds())

	if err != nil {
		logger.Warn().Err(err).Dur("duration", duration).Msg("Provider call failed")
		return nil, rpc.Unavailablef("Transcription failed: %v", err).
			WithDetail("reason", rpc.ReasonProviderError).
			WithDetail("provider", provider)
	}

	h.auditSuccess(ctx, provider, mimeType, result, int64(len(buf)), duration)

	return &TranscribeResult{Text: result.Text, Model: result.Model}, nil
}

// auditSuccess publishes the completion event. Publish problems are logged
// and never affect the response already owed to the caller.
func (h *TranscribeHandler) auditSuccess(ctx context.Context, provider, mimeType string, result *stt.Result, audioBytes int64, duration time.Duration) {
	if h.publisher == nil {
		return
	}

	ev := models.MediaTranscribed{
		EventType:  models.EventTypeMediaTranscribed,
		RequestID:  uuid.NewString(),
		Provider:   provider,
		Model:      result.Model,
		MIMEType:   mimeType,
		AudioBytes: audioBytes,
		TextLength: len(result.Text),
		DurationMs: duration.Milliseconds(),
		Timestamp:  time.Now().UnixMilli(),
	}

	if err := h.validator.Validate(ev); err != nil {
		log.Error().Err(err).Msg("Transcription event failed schema validation")
		return
	}
	if err := h.publisher.Publish(ctx, models.EventTypeMediaTranscribed, ev.RequestID, ev); err != nil {
		log.Warn().Err(err).Msg("Failed to publish transcription event")
	}
}
