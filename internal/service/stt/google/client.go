// Package google provides a Google Cloud Speech-to-Text transcriber.
package google

import (
	"context"
	"fmt"
	"strings"
	"time"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/grpc/status"

	"ai-media-gateway-service/internal/service/stt"
)

// ProviderName is the provider identifier for this client.
const ProviderName = "google"

const (
	defaultModel    = "latest_long"
	defaultLanguage = "en-US"
	defaultTimeout  = 60 * time.Second
)

// Config holds configuration for the Google Speech transcriber.
type Config struct {
	Model   string
	Timeout time.Duration
}

// Client implements stt.Transcriber using Google Cloud Speech-to-Text.
// Authentication is ambient: the GOOGLE_APPLICATION_CREDENTIALS environment
// variable must point at a service account file.
type Client struct {
	cfg    Config
	client *speech.Client
}

// New creates a new Google Speech transcriber.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	c, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create speech client: %w", err)
	}
	return &Client{cfg: cfg, client: c}, nil
}

// Name returns the provider name.
func (c *Client) Name() string { return ProviderName }

// Transcribe performs a synchronous recognition call and concatenates the
// top alternative of each result.
func (c *Client) Transcribe(ctx context.Context, req stt.Request) (*stt.Result, error) {
	timeout := req.Timeout
	if timeout == 0 {
		timeout = c.cfg.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	language := req.Language
	if language == "" {
		language = defaultLanguage
	}

	resp, err := c.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:     encodingFor(req.MIMEType),
			LanguageCode: language,
			Model:        c.cfg.Model,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: req.Audio},
		},
	})
	if err != nil {
		if st, ok := status.FromError(err); ok {
			return nil, fmt.Errorf("speech recognize: %s: %s", st.Code(), st.Message())
		}
		return nil, fmt.Errorf("speech recognize: %w", err)
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		parts = append(parts, result.Alternatives[0].Transcript)
	}

	return &stt.Result{
		Text:  strings.Join(parts, " "),
		Model: c.cfg.Model,
	}, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// encodingFor maps the request MIME type onto a recognition encoding.
// Unknown types are left unspecified and the service sniffs the header.
func encodingFor(mimeType string) speechpb.RecognitionConfig_AudioEncoding {
	switch strings.ToLower(strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0])) {
	case "audio/webm":
		return speechpb.RecognitionConfig_WEBM_OPUS
	case "audio/ogg", "audio/opus":
		return speechpb.RecognitionConfig_OGG_OPUS
	case "audio/wav", "audio/x-wav", "audio/wave":
		return speechpb.RecognitionConfig_LINEAR16
	case "audio/flac":
		return speechpb.RecognitionConfig_FLAC
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED
	}
}
