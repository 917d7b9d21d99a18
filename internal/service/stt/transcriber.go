// Package stt defines the interface for speech-to-text transcribers.
package stt

import (
	"context"
	"time"
)

// Request carries one audio payload to a transcriber.
type Request struct {
	// Audio is the decoded audio payload.
	Audio []byte

	// FileName is the name presented to the provider (e.g. "recording.webm").
	FileName string

	// MIMEType is the audio content type (e.g. "audio/webm").
	MIMEType string

	// APIKey is the resolved credential for the provider. Providers that
	// authenticate ambiently (e.g. service account files) may ignore it.
	APIKey string

	// Language is an optional hint (e.g. "en"). Empty means unset.
	Language string

	// Timeout bounds the provider call. Zero means the provider default.
	Timeout time.Duration
}

// Result is a completed transcription.
type Result struct {
	// Text is the transcribed text.
	Text string

	// Model identifies the model that produced the text.
	Model string
}

// Transcriber performs a single-shot transcription call against one
// provider (OpenAI, Google, mock). Implementations must be safe for
// concurrent use.
type Transcriber interface {
	// Name returns the provider name (e.g. "openai", "google", "mock").
	Name() string

	// Transcribe sends the audio for transcription and returns the result.
	// The call is bounded by req.Timeout; expiry surfaces as an error like
	// any other provider failure.
	Transcribe(ctx context.Context, req Request) (*Result, error)
}
