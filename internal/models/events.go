// Package models defines the data structures for gateway audit events.
package models

// EventTypeMediaTranscribed is the event type for completed transcriptions.
const EventTypeMediaTranscribed = "gateway.media.transcribed"

// MediaTranscribed is published after each successful transcription.
// It carries request metadata only; the audio payload and transcript text
// never leave the request scope.
type MediaTranscribed struct {
	EventType  string `json:"eventType" validate:"required"`
	RequestID  string `json:"requestId" validate:"required"`
	Provider   string `json:"provider" validate:"required"`
	Model      string `json:"model" validate:"required"`
	MIMEType   string `json:"mimeType" validate:"required"`
	AudioBytes int64  `json:"audioBytes" validate:"gte=0"`
	TextLength int    `json:"textLength" validate:"gte=0"`
	DurationMs int64  `json:"durationMs" validate:"gte=0"`
	Timestamp  int64  `json:"timestamp" validate:"required"`
}
