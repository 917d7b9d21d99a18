// Package mock provides a mock transcriber for development and testing
// without provider credentials. Responses are deterministic for a given
// payload so repeated requests yield identical results.
package mock

import (
	"context"
	"fmt"
	"hash/fnv"

	"ai-media-gateway-service/internal/service/stt"
)

// ProviderName is the provider identifier for this client.
const ProviderName = "mock"

// ModelName is the model identifier reported in results.
const ModelName = "mock-v1"

// CannedTexts are the sample transcriptions the mock cycles through.
var CannedTexts = []string{
	"I want to cancel my subscription",
	"Yes please go ahead",
	"Can you help me with my account",
	"I've been waiting for over an hour",
	"Thank you very much",
}

// Client implements stt.Transcriber with canned responses.
type Client struct{}

// New creates a new mock transcriber.
func New() *Client {
	return &Client{}
}

// Name returns the provider name.
func (c *Client) Name() string { return ProviderName }

// Transcribe returns a canned transcription selected by a hash of the
// payload, so identical audio always maps to the same text.
func (c *Client) Transcribe(ctx context.Context, req stt.Request) (*stt.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("mock transcribe: %w", err)
	}

	h := fnv.New32a()
	_, _ = h.Write(req.Audio)
	text := CannedTexts[int(h.Sum32())%len(CannedTexts)]

	return &stt.Result{Text: text, Model: ModelName}, nil
}
