package mock

import (
	"context"
	"testing"

	"ai-media-gateway-service/internal/service/stt"
)

func reqFor(audio []byte) stt.Request {
	return stt.Request{Audio: audio, FileName: "recording.webm", MIMEType: "audio/webm"}
}

func TestTranscribe_Deterministic(t *testing.T) {
	c := New()

	first, err := c.Transcribe(context.Background(), reqFor([]byte("same payload")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.Transcribe(context.Background(), reqFor([]byte("same payload")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Text != second.Text {
		t.Errorf("expected identical text for identical audio, got %q vs %q", first.Text, second.Text)
	}
	if first.Model != ModelName {
		t.Errorf("expected model %q, got %q", ModelName, first.Model)
	}
}

func TestTranscribe_CanceledContext(t *testing.T) {
	c := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Transcribe(ctx, reqFor([]byte("abc"))); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestTranscribe_TextFromCannedSet(t *testing.T) {
	c := New()

	result, err := c.Transcribe(context.Background(), reqFor([]byte("anything")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, text := range CannedTexts {
		if result.Text == text {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("text %q not in canned set", result.Text)
	}
}
