package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ai-media-gateway-service/internal/events"
	"ai-media-gateway-service/internal/rpc"
	"ai-media-gateway-service/internal/service/stt"
)

// stubTranscriber implements stt.Transcriber and records invocations.
type stubTranscriber struct {
	result *stt.Result
	err    error
	calls  []stt.Request
}

func (s *stubTranscriber) Name() string { return "stub" }

func (s *stubTranscriber) Transcribe(ctx context.Context, req stt.Request) (*stt.Result, error) {
	s.calls = append(s.calls, req)
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

// stubResolver implements credentials.Resolver and records lookups.
type stubResolver struct {
	key     string
	ok      bool
	lookups int
}

func (s *stubResolver) APIKey(provider string) (string, bool) {
	s.lookups++
	return s.key, s.ok
}

func newHandler(tr *stubTranscriber, res *stubResolver, maxBytes int64) *TranscribeHandler {
	publisher := events.New(&events.Config{Enabled: false})
	return NewTranscribeHandler(tr, res, publisher, maxBytes, 60*time.Second)
}

func TestTranscribe_MissingAudio(t *testing.T) {
	tests := []struct {
		name   string
		params rpc.Params
	}{
		{"absent", rpc.Params{}},
		{"null", rpc.Params{"audio": nil}},
		{"empty string", rpc.Params{"audio": ""}},
		{"not a string", rpc.Params{"audio": 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &stubTranscriber{result: &stt.Result{Text: "x", Model: "m"}}
			res := &stubResolver{key: "sk-test", ok: true}
			handler := newHandler(tr, res, 1<<20)

			result, herr := handler.Handle(context.Background(), tt.params)

			require.Nil(t, result)
			require.NotNil(t, herr)
			require.Equal(t, rpc.CodeInvalidRequest, herr.Code)
			require.Contains(t, herr.Message, "base64-encoded audio")
			require.Zero(t, res.lookups, "resolver must not be consulted")
			require.Empty(t, tr.calls, "transcriber must not be called")
		})
	}
}

func TestTranscribe_InvalidBase64(t *testing.T) {
	tr := &stubTranscriber{result: &stt.Result{Text: "x", Model: "m"}}
	res := &stubResolver{key: "sk-test", ok: true}
	handler := newHandler(tr, res, 1<<20)

	_, herr := handler.Handle(context.Background(), rpc.Params{"audio": "!!not-base64!!"})

	require.NotNil(t, herr)
	require.Equal(t, rpc.CodeInvalidRequest, herr.Code)
	require.Equal(t, "Invalid base64 audio data", herr.Message)
	require.Zero(t, res.lookups)
	require.Empty(t, tr.calls)
}

func TestTranscribe_SizeBoundary(t *testing.T) {
	const limit = 90 // decodes cleanly from base64 without padding waste

	tr := &stubTranscriber{result: &stt.Result{Text: "x", Model: "m"}}
	res := &stubResolver{key: "sk-test", ok: true}
	handler := newHandler(tr, res, limit)

	// Exactly at the limit: accepted.
	atLimit := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0xAB}, limit))
	_, herr := handler.Handle(context.Background(), rpc.Params{"audio": atLimit})
	require.Nil(t, herr)
	require.Len(t, tr.calls, 1)

	// One byte over: rejected before any downstream call.
	overLimit := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0xAB}, limit+1))
	_, herr = handler.Handle(context.Background(), rpc.Params{"audio": overLimit})
	require.NotNil(t, herr)
	require.Equal(t, rpc.CodeInvalidRequest, herr.Code)
	require.Contains(t, herr.Message, "90 bytes")
	require.Len(t, tr.calls, 1, "oversized request must not reach the transcriber")
}

func TestTranscribe_MissingCredential(t *testing.T) {
	tr := &stubTranscriber{result: &stt.Result{Text: "x", Model: "m"}}
	res := &stubResolver{ok: false}
	handler := newHandler(tr, res, 1<<20)

	_, herr := handler.Handle(context.Background(), rpc.Params{
		"audio": base64.StdEncoding.EncodeToString([]byte("abc")),
	})

	require.NotNil(t, herr)
	require.Equal(t, rpc.CodeUnavailable, herr.Code)
	require.Equal(t, "No API key configured", herr.Message)
	require.Equal(t, rpc.ReasonMissingCredential, herr.Details["reason"])
	require.Empty(t, tr.calls, "transcriber must not be called without a credential")
}

func TestTranscribe_ProviderFailure(t *testing.T) {
	tr := &stubTranscriber{err: errors.New("connection reset by provider")}
	res := &stubResolver{key: "sk-test", ok: true}
	handler := newHandler(tr, res, 1<<20)

	var herr *rpc.Error
	require.NotPanics(t, func() {
		_, herr = handler.Handle(context.Background(), rpc.Params{
			"audio": base64.StdEncoding.EncodeToString([]byte("abc")),
		})
	})

	require.NotNil(t, herr)
	require.Equal(t, rpc.CodeUnavailable, herr.Code)
	require.Contains(t, herr.Message, "connection reset by provider")
	require.Equal(t, rpc.ReasonProviderError, herr.Details["reason"])
}

func TestTranscribe_Success(t *testing.T) {
	tr := &stubTranscriber{result: &stt.Result{Text: "hello", Model: "whisper-1"}}
	res := &stubResolver{key: "sk-test", ok: true}
	handler := newHandler(tr, res, 1<<20)

	result, herr := handler.Handle(context.Background(), rpc.Params{
		"audio":    base64.StdEncoding.EncodeToString([]byte("abc")),
		"mime":     "audio/wav",
		"fileName": "a.wav",
	})

	require.Nil(t, herr)
	require.Equal(t, &TranscribeResult{Text: "hello", Model: "whisper-1"}, result)

	require.Len(t, tr.calls, 1)
	call := tr.calls[0]
	require.Equal(t, []byte("abc"), call.Audio)
	require.Equal(t, "audio/wav", call.MIMEType)
	require.Equal(t, "a.wav", call.FileName)
	require.Equal(t, "sk-test", call.APIKey)
	require.Equal(t, 60*time.Second, call.Timeout)
	require.Empty(t, call.Language, "absent language must pass through as unset")
}

func TestTranscribe_Defaults(t *testing.T) {
	tr := &stubTranscriber{result: &stt.Result{Text: "ok", Model: "m"}}
	res := &stubResolver{key: "sk-test", ok: true}
	handler := newHandler(tr, res, 1<<20)

	_, herr := handler.Handle(context.Background(), rpc.Params{
		"audio":    base64.StdEncoding.EncodeToString([]byte("abc")),
		"mime":     42,      // not a string: fall back
		"language": " en  ", // trimmed
	})

	require.Nil(t, herr)
	require.Len(t, tr.calls, 1)
	call := tr.calls[0]
	require.Equal(t, "audio/webm", call.MIMEType)
	require.Equal(t, "recording.webm", call.FileName)
	require.Equal(t, "en", call.Language)
}

func TestTranscribe_Idempotent(t *testing.T) {
	tr := &stubTranscriber{result: &stt.Result{Text: "same", Model: "m"}}
	res := &stubResolver{key: "sk-test", ok: true}
	handler := newHandler(tr, res, 1<<20)

	params := rpc.Params{"audio": base64.StdEncoding.EncodeToString([]byte("abc"))}

	first, herr1 := handler.Handle(context.Background(), params)
	second, herr2 := handler.Handle(context.Background(), params)

	require.Nil(t, herr1)
	require.Nil(t, herr2)
	require.Equal(t, first, second, "no request-scoped state may leak between calls")
	require.Equal(t, tr.calls[0], tr.calls[1])
}
