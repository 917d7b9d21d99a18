package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ai-media-gateway-service/internal/rpc"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	registry := rpc.NewRegistry()
	registry.Register("echo", rpc.HandlerFunc(
		func(ctx context.Context, params rpc.Params) (any, *rpc.Error) {
			v, _ := params.String("value")
			return map[string]string{"value": v}, nil
		}))
	registry.Register("failing", rpc.HandlerFunc(
		func(ctx context.Context, params rpc.Params) (any, *rpc.Error) {
			return nil, rpc.Unavailable("provider down")
		}))
	return NewRouter(rpc.NewDispatcher(registry))
}

func postRPC(t *testing.T, router http.Handler, body string) (*httptest.ResponseRecorder, rpcResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/rpc", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestRPC_Success(t *testing.T) {
	router := newTestRouter(t)

	rec, resp := postRPC(t, router, `{"method": "echo", "params": {"value": "hi"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.OK)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "hi", result["value"])
}

func TestRPC_HandlerError(t *testing.T) {
	router := newTestRouter(t)

	rec, resp := postRPC(t, router, `{"method": "failing", "params": {}}`)

	// Method failures ride HTTP 200; the error lives in the envelope.
	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, resp.OK)
	require.Equal(t, rpc.CodeUnavailable, resp.Error.Code)
}

func TestRPC_UnknownMethod(t *testing.T) {
	router := newTestRouter(t)

	_, resp := postRPC(t, router, `{"method": "no.such.method"}`)

	require.False(t, resp.OK)
	require.Equal(t, rpc.CodeNotFound, resp.Error.Code)
}

func TestRPC_MalformedBody(t *testing.T) {
	router := newTestRouter(t)

	_, resp := postRPC(t, router, `{not json`)

	require.False(t, resp.OK)
	require.Equal(t, rpc.CodeInvalidRequest, resp.Error.Code)
}

func TestRPC_MissingMethod(t *testing.T) {
	router := newTestRouter(t)

	_, resp := postRPC(t, router, `{"params": {}}`)

	require.False(t, resp.OK)
	require.Equal(t, rpc.CodeInvalidRequest, resp.Error.Code)
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/v1/liveness", "/v1/readiness"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}
