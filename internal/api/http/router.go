// Package httpapi exposes the gateway RPC surface over HTTP.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ai-media-gateway-service/internal/rpc"
)

// rpcRequest is the wire envelope of one gateway call.
type rpcRequest struct {
	Method string     `json:"method"`
	Params rpc.Params `json:"params"`
}

// rpcResponse is the wire envelope of one gateway response.
type rpcResponse struct {
	OK     bool       `json:"ok"`
	Result any        `json:"result,omitempty"`
	Error  *rpc.Error `json:"error,omitempty"`
}

// NewRouter constructs the HTTP router for the gateway.
func NewRouter(dispatcher *rpc.Dispatcher) http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Health endpoints
	r.Get("/v1/liveness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/v1/readiness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	// Gateway RPC surface
	r.Post("/v1/rpc", handleRPC(dispatcher))

	return r
}

// handleRPC decodes the envelope, dispatches the method, and writes the
// single response. A failed call is still HTTP 200: the error lives in the
// envelope, keeping transport status separate from the method outcome.
func handleRPC(dispatcher *rpc.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeResponse(w, rpc.Response{Err: rpc.InvalidRequest("malformed request body")})
			return
		}
		if req.Method == "" {
			writeResponse(w, rpc.Response{Err: rpc.InvalidRequest("requires a method name")})
			return
		}

		resp := dispatcher.Dispatch(r.Context(), req.Method, req.Params)
		writeResponse(w, resp)
	}
}

func writeResponse(w http.ResponseWriter, resp rpc.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(rpcResponse{
		OK:     resp.OK(),
		Result: resp.Result,
		Error:  resp.Err,
	})
}
