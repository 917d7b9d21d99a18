package rpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ai-media-gateway-service/internal/observability/logging"
	"ai-media-gateway-service/internal/observability/metrics"
)

// Dispatcher routes one request to its handler and guarantees exactly one
// structured response on every code path, including handler panics.
type Dispatcher struct {
	registry *Registry
	metrics  *metrics.Metrics
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		metrics:  metrics.DefaultMetrics,
	}
}

// Dispatch runs the named method and returns its single response.
func (d *Dispatcher) Dispatch(ctx context.Context, method string, params Params) Response {
	start := time.Now()
	requestId := uuid.NewString()

	logger := logging.WithRequest(method, requestId)

	handler, ok := d.registry.Lookup(method)
	if !ok {
		resp := Response{Err: NotFound(method)}
		d.record(method, resp, time.Since(start))
		logger.Warn().Msg("Unknown gateway method")
		return resp
	}

	emitter := NewEmitter()
	d.invoke(logger.WithContext(ctx), handler, params, emitter, logger)

	resp, ok := emitter.Response()
	if !ok {
		// A handler that returns without responding violates the
		// contract; surface it as an internal failure.
		logger.Error().Msg("Handler completed without emitting a response")
		resp = Response{Err: Internal()}
	}

	duration := time.Since(start)
	d.record(method, resp, duration)

	evt := logger.Info()
	if !resp.OK() {
		evt = logger.Warn().Str("code", string(resp.Err.Code))
	}
	evt.Dur("duration", duration).Msg("Gateway method call")

	return resp
}

// invoke runs the handler with panic recovery. The emitter is written
// exactly once: with the handler's result, or with INTERNAL on panic.
func (d *Dispatcher) invoke(ctx context.Context, handler Handler, params Params, emitter *Emitter, logger zerolog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("Handler panicked")
			_ = emitter.Fail(Internal())
		}
	}()

	result, herr := handler.Handle(ctx, params)
	if herr != nil {
		_ = emitter.Fail(herr)
		return
	}
	_ = emitter.Succeed(result)
}

func (d *Dispatcher) record(method string, resp Response, duration time.Duration) {
	if d.metrics == nil {
		return
	}
	outcome := "success"
	if !resp.OK() {
		outcome = string(resp.Err.Code)
	}
	d.metrics.RecordRPC(method, outcome, duration.Seconds())
}
