package rpc

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Handler handles one gateway method call. Implementations must be safe
// for concurrent use: all working data is scoped to a single invocation.
type Handler interface {
	Handle(ctx context.Context, params Params) (any, *Error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, params Params) (any, *Error)

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, params Params) (any, *Error) {
	return f(ctx, params)
}

// Registry maps method names to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty method registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler under the given method name. Registering the
// same name twice is a wiring bug, so it panics at startup rather than
// silently replacing a handler.
func (r *Registry) Register(method string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[method]; exists {
		panic(fmt.Sprintf("rpc: method %q registered twice", method))
	}
	r.handlers[method] = h
}

// Lookup returns the handler for the method, if registered.
func (r *Registry) Lookup(method string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[method]
	return h, ok
}

// Methods returns the registered method names in sorted order.
func (r *Registry) Methods() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
