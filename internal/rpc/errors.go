// Package rpc defines the per-method handler contract for the gateway:
// an untyped parameter bag in, exactly one structured response out.
package rpc

import "fmt"

// ErrorCode is a machine-readable error code carried in failure responses.
type ErrorCode string

const (
	// CodeInvalidRequest - caller-supplied data is malformed or out of
	// bounds. Always detected locally, before any external call. The
	// caller must correct and resubmit; retrying unchanged will not help.
	CodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	// CodeUnavailable - the method could not complete due to missing
	// configuration or a downstream failure (absent credential, provider
	// error, timeout). Fixable by the operator, or transient.
	CodeUnavailable ErrorCode = "UNAVAILABLE"

	// CodeNotFound - no handler is registered for the requested method.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeInternal - the handler panicked; the dispatcher recovered and
	// converted it into a response so the caller still hears back.
	CodeInternal ErrorCode = "INTERNAL"
)

// Reason values carried in Error.Details under the "reason" key, so that
// operators can tell a configuration gap from a provider failure without
// splitting the UNAVAILABLE code.
const (
	ReasonMissingCredential = "missing_credential"
	ReasonProviderError     = "provider_error"
)

// Error is the uniform error payload emitted on every failure path.
type Error struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// InvalidRequest builds an INVALID_REQUEST error.
func InvalidRequest(message string) *Error {
	return &Error{Code: CodeInvalidRequest, Message: message}
}

// Unavailable builds an UNAVAILABLE error.
func Unavailable(message string) *Error {
	return &Error{Code: CodeUnavailable, Message: message}
}

// Unavailablef builds an UNAVAILABLE error with a formatted message.
func Unavailablef(format string, args ...any) *Error {
	return &Error{Code: CodeUnavailable, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a NOT_FOUND error for an unknown method name.
func NotFound(method string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("unknown method: %s", method),
	}
}

// Internal builds an INTERNAL error. The message stays generic on purpose;
// the panic value belongs in the logs, not in the client payload.
func Internal() *Error {
	return &Error{Code: CodeInternal, Message: "internal error"}
}
