package rpc

import (
	"errors"
	"fmt"
	"sync"
)

// State represents the lifecycle state of a single request.
type State int

const (
	// StatePending - no response has been emitted yet.
	StatePending State = iota
	// StateResponded - the single response has been emitted. Terminal.
	StateResponded
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "PENDING"
	case StateResponded:
		return "RESPONDED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", s)
	}
}

// ErrAlreadyResponded is returned when a second response is attempted for
// the same request.
var ErrAlreadyResponded = errors.New("response already emitted for this request")

// Response is the discriminated outcome of one request. Exactly one of
// Result or Err is set.
type Response struct {
	Result any
	Err    *Error
}

// OK reports whether the response carries a success payload.
func (r Response) OK() bool { return r.Err == nil }

// Emitter guards the one-response-per-request invariant.
// Thread-safe for concurrent access.
//
// State transitions:
//
//	PENDING → RESPONDED (once, via Succeed or Fail)
//
// A second emission attempt returns ErrAlreadyResponded and leaves the
// recorded response untouched.
type Emitter struct {
	mu       sync.Mutex
	state    State
	response Response
}

// NewEmitter creates an emitter in PENDING state.
func NewEmitter() *Emitter {
	return &Emitter{state: StatePending}
}

// State returns the current state.
func (e *Emitter) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Succeed records the success response and transitions to RESPONDED.
func (e *Emitter) Succeed(result any) error {
	return e.emit(Response{Result: result})
}

// Fail records the failure response and transitions to RESPONDED.
func (e *Emitter) Fail(err *Error) error {
	return e.emit(Response{Err: err})
}

func (e *Emitter) emit(r Response) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateResponded {
		return ErrAlreadyResponded
	}
	e.state = StateResponded
	e.response = r
	return nil
}

// Response returns the recorded response. Returns ok=false while the
// request is still PENDING.
func (e *Emitter) Response() (Response, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateResponded {
		return Response{}, false
	}
	return e.response, true
}
