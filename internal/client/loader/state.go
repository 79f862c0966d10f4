package loader

import "errors"

// Phase is the lifecycle tag of a view.
type Phase int

const (
	Loading Phase = iota
	Error
	Ready
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Error:
		return "error"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// AuthMissingMessage is the Error message when no credential is stored.
const AuthMissingMessage = "Authentication token missing. Please sign in."

var (
	// ErrAuthMissing means no bearer token was available; no request was sent.
	ErrAuthMissing = errors.New("authentication token missing")
	// ErrRequestFailed wraps every failure of the fetch itself.
	ErrRequestFailed = errors.New("request failed")
)

// State is a snapshot of a view's lifecycle. Message and Err are set only in
// the Error phase, Payload only in the Ready phase.
type State[T any] struct {
	Phase      Phase
	Generation uint64
	Message    string
	Err        error
	Payload    T
}

func (s State[T]) IsLoading() bool { return s.Phase == Loading }
func (s State[T]) IsError() bool   { return s.Phase == Error }
func (s State[T]) IsReady() bool   { return s.Phase == Ready }
