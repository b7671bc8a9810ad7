package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyWordList indicates the word list has no usable entries.
	ErrEmptyWordList = errors.New("word list is empty")

	// ErrStoreUnreachable indicates the very first store request failed at the transport level.
	ErrStoreUnreachable = errors.New("store unreachable")

	// Request Errors.

	// ErrRateLimited indicates the store answered 429 or 403.
	ErrRateLimited = errors.New("rate limited")

	// ErrTransport indicates a network or connection failure.
	ErrTransport = errors.New("transport failure")

	// ErrDecode indicates a response body did not have the expected shape.
	ErrDecode = errors.New("unexpected response")

	// ErrOther is the catch-all for request failures that fit no other kind.
	ErrOther = errors.New("request failed")
)

// RequestErrorKind classifies a failed store request.
type RequestErrorKind int

// Request error kinds.
const (
	KindOther RequestErrorKind = iota
	KindRateLimited
	KindTransport
	KindDecode
)

// String returns the kind name.
func (k RequestErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	default:
		return "other"
	}
}

func (k RequestErrorKind) sentinel() error {
	switch k {
	case KindRateLimited:
		return ErrRateLimited
	case KindTransport:
		return ErrTransport
	case KindDecode:
		return ErrDecode
	default:
		return ErrOther
	}
}

// RequestError is returned by the store clients.
// errors.Is matches it against the sentinel for its kind.
type RequestError struct {
	Kind       RequestErrorKind
	Op         string
	StatusCode int
	Err        error
}

// NewRequestError creates a RequestError.
func NewRequestError(kind RequestErrorKind, op string, err error) *RequestError {
	return &RequestError{Kind: kind, Op: op, Err: err}
}

func (e *RequestError) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *RequestError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// KindOf returns the request error kind carried by err.
// Errors that are not RequestErrors are KindOther.
func KindOf(err error) RequestErrorKind {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Kind
	}
	return KindOther
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
