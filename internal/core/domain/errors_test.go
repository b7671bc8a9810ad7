package domain

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrEmptyWordList", ErrEmptyWordList},
		{"ErrStoreUnreachable", ErrStoreUnreachable},
		{"ErrRateLimited", ErrRateLimited},
		{"ErrTransport", ErrTransport},
		{"ErrDecode", ErrDecode},
		{"ErrOther", ErrOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestRequestError_IsMatchesKindSentinel(t *testing.T) {
	tests := []struct {
		kind     RequestErrorKind
		sentinel error
	}{
		{KindRateLimited, ErrRateLimited},
		{KindTransport, ErrTransport},
		{KindDecode, ErrDecode},
		{KindOther, ErrOther},
	}

	all := []error{ErrRateLimited, ErrTransport, ErrDecode, ErrOther}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := NewRequestError(tt.kind, "search", nil)
			for _, s := range all {
				assert.Equal(t, s == tt.sentinel, errors.Is(err, s), "sentinel %v", s)
			}
		})
	}
}

func TestRequestError_WrappedStillMatches(t *testing.T) {
	err := fmt.Errorf("round 3: %w", NewRequestError(KindRateLimited, "fetch 10", nil))

	assert.True(t, IsRateLimited(err))
	assert.Equal(t, KindRateLimited, KindOf(err))
}

func TestRequestError_Unwrap(t *testing.T) {
	err := NewRequestError(KindTransport, "search", io.ErrUnexpectedEOF)

	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.True(t, errors.Is(err, ErrTransport))
}

func TestRequestError_Message(t *testing.T) {
	err := &RequestError{Kind: KindOther, Op: "fetch details", StatusCode: 500, Err: errors.New("boom")}

	assert.Equal(t, "fetch details: request failed (status 500): boom", err.Error())
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, KindOther, KindOf(errors.New("plain")))
	assert.False(t, IsRateLimited(errors.New("plain")))
}
