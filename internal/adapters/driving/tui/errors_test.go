package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingActionService, ErrNoTitles)
	assert.Contains(t, ErrMissingActionService.Error(), "tui:")
	assert.Contains(t, ErrNoTitles.Error(), "tui:")
}
