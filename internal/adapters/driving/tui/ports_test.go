package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
	"github.com/custodia-labs/undiscovered/internal/core/ports/driving"
)

// MockResultActionService implements driving.ResultActionService for testing.
type MockResultActionService struct {
	Opened []uint32
	Copied []uint32
	Err    error
}

func (m *MockResultActionService) OpenStorePage(_ context.Context, title *domain.TitleRecord) error {
	m.Opened = append(m.Opened, title.ID)
	return m.Err
}

func (m *MockResultActionService) CopyStoreURL(_ context.Context, title *domain.TitleRecord) error {
	m.Copied = append(m.Copied, title.ID)
	return m.Err
}

var _ driving.ResultActionService = (*MockResultActionService)(nil)

func TestNewPorts(t *testing.T) {
	actions := &MockResultActionService{}

	ports := NewPorts(actions)

	assert.Equal(t, actions, ports.ResultAction)
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_Missing(t *testing.T) {
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingActionService)

	var nilPorts *Ports
	assert.ErrorIs(t, nilPorts.Validate(), ErrMissingActionService)
}
