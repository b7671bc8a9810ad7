// Package tui provides the interactive result picker.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/undiscovered/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces the picker needs.
type Ports struct {
	// ResultAction opens and copies store pages.
	ResultAction driving.ResultActionService
}

// NewPorts creates a new Ports aggregate.
func NewPorts(resultAction driving.ResultActionService) *Ports {
	return &Ports{
		ResultAction: resultAction,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.ResultAction == nil {
		return ErrMissingActionService
	}
	return nil
}
