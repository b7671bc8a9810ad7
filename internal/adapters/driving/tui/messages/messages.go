// Package messages defines Bubbletea message types for the terminal UI.
package messages

import (
	"github.com/custodia-labs/undiscovered/internal/core/domain"
)

// Action identifies something the user can do with a title.
type Action int

const (
	// ActionOpen opens the store page in a browser.
	ActionOpen Action = iota
	// ActionCopy copies the store URL to the clipboard.
	ActionCopy
)

// String returns the past-tense verb shown after the action succeeds.
func (a Action) String() string {
	switch a {
	case ActionOpen:
		return "Opened"
	case ActionCopy:
		return "Copied"
	default:
		return "Done"
	}
}

// ActionCompleted carries the outcome of an action on a title.
type ActionCompleted struct {
	Action Action
	Title  domain.TitleRecord
	Err    error
}

// Quit signals the picker should exit.
type Quit struct{}
