package tui

import "errors"

// ErrMissingActionService is returned when the result action service is not provided.
var ErrMissingActionService = errors.New("tui: result action service is required")

// ErrNoTitles is returned when the picker is started without titles.
var ErrNoTitles = errors.New("tui: nothing to pick from")
