package domain

import (
	"fmt"
	"time"
)

// CollectionState is a state of the collection loop.
type CollectionState string

// Collection loop states.
const (
	StateCollecting  CollectionState = "collecting"
	StateRateLimited CollectionState = "rate_limited"
	StateDone        CollectionState = "done"
)

// CollectOptions configures one discovery run.
type CollectOptions struct {
	// Criteria filters fetched titles.
	Criteria FilterCriteria

	// Quota is the number of passing titles to collect.
	Quota int
}

// Validate checks the options.
func (o CollectOptions) Validate() error {
	if o.Quota <= 0 {
		return fmt.Errorf("%w: results must be a positive number", ErrInvalidInput)
	}
	return o.Criteria.Validate()
}

// Collection is the outcome of a discovery run.
// Titles are in discovery order and may contain the same app twice.
type Collection struct {
	RunID    string        `json:"run_id"`
	Titles   []TitleRecord `json:"titles"`
	Rounds   int           `json:"rounds"`
	Pauses   int           `json:"rate_limit_pauses"`
	Duration time.Duration `json:"duration"`
}
