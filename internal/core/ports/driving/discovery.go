package driving

import (
	"context"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
)

// DiscoveryService gathers titles matching the user's criteria.
type DiscoveryService interface {
	// Collect runs search rounds until opts.Quota titles have passed the filter.
	// Cancelling ctx stops the loop between rounds and returns what was gathered.
	Collect(ctx context.Context, opts domain.CollectOptions) (*domain.Collection, error)
}
