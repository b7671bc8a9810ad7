package driven

import (
	"context"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
)

// CatalogClient runs store searches.
// Backed by the store's search/results JSON endpoint.
type CatalogClient interface {
	// Search returns the matches for term under the given price ceiling
	// (major currency units, 0 meaning free only). It never retries.
	// Errors are *domain.RequestError values.
	Search(ctx context.Context, maxPrice float64, term string) ([]domain.SearchMatch, error)
}

// DetailClient fetches full title information.
type DetailClient interface {
	// Fetch returns the details and review summary for one app identifier.
	// A 429 or 403 on either underlying request yields domain.ErrRateLimited.
	Fetch(ctx context.Context, id string) (domain.TitleRecord, error)
}
