package services

import (
	"fmt"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
)

// Passes reports whether a title satisfies every criterion:
// review count, price ceiling and required platforms.
func Passes(title *domain.TitleRecord, criteria *domain.FilterCriteria) bool {
	return rejectReason(title, criteria) == ""
}

// rejectReason returns why a title fails the criteria, or "" if it passes.
func rejectReason(title *domain.TitleRecord, criteria *domain.FilterCriteria) string {
	if title.Reviews.TotalReviews > criteria.MaxReviews {
		return fmt.Sprintf("%d reviews > %d", title.Reviews.TotalReviews, criteria.MaxReviews)
	}

	// Free titles carry no price and always pass.
	if title.Price != nil && title.Price.Final > criteria.MaxPriceMinor() {
		return fmt.Sprintf("price %d > %d", title.Price.Final, criteria.MaxPriceMinor())
	}

	for _, platform := range criteria.Platforms {
		if !title.Platforms.Supports(platform) {
			return "no " + platform.Description() + " support"
		}
	}

	return ""
}
