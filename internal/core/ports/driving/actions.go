package driving

import (
	"context"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
)

// ResultActionService provides actions on collected titles for external actors.
// This is used by the TUI picker and the CLI.
type ResultActionService interface {
	// OpenStorePage opens the title's store page in the default browser.
	OpenStorePage(ctx context.Context, title *domain.TitleRecord) error

	// CopyStoreURL copies the title's store URL to the system clipboard.
	CopyStoreURL(ctx context.Context, title *domain.TitleRecord) error
}
