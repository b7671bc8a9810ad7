package driving

import "github.com/custodia-labs/undiscovered/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the current settings with defaults applied.
	Get() (*domain.AppSettings, error)

	// Save persists settings.
	Save(settings *domain.AppSettings) error

	// Validate checks the current settings.
	Validate() error

	// Path returns where settings are stored.
	Path() string
}
