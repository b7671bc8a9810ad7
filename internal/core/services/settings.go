package services

import (
	"fmt"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
	"github.com/custodia-labs/undiscovered/internal/core/ports/driven"
	"github.com/custodia-labs/undiscovered/internal/core/ports/driving"
	"github.com/custodia-labs/undiscovered/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyMaxPrice          = "criteria.max_price"
	keyMaxReviews        = "criteria.max_reviews"
	keyResults           = "criteria.results"
	keyPlatforms         = "criteria.platforms"
	keyStoreURL          = "steam.store_url"
	keyTimeoutSeconds    = "steam.timeout_seconds"
	keyRequestsPerSecond = "steam.requests_per_second"
	keyPauseSeconds      = "collect.pause_seconds"
	keyMaxConcurrency    = "collect.max_concurrency"
	keyWordListPath      = "wordlist.path"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or malformed values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Criteria: domain.CriteriaSettings{
			MaxPrice:   s.getFloat(keyMaxPrice, defaults.Criteria.MaxPrice),
			MaxReviews: s.getInt(keyMaxReviews, defaults.Criteria.MaxReviews),
			Results:    s.getInt(keyResults, defaults.Criteria.Results),
			Platforms:  s.getPlatforms(defaults.Criteria.Platforms),
		},
		Store: domain.StoreSettings{
			BaseURL:           s.getString(keyStoreURL, defaults.Store.BaseURL),
			TimeoutSeconds:    s.getInt(keyTimeoutSeconds, defaults.Store.TimeoutSeconds),
			RequestsPerSecond: s.getFloat(keyRequestsPerSecond, defaults.Store.RequestsPerSecond),
		},
		Collect: domain.CollectSettings{
			PauseSeconds:   s.getInt(keyPauseSeconds, defaults.Collect.PauseSeconds),
			MaxConcurrency: s.getInt(keyMaxConcurrency, defaults.Collect.MaxConcurrency),
		},
		WordList: domain.WordListSettings{
			Path: s.configStore.GetString(keyWordListPath),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings is nil", domain.ErrInvalidInput)
	}

	platforms := make([]string, 0, len(settings.Criteria.Platforms))
	for _, p := range settings.Criteria.Platforms {
		platforms = append(platforms, p.String())
	}

	values := []struct {
		key   string
		value any
	}{
		{keyMaxPrice, settings.Criteria.MaxPrice},
		{keyMaxReviews, settings.Criteria.MaxReviews},
		{keyResults, settings.Criteria.Results},
		{keyPlatforms, platforms},
		{keyStoreURL, settings.Store.BaseURL},
		{keyTimeoutSeconds, settings.Store.TimeoutSeconds},
		{keyRequestsPerSecond, settings.Store.RequestsPerSecond},
		{keyPauseSeconds, settings.Collect.PauseSeconds},
		{keyMaxConcurrency, settings.Collect.MaxConcurrency},
	}
	if settings.WordList.Path != "" {
		values = append(values, struct {
			key   string
			value any
		}{keyWordListPath, settings.WordList.Path})
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Validate checks if current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getInt treats an explicit 0 as a value, unlike an absent key.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	val, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal
	}
	switch val.(type) {
	case int, int64, float64:
		return s.configStore.GetInt(key)
	default:
		logger.Warn("Config %s: expected a number, using default %d", key, defaultVal)
		return defaultVal
	}
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal
	}
	switch val.(type) {
	case int, int64, float64:
		return s.configStore.GetFloat(key)
	default:
		logger.Warn("Config %s: expected a number, using default %v", key, defaultVal)
		return defaultVal
	}
}

func (s *SettingsService) getPlatforms(defaultVal []domain.Platform) []domain.Platform {
	if _, exists := s.configStore.Get(keyPlatforms); !exists {
		return append([]domain.Platform(nil), defaultVal...)
	}

	raw := s.configStore.GetStringSlice(keyPlatforms)
	platforms := make([]domain.Platform, 0, len(raw))
	for _, name := range raw {
		p, err := domain.ParsePlatform(name)
		if err != nil {
			logger.Warn("Config %s: %v", keyPlatforms, err)
			continue
		}
		platforms = append(platforms, p)
	}
	return platforms
}
