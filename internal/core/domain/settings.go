package domain

import (
	"fmt"
	"time"
)

// Default setting values.
const (
	DefaultMaxPrice          = 0.0
	DefaultMaxReviews        = 20
	DefaultResults           = 25
	DefaultStoreURL          = "https://store.steampowered.com"
	DefaultTimeoutSeconds    = 30
	DefaultPauseSeconds      = 5
	DefaultMaxConcurrency    = 0 // unlimited
	DefaultRequestsPerSecond = 0 // no proactive throttle
)

// CriteriaSettings holds the defaults offered by the criteria prompt.
type CriteriaSettings struct {
	MaxPrice   float64
	MaxReviews int
	Results    int
	Platforms  []Platform
}

// Criteria returns the filter criteria part of the settings.
func (c CriteriaSettings) Criteria() FilterCriteria {
	return FilterCriteria{
		MaxPrice:   c.MaxPrice,
		MaxReviews: c.MaxReviews,
		Platforms:  append([]Platform(nil), c.Platforms...),
	}
}

// StoreSettings configures the store clients.
type StoreSettings struct {
	// BaseURL is the store root, without trailing slash.
	BaseURL string

	// TimeoutSeconds bounds each HTTP request. 0 leaves the transport default.
	TimeoutSeconds int

	// RequestsPerSecond throttles outgoing requests. 0 disables throttling.
	RequestsPerSecond float64
}

// Timeout returns the request timeout as a duration.
func (s StoreSettings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// CollectSettings tunes the collection loop.
type CollectSettings struct {
	// PauseSeconds is the fixed back-off after a rate-limit signal.
	PauseSeconds int

	// MaxConcurrency caps detail fetches in flight per round. 0 means no cap.
	MaxConcurrency int
}

// Pause returns the back-off as a duration.
func (c CollectSettings) Pause() time.Duration {
	return time.Duration(c.PauseSeconds) * time.Second
}

// WordListSettings locates the search term list.
type WordListSettings struct {
	// Path overrides the embedded list when set.
	Path string
}

// AppSettings is the complete application configuration.
type AppSettings struct {
	Criteria CriteriaSettings
	Store    StoreSettings
	Collect  CollectSettings
	WordList WordListSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Criteria: CriteriaSettings{
			MaxPrice:   DefaultMaxPrice,
			MaxReviews: DefaultMaxReviews,
			Results:    DefaultResults,
			Platforms:  []Platform{PlatformWindows},
		},
		Store: StoreSettings{
			BaseURL:           DefaultStoreURL,
			TimeoutSeconds:    DefaultTimeoutSeconds,
			RequestsPerSecond: DefaultRequestsPerSecond,
		},
		Collect: CollectSettings{
			PauseSeconds:   DefaultPauseSeconds,
			MaxConcurrency: DefaultMaxConcurrency,
		},
	}
}

// Validate checks the settings for values the application cannot run with.
func (s AppSettings) Validate() error {
	if err := s.Criteria.Criteria().Validate(); err != nil {
		return err
	}
	if s.Criteria.Results <= 0 {
		return fmt.Errorf("%w: criteria.results must be positive", ErrInvalidInput)
	}
	if s.Store.BaseURL == "" {
		return fmt.Errorf("%w: steam.store_url must be set", ErrInvalidInput)
	}
	if s.Store.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: steam.timeout_seconds must not be negative", ErrInvalidInput)
	}
	if s.Store.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: steam.requests_per_second must not be negative", ErrInvalidInput)
	}
	if s.Collect.PauseSeconds < 0 {
		return fmt.Errorf("%w: collect.pause_seconds must not be negative", ErrInvalidInput)
	}
	if s.Collect.MaxConcurrency < 0 {
		return fmt.Errorf("%w: collect.max_concurrency must not be negative", ErrInvalidInput)
	}
	return nil
}
