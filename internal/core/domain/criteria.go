package domain

import (
	"fmt"
	"math"
	"strings"
)

// Platform identifies an operating system the store tracks.
type Platform string

// Supported platforms.
const (
	PlatformWindows Platform = "windows"
	PlatformMac     Platform = "mac"
	PlatformLinux   Platform = "linux"
)

// AllPlatforms returns every platform in display order.
func AllPlatforms() []Platform {
	return []Platform{PlatformWindows, PlatformMac, PlatformLinux}
}

// IsValid returns true if the platform is recognised.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformWindows, PlatformMac, PlatformLinux:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p Platform) String() string {
	return string(p)
}

// Description returns the human-readable name.
func (p Platform) Description() string {
	switch p {
	case PlatformWindows:
		return "Windows"
	case PlatformMac:
		return "macOS"
	case PlatformLinux:
		return "Linux"
	default:
		return "Unknown"
	}
}

// ParsePlatform converts user input into a Platform.
// "macos" and "osx" are accepted for PlatformMac.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows", "win":
		return PlatformWindows, nil
	case "mac", "macos", "osx":
		return PlatformMac, nil
	case "linux":
		return PlatformLinux, nil
	default:
		return "", fmt.Errorf("%w: unknown platform %q", ErrInvalidInput, s)
	}
}

// FilterCriteria holds the user's limits. It is read-only during a run.
type FilterCriteria struct {
	// MaxPrice is the price ceiling in major currency units. 0 means free only.
	MaxPrice float64 `json:"max_price"`

	// MaxReviews is the highest accepted total review count.
	MaxReviews int `json:"max_reviews"`

	// Platforms must all be supported by a title.
	Platforms []Platform `json:"platforms"`
}

// MaxPriceMinor returns the price ceiling in minor currency units.
func (c FilterCriteria) MaxPriceMinor() int64 {
	return MinorUnits(c.MaxPrice)
}

// Validate checks the criteria.
func (c FilterCriteria) Validate() error {
	if c.MaxPrice < 0 || math.IsNaN(c.MaxPrice) || math.IsInf(c.MaxPrice, 0) {
		return fmt.Errorf("%w: max price must be a non-negative number", ErrInvalidInput)
	}
	if c.MaxReviews < 0 {
		return fmt.Errorf("%w: max reviews must not be negative", ErrInvalidInput)
	}
	for _, p := range c.Platforms {
		if !p.IsValid() {
			return fmt.Errorf("%w: unknown platform %q", ErrInvalidInput, p)
		}
	}
	return nil
}

// MinorUnits converts a major-unit amount to minor units, rounding to the nearest cent.
func MinorUnits(major float64) int64 {
	return int64(math.Round(major * 100))
}
