package domain

import (
	"fmt"
	"strconv"
)

// StoreAppURL is the store page prefix for a title.
const StoreAppURL = "https://store.steampowered.com/app/"

// TitleRecord is the full view of one store title.
// It is immutable once fetched.
type TitleRecord struct {
	// ID is the numeric app identifier.
	ID uint32 `json:"id"`

	// Type is the store item type (game, dlc, demo, ...).
	Type string `json:"type"`

	// Name is the display name.
	Name string `json:"name"`

	// RequiredAge is the minimum age, 0 if unrestricted.
	RequiredAge int `json:"required_age"`

	// IsFree reports the store's own free flag.
	IsFree bool `json:"is_free"`

	// SupportedLanguages is the store's HTML-ish language list.
	SupportedLanguages string `json:"supported_languages,omitempty"`

	Developers []string `json:"developers,omitempty"`
	Publishers []string `json:"publishers,omitempty"`

	// Price is nil for free titles.
	Price *Price `json:"price,omitempty"`

	Platforms   Platforms   `json:"platforms"`
	Categories  []Tag       `json:"categories,omitempty"`
	Genres      []Tag       `json:"genres,omitempty"`
	ReleaseDate ReleaseDate `json:"release_date"`

	// Reviews is the aggregate review summary.
	Reviews ReviewSummary `json:"reviews"`
}

// Price is the store price overview. Amounts are in minor currency units.
type Price struct {
	Currency         string `json:"currency"`
	Initial          int64  `json:"initial"`
	Final            int64  `json:"final"`
	DiscountPercent  int    `json:"discount_percent"`
	InitialFormatted string `json:"initial_formatted,omitempty"`
	FinalFormatted   string `json:"final_formatted,omitempty"`
}

// FinalMajor returns the final price in major currency units.
func (p *Price) FinalMajor() float64 {
	return float64(p.Final) / 100
}

// Platforms records operating system support.
type Platforms struct {
	Windows bool `json:"windows"`
	Mac     bool `json:"mac"`
	Linux   bool `json:"linux"`
}

// Supports reports whether the platform is flagged as supported.
func (p Platforms) Supports(platform Platform) bool {
	switch platform {
	case PlatformWindows:
		return p.Windows
	case PlatformMac:
		return p.Mac
	case PlatformLinux:
		return p.Linux
	default:
		return false
	}
}

// Tag is a category or genre entry.
type Tag struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// ReleaseDate is the store release information.
type ReleaseDate struct {
	ComingSoon bool   `json:"coming_soon"`
	Date       string `json:"date"`
}

// ReviewSummary aggregates the store's user reviews.
type ReviewSummary struct {
	NumReviews      int    `json:"num_reviews"`
	ReviewScore     int    `json:"review_score"`
	ReviewScoreDesc string `json:"review_score_desc"`
	TotalPositive   int    `json:"total_positive"`
	TotalNegative   int    `json:"total_negative"`
	TotalReviews    int    `json:"total_reviews"`
}

// StoreURL returns the store page for the title.
func (t *TitleRecord) StoreURL() string {
	return StoreAppURL + strconv.FormatUint(uint64(t.ID), 10)
}

// PriceLabel returns the display price, or "Free" when there is no price.
func (t *TitleRecord) PriceLabel() string {
	if t.Price == nil {
		return "Free"
	}
	if t.Price.FinalFormatted != "" {
		return t.Price.FinalFormatted
	}
	return fmt.Sprintf("$%.2f", t.Price.FinalMajor())
}

// Label is the one-line menu entry: "name • price • N reviews".
func (t *TitleRecord) Label() string {
	return fmt.Sprintf("%s • %s • %d reviews", t.Name, t.PriceLabel(), t.Reviews.NumReviews)
}
