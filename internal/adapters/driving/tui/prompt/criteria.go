// Package prompt asks the user for discovery criteria.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
)

// ErrAborted is returned when the user cancels the form.
var ErrAborted = errors.New("prompt aborted")

// Answers holds the raw form input. Numbers stay text until Options parses them.
type Answers struct {
	MaxPrice   string
	MaxReviews string
	Results    string
	Platforms  []domain.Platform
}

// DefaultAnswers pre-fills the form from configured criteria.
func DefaultAnswers(c domain.CriteriaSettings) Answers {
	return Answers{
		MaxPrice:   strconv.FormatFloat(c.MaxPrice, 'f', -1, 64),
		MaxReviews: strconv.Itoa(c.MaxReviews),
		Results:    strconv.Itoa(c.Results),
		Platforms:  append([]domain.Platform(nil), c.Platforms...),
	}
}

// Options parses the answers into collect options.
func (a Answers) Options() (domain.CollectOptions, error) {
	price, err := parsePrice(a.MaxPrice)
	if err != nil {
		return domain.CollectOptions{}, err
	}
	reviews, err := parseCount(a.MaxReviews, "max reviews", 0)
	if err != nil {
		return domain.CollectOptions{}, err
	}
	results, err := parseCount(a.Results, "results", 1)
	if err != nil {
		return domain.CollectOptions{}, err
	}

	opts := domain.CollectOptions{
		Criteria: domain.FilterCriteria{
			MaxPrice:   price,
			MaxReviews: reviews,
			Platforms:  append([]domain.Platform(nil), a.Platforms...),
		},
		Quota: results,
	}
	return opts, opts.Validate()
}

// ValidateMaxPrice accepts a non-negative decimal.
func ValidateMaxPrice(s string) error {
	_, err := parsePrice(s)
	return err
}

// ValidateMaxReviews accepts a non-negative integer.
func ValidateMaxReviews(s string) error {
	_, err := parseCount(s, "max reviews", 0)
	return err
}

// ValidateResults accepts a positive integer.
func ValidateResults(s string) error {
	_, err := parseCount(s, "results", 1)
	return err
}

func parsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: max price must be a non-negative number", domain.ErrInvalidInput)
	}
	return v, nil
}

func parseCount(s, name string, minimum int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < minimum {
		if minimum > 0 {
			return 0, fmt.Errorf("%w: %s must be a positive whole number", domain.ErrInvalidInput, name)
		}
		return 0, fmt.Errorf("%w: %s must be a non-negative whole number", domain.ErrInvalidInput, name)
	}
	return v, nil
}

// NewForm builds the criteria form bound to a.
func NewForm(a *Answers) *huh.Form {
	options := make([]huh.Option[domain.Platform], 0, len(domain.AllPlatforms()))
	for _, p := range domain.AllPlatforms() {
		options = append(options, huh.NewOption(p.Description(), p))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Max Price").
				Description("0 for free titles only").
				Value(&a.MaxPrice).
				Validate(ValidateMaxPrice),
			huh.NewInput().
				Title("Max Reviews").
				Value(&a.MaxReviews).
				Validate(ValidateMaxReviews),
			huh.NewInput().
				Title("Results").
				Value(&a.Results).
				Validate(ValidateResults),
			huh.NewMultiSelect[domain.Platform]().
				Title("Supported Platforms").
				Options(options...).
				Value(&a.Platforms),
		),
	).WithTheme(huh.ThemeCharm())
}

// Ask runs the form and returns the chosen options.
func Ask(ctx context.Context, defaults domain.CriteriaSettings) (domain.CollectOptions, error) {
	answers := DefaultAnswers(defaults)
	if err := NewForm(&answers).RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return domain.CollectOptions{}, ErrAborted
		}
		return domain.CollectOptions{}, fmt.Errorf("criteria prompt: %w", err)
	}
	return answers.Options()
}
