package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
)

func TestDefaultAnswers(t *testing.T) {
	answers := DefaultAnswers(domain.DefaultAppSettings().Criteria)

	assert.Equal(t, "0", answers.MaxPrice)
	assert.Equal(t, "20", answers.MaxReviews)
	assert.Equal(t, "25", answers.Results)
	assert.Equal(t, []domain.Platform{domain.PlatformWindows}, answers.Platforms)
}

func TestDefaultAnswers_DecimalPrice(t *testing.T) {
	answers := DefaultAnswers(domain.CriteriaSettings{MaxPrice: 4.99, Results: 3})

	assert.Equal(t, "4.99", answers.MaxPrice)
	assert.Empty(t, answers.Platforms)
}

func TestAnswers_Options(t *testing.T) {
	answers := Answers{
		MaxPrice:   " 9.5 ",
		MaxReviews: "0",
		Results:    "10",
		Platforms:  []domain.Platform{domain.PlatformLinux, domain.PlatformMac},
	}

	opts, err := answers.Options()
	require.NoError(t, err)

	assert.Equal(t, 10, opts.Quota)
	assert.InDelta(t, 9.5, opts.Criteria.MaxPrice, 1e-9)
	assert.Equal(t, 0, opts.Criteria.MaxReviews)
	assert.Equal(t, []domain.Platform{domain.PlatformLinux, domain.PlatformMac}, opts.Criteria.Platforms)
}

func TestAnswers_OptionsInvalid(t *testing.T) {
	valid := Answers{MaxPrice: "0", MaxReviews: "20", Results: "25"}

	tests := []struct {
		name   string
		mutate func(a *Answers)
	}{
		{"negative price", func(a *Answers) { a.MaxPrice = "-1" }},
		{"text price", func(a *Answers) { a.MaxPrice = "cheap" }},
		{"empty reviews", func(a *Answers) { a.MaxReviews = "" }},
		{"decimal reviews", func(a *Answers) { a.MaxReviews = "2.5" }},
		{"zero results", func(a *Answers) { a.Results = "0" }},
		{"negative results", func(a *Answers) { a.Results = "-3" }},
		{"unknown platform", func(a *Answers) { a.Platforms = []domain.Platform{"amiga"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := valid
			tt.mutate(&answers)

			_, err := answers.Options()
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestValidators(t *testing.T) {
	assert.NoError(t, ValidateMaxPrice("0"))
	assert.NoError(t, ValidateMaxPrice("12.34"))
	assert.Error(t, ValidateMaxPrice("-0.01"))
	assert.Error(t, ValidateMaxPrice("NaN"))
	assert.Error(t, ValidateMaxPrice("Inf"))

	assert.NoError(t, ValidateMaxReviews("0"))
	assert.Error(t, ValidateMaxReviews("-1"))
	assert.Error(t, ValidateMaxReviews("many"))

	assert.NoError(t, ValidateResults("1"))
	assert.Error(t, ValidateResults("0"))
}

func TestValidators_Messages(t *testing.T) {
	assert.ErrorContains(t, ValidateResults("0"), "results must be a positive whole number")
	assert.ErrorContains(t, ValidateMaxReviews("x"), "max reviews must be a non-negative whole number")
}

func TestNewForm(t *testing.T) {
	answers := DefaultAnswers(domain.DefaultAppSettings().Criteria)

	assert.NotNil(t, NewForm(&answers))
}
