package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/undiscovered/internal/adapters/driving/tui"
	"github.com/custodia-labs/undiscovered/internal/adapters/driving/tui/progress"
	"github.com/custodia-labs/undiscovered/internal/adapters/driving/tui/prompt"
	"github.com/custodia-labs/undiscovered/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/undiscovered/internal/core/domain"
)

var (
	discoverMaxPrice   float64
	discoverMaxReviews int
	discoverResults    int
	discoverPlatforms  []string
	discoverNoPrompt   bool
	discoverJSON       bool
)

// askCriteria runs the criteria form. Replaced in tests.
var askCriteria = prompt.Ask

// runPicker shows the title picker. Replaced in tests.
var runPicker = func(ctx context.Context, titles []domain.TitleRecord) error {
	app, err := tui.NewApp(tui.NewPorts(resultActionService), titles)
	if err != nil {
		return err
	}
	return app.WithContext(ctx).Run()
}

func init() {
	flags := rootCmd.Flags()
	flags.Float64Var(&discoverMaxPrice, "max-price", domain.DefaultMaxPrice,
		"highest accepted price in dollars, 0 for free titles only")
	flags.IntVar(&discoverMaxReviews, "max-reviews", domain.DefaultMaxReviews, "highest accepted review count")
	flags.IntVarP(&discoverResults, "results", "n", domain.DefaultResults, "number of titles to collect")
	flags.StringArrayVarP(&discoverPlatforms, "platform", "p", nil,
		"required platform: windows, mac or linux (repeatable)")
	flags.BoolVar(&discoverNoPrompt, "no-prompt", false, "skip the criteria prompt and the picker")
	flags.BoolVar(&discoverJSON, "json", false, "print the collection as JSON")
}

func runDiscover(cmd *cobra.Command, _ []string) error {
	settingsService, err := openSettings()
	if err != nil {
		return err
	}
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	defaults, err := applyCriteriaFlags(cmd, settings.Criteria)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	tty := interactive() && !discoverNoPrompt
	s := styles.DefaultStyles()

	var opts domain.CollectOptions
	if tty {
		cmd.Println(progress.Banner(s))
		opts, err = askCriteria(ctx, defaults)
		if errors.Is(err, prompt.ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}
	} else {
		opts = domain.CollectOptions{Criteria: defaults.Criteria(), Quota: defaults.Results}
	}

	if newDiscoveryService == nil {
		return errors.New("discovery service not configured")
	}
	reporter := progress.NewReporter(cmd.ErrOrStderr(), s, tty)
	discovery, err := newDiscoveryService(settings, reporter)
	if err != nil {
		return err
	}

	collection, err := discovery.Collect(ctx, opts)
	if err != nil && !isCancelled(err) {
		return fmt.Errorf("discovery failed: %w", err)
	}
	if collection == nil {
		return err
	}

	switch {
	case discoverJSON:
		return outputCollectionJSON(cmd.OutOrStdout(), collection)
	case tty && len(collection.Titles) > 0 && !isCancelled(err):
		return runPicker(ctx, collection.Titles)
	default:
		outputCollectionList(cmd.OutOrStdout(), collection)
		return nil
	}
}

// applyCriteriaFlags overlays explicitly set flags on the configured criteria.
func applyCriteriaFlags(cmd *cobra.Command, c domain.CriteriaSettings) (domain.CriteriaSettings, error) {
	flags := cmd.Flags()
	if flags.Changed("max-price") {
		c.MaxPrice = discoverMaxPrice
	}
	if flags.Changed("max-reviews") {
		c.MaxReviews = discoverMaxReviews
	}
	if flags.Changed("results") {
		c.Results = discoverResults
	}
	if flags.Changed("platform") {
		platforms := make([]domain.Platform, 0, len(discoverPlatforms))
		for _, raw := range discoverPlatforms {
			p, err := domain.ParsePlatform(raw)
			if err != nil {
				return c, err
			}
			platforms = append(platforms, p)
		}
		c.Platforms = platforms
	}

	if err := c.Criteria().Validate(); err != nil {
		return c, err
	}
	if c.Results <= 0 {
		return c, fmt.Errorf("%w: results must be a positive number", domain.ErrInvalidInput)
	}
	return c, nil
}

func isCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func outputCollectionJSON(w io.Writer, collection *domain.Collection) error {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func outputCollectionList(w io.Writer, collection *domain.Collection) {
	if len(collection.Titles) == 0 {
		fmt.Fprintln(w, "No titles matched your criteria.")
		return
	}
	for i := range collection.Titles {
		title := &collection.Titles[i]
		fmt.Fprintf(w, "%s\n  %s\n", title.Label(), title.StoreURL())
	}
}
