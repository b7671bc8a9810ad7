package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View or create the configuration file.

Values in the file become the defaults offered by the criteria prompt and
tune how the store is queried.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	settingsService, err := openSettings()
	if err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintf(out, "File: %s\n\n", settingsService.Path())

	fmt.Fprintln(out, "[Criteria]")
	fmt.Fprintf(out, "  Max price: %s\n", formatMaxPrice(settings.Criteria.MaxPrice))
	fmt.Fprintf(out, "  Max reviews: %d\n", settings.Criteria.MaxReviews)
	fmt.Fprintf(out, "  Results: %d\n", settings.Criteria.Results)
	fmt.Fprintf(out, "  Platforms: %s\n", formatPlatforms(settings.Criteria.Platforms))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Steam]")
	fmt.Fprintf(out, "  Store URL: %s\n", settings.Store.BaseURL)
	fmt.Fprintf(out, "  Timeout: %ds\n", settings.Store.TimeoutSeconds)
	if settings.Store.RequestsPerSecond > 0 {
		fmt.Fprintf(out, "  Requests per second: %g\n", settings.Store.RequestsPerSecond)
	} else {
		fmt.Fprintln(out, "  Requests per second: unlimited")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Collect]")
	fmt.Fprintf(out, "  Rate limit pause: %ds\n", settings.Collect.PauseSeconds)
	if settings.Collect.MaxConcurrency > 0 {
		fmt.Fprintf(out, "  Max concurrency: %d\n", settings.Collect.MaxConcurrency)
	} else {
		fmt.Fprintln(out, "  Max concurrency: unlimited")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Word List]")
	if settings.WordList.Path != "" {
		fmt.Fprintf(out, "  Path: %s\n", settings.WordList.Path)
	} else {
		fmt.Fprintln(out, "  Path: (built-in)")
	}
	fmt.Fprintln(out)

	if err := settingsService.Validate(); err != nil {
		fmt.Fprintf(out, "Warning: %v\n", err)
	} else {
		fmt.Fprintln(out, "Status: valid")
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	settingsService, err := openSettings()
	if err != nil {
		return err
	}

	path := settingsService.Path()
	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	defaults := domain.DefaultAppSettings()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func formatMaxPrice(price float64) string {
	if price <= 0 {
		return "free only"
	}
	return fmt.Sprintf("$%.2f", price)
}

func formatPlatforms(platforms []domain.Platform) string {
	if len(platforms) == 0 {
		return "any"
	}
	names := make([]string, 0, len(platforms))
	for _, p := range platforms {
		names = append(names, p.Description())
	}
	return strings.Join(names, ", ")
}
