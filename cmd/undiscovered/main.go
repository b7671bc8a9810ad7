// Command undiscovered finds little-known games on the Steam store.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/undiscovered/internal/adapters/driven/config/file"
	"github.com/custodia-labs/undiscovered/internal/adapters/driven/steam"
	"github.com/custodia-labs/undiscovered/internal/adapters/driven/wordlist"
	"github.com/custodia-labs/undiscovered/internal/adapters/driving/cli"
	"github.com/custodia-labs/undiscovered/internal/core/domain"
	"github.com/custodia-labs/undiscovered/internal/core/ports/driven"
	"github.com/custodia-labs/undiscovered/internal/core/ports/driving"
	"github.com/custodia-labs/undiscovered/internal/core/services"
	"github.com/custodia-labs/undiscovered/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetSettingsFactory(openSettings)
	cli.SetDiscoveryFactory(buildDiscovery)
	cli.SetResultActionService(services.NewResultActionService())

	if err := cli.Root().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func openSettings(configDir string) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	return services.NewSettingsService(store), nil
}

func buildDiscovery(settings *domain.AppSettings, progress driven.ProgressReporter) (driving.DiscoveryService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	terms, err := wordlist.Load(settings.WordList.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded %d search terms", terms.Len())

	client := steam.NewClient(steam.Config{
		BaseURL:           settings.Store.BaseURL,
		Timeout:           settings.Store.Timeout(),
		RequestsPerSecond: settings.Store.RequestsPerSecond,
	})

	collector := services.NewCollector(terms, client, client)
	collector.SetPause(settings.Collect.Pause())
	collector.SetMaxConcurrency(settings.Collect.MaxConcurrency)
	collector.SetProgressReporter(progress)
	return collector, nil
}
