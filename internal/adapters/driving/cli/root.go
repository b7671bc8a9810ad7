// Package cli provides the cobra command tree for undiscovered.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
	"github.com/custodia-labs/undiscovered/internal/core/ports/driven"
	"github.com/custodia-labs/undiscovered/internal/core/ports/driving"
	"github.com/custodia-labs/undiscovered/internal/logger"
)

var version = "dev"

var (
	verbose   bool
	configDir string
)

// SettingsFactory opens the settings service for a config directory.
// An empty directory means the default location.
type SettingsFactory func(configDir string) (driving.SettingsService, error)

// DiscoveryFactory builds the discovery service from loaded settings.
type DiscoveryFactory func(settings *domain.AppSettings, progress driven.ProgressReporter) (driving.DiscoveryService, error)

var (
	newSettingsService  SettingsFactory
	newDiscoveryService DiscoveryFactory
	resultActionService driving.ResultActionService
)

// isTerminal reports whether a file descriptor is attached to a terminal.
var isTerminal = func(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

var rootCmd = &cobra.Command{
	Use:   "undiscovered",
	Short: "Find little-known games on the Steam store",
	Long: `undiscovered searches the Steam store with random words and keeps the
titles that match your price, review and platform limits.

When run in a terminal it asks for your criteria, shows progress while
collecting, and lets you pick a title to open in the browser.

Controls in the picker:
  ↑/k, ↓/j - Navigate
  Enter    - Open store page
  c        - Copy store URL
  ?        - Toggle help
  q/esc    - Quit`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runDiscover,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.undiscovered)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetSettingsFactory sets how the settings service is opened.
func SetSettingsFactory(f SettingsFactory) {
	newSettingsService = f
}

// SetDiscoveryFactory sets how the discovery service is built.
func SetDiscoveryFactory(f DiscoveryFactory) {
	newDiscoveryService = f
}

// SetResultActionService sets the service behind the picker actions.
func SetResultActionService(s driving.ResultActionService) {
	resultActionService = s
}

// Root returns the root command so main can run it with a context.
func Root() *cobra.Command {
	return rootCmd
}

func openSettings() (driving.SettingsService, error) {
	if newSettingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	return newSettingsService(configDir)
}

// interactive reports whether both stdin and stdout are terminals.
func interactive() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}
