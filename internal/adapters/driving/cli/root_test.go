package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/undiscovered/internal/adapters/driven/config/file"
	"github.com/custodia-labs/undiscovered/internal/core/domain"
	"github.com/custodia-labs/undiscovered/internal/core/ports/driven"
	"github.com/custodia-labs/undiscovered/internal/core/ports/driving"
	"github.com/custodia-labs/undiscovered/internal/core/services"
)

// MockDiscoveryService implements driving.DiscoveryService for CLI tests.
type MockDiscoveryService struct {
	Collection *domain.Collection
	Err        error
	Calls      []domain.CollectOptions
	Progress   driven.ProgressReporter
}

func (m *MockDiscoveryService) Collect(_ context.Context, opts domain.CollectOptions) (*domain.Collection, error) {
	m.Calls = append(m.Calls, opts)
	if m.Progress != nil && m.Collection != nil {
		m.Progress.Finished(len(m.Collection.Titles), m.Collection.Rounds)
	}
	return m.Collection, m.Err
}

// MockResultActionService implements driving.ResultActionService for CLI tests.
type MockResultActionService struct{}

func (m *MockResultActionService) OpenStorePage(_ context.Context, _ *domain.TitleRecord) error {
	return nil
}

func (m *MockResultActionService) CopyStoreURL(_ context.Context, _ *domain.TitleRecord) error {
	return nil
}

// testServices holds what setupTestServices wired.
type testServices struct {
	dir       string
	discovery *MockDiscoveryService
	settings  *domain.AppSettings
}

// setupTestServices wires a temp config directory and a mock discovery
// service, and restores all package state when the test ends.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	ts := &testServices{
		dir: t.TempDir(),
		discovery: &MockDiscoveryService{
			Collection: &domain.Collection{RunID: "run-1", Rounds: 1},
		},
	}

	origSettings, origDiscovery, origActions := newSettingsService, newDiscoveryService, resultActionService
	origTerminal, origAsk, origPicker := isTerminal, askCriteria, runPicker

	SetSettingsFactory(func(dir string) (driving.SettingsService, error) {
		if dir == "" {
			dir = ts.dir
		}
		store, err := file.NewConfigStore(dir)
		if err != nil {
			return nil, err
		}
		return services.NewSettingsService(store), nil
	})
	SetDiscoveryFactory(func(settings *domain.AppSettings, progress driven.ProgressReporter) (driving.DiscoveryService, error) {
		ts.settings = settings
		ts.discovery.Progress = progress
		return ts.discovery, nil
	})
	SetResultActionService(&MockResultActionService{})
	isTerminal = func(uintptr) bool { return false }

	t.Cleanup(func() {
		newSettingsService, newDiscoveryService, resultActionService = origSettings, origDiscovery, origActions
		isTerminal, askCriteria, runPicker = origTerminal, origAsk, origPicker
		resetFlags()
	})
	resetFlags()
	return ts
}

// resetFlags clears parsed flag state so commands can run again.
func resetFlags() {
	verbose, configDir = false, ""
	discoverMaxPrice = domain.DefaultMaxPrice
	discoverMaxReviews = domain.DefaultMaxReviews
	discoverResults = domain.DefaultResults
	discoverNoPrompt, discoverJSON = false, false
	configInitForce = false

	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		}
		f.Changed = false
	}
	rootCmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)
	configInitCmd.Flags().VisitAll(reset)
	discoverPlatforms = nil
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	require.Equal(t, "undiscovered", rootCmd.Use)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	require.True(t, names["config"])
	require.True(t, names["version"])
}

func TestOpenSettings_NotConfigured(t *testing.T) {
	setupTestServices(t)
	newSettingsService = nil

	_, _, err := execute(t, "config", "show")
	require.EqualError(t, err, "settings service not configured")
}
