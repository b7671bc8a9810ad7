package services

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
	"github.com/custodia-labs/undiscovered/internal/core/ports/driving"
	"github.com/custodia-labs/undiscovered/internal/logger"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// ResultActionService provides actions on collected titles.
type ResultActionService struct {
	openURL    func(url string) error
	copyToClip func(text string) error
}

// NewResultActionService creates a new result action service.
func NewResultActionService() *ResultActionService {
	return &ResultActionService{
		openURL:    openURL,
		copyToClip: clipboard.WriteAll,
	}
}

// OpenStorePage opens the title's store page in the default browser.
func (s *ResultActionService) OpenStorePage(_ context.Context, title *domain.TitleRecord) error {
	if title == nil {
		return fmt.Errorf("%w: title is nil", domain.ErrInvalidInput)
	}

	url := title.StoreURL()
	logger.Debug("Opening %s", url)
	if err := s.openURL(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// CopyStoreURL copies the title's store URL to the system clipboard.
func (s *ResultActionService) CopyStoreURL(_ context.Context, title *domain.TitleRecord) error {
	if title == nil {
		return fmt.Errorf("%w: title is nil", domain.ErrInvalidInput)
	}

	if err := s.copyToClip(title.StoreURL()); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// openURL hands a URL to the platform's default handler.
func openURL(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("open", url)
	case osLinux:
		cmd = exec.Command("xdg-open", url)
	case osWindows:
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
