// Package progress renders collection progress to the terminal.
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/undiscovered/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/undiscovered/internal/core/ports/driven"
)

// Ensure Reporter implements the interface.
var _ driven.ProgressReporter = (*Reporter)(nil)

// clearLine returns the cursor to column 0 and erases the line.
const clearLine = "\r\x1b[2K"

// Reporter prints one status line per round.
// On a terminal the line is rewritten in place; otherwise every event gets
// its own line so logs stay readable.
type Reporter struct {
	mu      sync.Mutex
	out     io.Writer
	styles  *styles.Styles
	inPlace bool
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer, s *styles.Styles, inPlace bool) *Reporter {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Reporter{out: out, styles: s, inPlace: inPlace}
}

// RoundStarted prints "[collected/quota] • term".
func (r *Reporter) RoundStarted(_, collected, quota int, term string) {
	counter := r.styles.Muted.Render(fmt.Sprintf("[%d/%d]", collected, quota))
	r.line(counter + " • " + r.styles.Normal.Render(term))
}

// RateLimited announces the pause before the next round.
func (r *Reporter) RateLimited(pause time.Duration) {
	r.line(r.styles.Warning.Render(fmt.Sprintf("Too many store requests, sleeping for %s", pause)))
}

// Finished prints the summary.
func (r *Reporter) Finished(collected, rounds int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.inPlace {
		fmt.Fprint(r.out, clearLine)
	}
	fmt.Fprintln(r.out, r.styles.Success.Render(
		fmt.Sprintf("Found %d titles in %d rounds", collected, rounds)))
}

func (r *Reporter) line(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.inPlace {
		fmt.Fprint(r.out, clearLine+text)
		return
	}
	fmt.Fprintln(r.out, text)
}

// Banner renders the splash title.
func Banner(s *styles.Styles) string {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return s.Banner.Render(lipgloss.JoinVertical(lipgloss.Left,
		"undiscovered",
		s.Muted.Render("random finds from the Steam store"),
	))
}
