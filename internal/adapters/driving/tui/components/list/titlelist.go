// Package list provides list display components for the terminal UI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/undiscovered/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/undiscovered/internal/core/domain"
)

// TitleList displays collected titles in a navigable single-choice list.
type TitleList struct {
	titles   []domain.TitleRecord
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewTitleList creates a new title list component.
func NewTitleList(s *styles.Styles) *TitleList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &TitleList{
		styles: s,
		width:  80,
		height: 20,
	}
}

// Init initialises the title list.
func (l *TitleList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *TitleList) Update(msg tea.Msg) (*TitleList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "home", "g":
			l.selected = 0
		case "end", "G":
			if len(l.titles) > 0 {
				l.selected = len(l.titles) - 1
			}
		}
	}
	return l, nil
}

// View renders the visible window of the list.
func (l *TitleList) View() string {
	if len(l.titles) == 0 {
		return l.styles.Muted.Render("No titles matched your criteria")
	}

	lines := make([]string, 0, len(l.titles)+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Titles (%d)", len(l.titles))), "")

	start, end := l.window()
	for i := start; i < end; i++ {
		lines = append(lines, l.renderTitle(i, &l.titles[i]))
	}

	if end < len(l.titles) {
		lines = append(lines, l.styles.Muted.Render(fmt.Sprintf("  … %d more", len(l.titles)-end)))
	}

	return strings.Join(lines, "\n")
}

// window returns the range of rows that fits the height and keeps the
// selection visible.
func (l *TitleList) window() (int, int) {
	visible := l.height - 4
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.titles) {
		end = len(l.titles)
	}
	return start, end
}

// renderTitle formats one row.
func (l *TitleList) renderTitle(index int, title *domain.TitleRecord) string {
	label := truncate(title.Label(), l.width-4)

	if index == l.selected {
		return l.styles.Selected.Render("> " + label)
	}
	return l.styles.Normal.Render("  " + label)
}

func truncate(s string, maxLen int) string {
	if maxLen < 10 {
		maxLen = 10
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}

// SetTitles replaces the list contents and resets the selection.
func (l *TitleList) SetTitles(titles []domain.TitleRecord) {
	l.titles = titles
	l.selected = 0
}

// Titles returns the current titles.
func (l *TitleList) Titles() []domain.TitleRecord {
	return l.titles
}

// Selected returns the index of the selected title.
func (l *TitleList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *TitleList) SetSelected(index int) {
	if index >= 0 && index < len(l.titles) {
		l.selected = index
	}
}

// SelectedTitle returns the currently selected title, or nil if none.
func (l *TitleList) SelectedTitle() *domain.TitleRecord {
	if len(l.titles) == 0 || l.selected < 0 || l.selected >= len(l.titles) {
		return nil
	}
	return &l.titles[l.selected]
}

// MoveUp moves selection up.
func (l *TitleList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *TitleList) MoveDown() {
	if l.selected < len(l.titles)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *TitleList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of titles.
func (l *TitleList) Count() int {
	return len(l.titles)
}
