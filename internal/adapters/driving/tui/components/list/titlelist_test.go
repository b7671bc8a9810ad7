package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
)

func sampleTitles() []domain.TitleRecord {
	return []domain.TitleRecord{
		{ID: 1, Name: "Lantern Keeper", Reviews: domain.ReviewSummary{NumReviews: 3}},
		{ID: 2, Name: "Salt Marsh", Price: &domain.Price{Final: 299, FinalFormatted: "$2.99"}},
		{ID: 3, Name: "Moth Garden", Reviews: domain.ReviewSummary{NumReviews: 11}},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewTitleList(t *testing.T) {
	list := NewTitleList(nil)

	require.NotNil(t, list)
	assert.NotNil(t, list.styles)
	assert.Equal(t, 0, list.Count())
	assert.Nil(t, list.SelectedTitle())
	assert.Nil(t, list.Init())
}

func TestTitleList_SetTitles(t *testing.T) {
	list := NewTitleList(nil)
	list.SetTitles(sampleTitles())
	list.SetSelected(2)

	list.SetTitles(sampleTitles()[:2])

	assert.Equal(t, 2, list.Count())
	assert.Equal(t, 0, list.Selected())
	assert.Len(t, list.Titles(), 2)
}

func TestTitleList_Navigation(t *testing.T) {
	list := NewTitleList(nil)
	list.SetTitles(sampleTitles())

	list.MoveUp()
	assert.Equal(t, 0, list.Selected())

	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, list.Selected())

	list, _ = list.Update(keyRunes("j"))
	list, _ = list.Update(keyRunes("j"))
	assert.Equal(t, 2, list.Selected())

	list, _ = list.Update(keyRunes("k"))
	assert.Equal(t, 1, list.Selected())

	list, _ = list.Update(keyRunes("G"))
	assert.Equal(t, 2, list.Selected())

	list, _ = list.Update(keyRunes("g"))
	assert.Equal(t, 0, list.Selected())
	assert.Equal(t, uint32(1), list.SelectedTitle().ID)
}

func TestTitleList_SetSelected_OutOfRange(t *testing.T) {
	list := NewTitleList(nil)
	list.SetTitles(sampleTitles())

	list.SetSelected(5)
	list.SetSelected(-1)

	assert.Equal(t, 0, list.Selected())
}

func TestTitleList_View(t *testing.T) {
	list := NewTitleList(nil)
	list.SetTitles(sampleTitles())

	view := list.View()

	assert.Contains(t, view, "Titles (3)")
	assert.Contains(t, view, "Lantern Keeper • Free • 3 reviews")
	assert.Contains(t, view, "Salt Marsh • $2.99 • 0 reviews")
	assert.Contains(t, view, "> Lantern Keeper")
}

func TestTitleList_View_Empty(t *testing.T) {
	list := NewTitleList(nil)

	assert.Contains(t, list.View(), "No titles")
}

func TestTitleList_View_ScrollsToSelection(t *testing.T) {
	list := NewTitleList(nil)
	list.SetTitles(sampleTitles())
	list.SetDimensions(80, 6) // two visible rows
	list.SetSelected(2)

	view := list.View()

	assert.NotContains(t, view, "Lantern Keeper")
	assert.Contains(t, view, "> Moth Garden")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "abcdefghi…", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "abcdefghi…", truncate("abcdefghijklmnop", 3))
}
