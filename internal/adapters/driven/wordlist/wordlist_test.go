package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
)

func TestNew_SkipsBlankAndCommentLines(t *testing.T) {
	wl, err := New("# header\n\n  dragon \r\nknight\n\n", nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"dragon", "knight"}, wl.words)
	assert.Equal(t, 2, wl.Len())
}

func TestNew_Empty(t *testing.T) {
	for _, text := range []string{"", "\n\n", "   \n# only a comment\n"} {
		_, err := New(text, nil)
		assert.ErrorIs(t, err, domain.ErrEmptyWordList, "%q", text)
	}
}

func TestNext_UsesChooser(t *testing.T) {
	var gotN []int
	picks := []int{2, 0, 1}
	choose := func(n int) int {
		gotN = append(gotN, n)
		i := picks[0]
		picks = picks[1:]
		return i
	}

	wl, err := New("alpha\nbravo\ncharlie", choose)
	require.NoError(t, err)

	assert.Equal(t, "charlie", wl.Next())
	assert.Equal(t, "alpha", wl.Next())
	assert.Equal(t, "bravo", wl.Next())
	assert.Equal(t, []int{3, 3, 3}, gotN)
}

func TestNext_DefaultChooserStaysInRange(t *testing.T) {
	wl, err := New("alpha\nbravo", nil)
	require.NoError(t, err)

	for range 100 {
		assert.Contains(t, []string{"alpha", "bravo"}, wl.Next())
	}
}

func TestDefault(t *testing.T) {
	wl, err := Default()

	require.NoError(t, err)
	assert.Greater(t, wl.Len(), 500)
	for _, w := range wl.words {
		assert.NotContains(t, w, " ")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("nebula\nquasar\n"), 0o600))

	wl, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 2, wl.Len())
}

func TestLoad_EmptyPathUsesEmbedded(t *testing.T) {
	wl, err := Load("")
	require.NoError(t, err)

	embedded, err := Default()
	require.NoError(t, err)
	assert.Equal(t, embedded.Len(), wl.Len())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n"), 0o600))
	_, err = Load(path)
	assert.ErrorIs(t, err, domain.ErrEmptyWordList)
}
