package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-assist/internal/solver"
)

func TestLoad_Embedded(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	assert.Greater(t, d.Len(), solver.OpeningPoolSize)
	assert.Equal(t, "arose", d.Words()[0])
	assert.Len(t, d.Head(solver.OpeningPoolSize), solver.OpeningPoolSize)
	for _, w := range d.Words() {
		assert.True(t, solver.ValidWord(w), w)
	}
}

func TestParse_NormalisesAndKeepsOrder(t *testing.T) {
	in := strings.Join([]string{
		"# comment",
		"Crane",
		"  slate ",
		"",
		"toolong",
		"ab1de",
		"crane",
		"trace",
	}, "\n")
	d, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "trace"}, d.Words())
	assert.Equal(t, 1, d.Index("SLATE"))
	assert.Equal(t, -1, d.Index("zebra"))
	assert.True(t, d.Contains("trace"))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("zebra\napple\n"), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "apple"}, d.Words())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("# nothing\n\nab\n"))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestWords_ReturnsCopy(t *testing.T) {
	d, err := FromList([]string{"crane", "slate"})
	require.NoError(t, err)
	w := d.Words()
	w[0] = "zzzzz"
	assert.Equal(t, "crane", d.Words()[0])
	assert.Empty(t, d.Head(-1))
}
