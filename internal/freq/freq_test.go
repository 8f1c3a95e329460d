package freq

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-assist/internal/solver"
)

// Both sources must satisfy the solver's oracle interface.
var (
	_ solver.FrequencyOracle = (*Table)(nil)
	_ solver.FrequencyOracle = (*SQLite)(nil)
)

func TestParseTSV(t *testing.T) {
	in := "# header\nen\tCrane\t0.5\n\nde\tkrane\t1e-3\n"
	entries, err := ParseTSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Lang: "en", Word: "crane", Frequency: 0.5},
		{Lang: "de", Word: "krane", Frequency: 0.001},
	}, entries)
}

func TestParseTSV_Errors(t *testing.T) {
	cases := map[string]string{
		"missing field":  "en\tcrane\n",
		"bad number":     "en\tcrane\tlots\n",
		"negative value": "en\tcrane\t-1\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTSV(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestTable(t *testing.T) {
	tb := NewTable([]Entry{
		{Lang: "en", Word: "crane", Frequency: 0.5},
		{Lang: "en", Word: "slate", Frequency: 0.25},
		{Lang: "de", Word: "crane", Frequency: 0.1},
	})
	assert.Equal(t, 0.5, tb.Frequency("crane", "en"))
	assert.Equal(t, 0.5, tb.Frequency("crane", "EN"))
	assert.Equal(t, 0.1, tb.Frequency("crane", "de"))
	assert.Zero(t, tb.Frequency("zebra", "en"))
	assert.Zero(t, tb.Frequency("crane", "fr"))
	assert.Len(t, tb.Entries(), 3)
	assert.Equal(t, "de", tb.Entries()[0].Lang)
	assert.NoError(t, tb.Close())
}

func TestDefaultTable(t *testing.T) {
	tb, err := DefaultTable()
	require.NoError(t, err)
	assert.Greater(t, tb.Frequency("about", "en"), tb.Frequency("zebra", "en"))
}

func TestSQLite_MemorySeedsDefaults(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	defer s.Close()

	tb, err := DefaultTable()
	require.NoError(t, err)
	assert.InDelta(t, tb.Frequency("about", "en"), s.Frequency("about", "en"), 1e-12)
	assert.Zero(t, s.Frequency("qqqqq", "en"))

	require.NoError(t, s.Seed(ctx, []Entry{{Lang: "en", Word: "about", Frequency: 0.75}}))
	assert.Equal(t, 0.75, s.Frequency("about", "en"))
}

func TestSQLite_FileReopenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "data", "freq.db")

	s, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.Seed(ctx, []Entry{{Lang: "en", Word: "zebra", Frequency: 0.9}}))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, 0.9, s.Frequency("zebra", "en"), "existing rows are not reseeded")
}

func TestLoad(t *testing.T) {
	src, err := Load(context.Background(), "")
	require.NoError(t, err)
	_, ok := src.(*Table)
	assert.True(t, ok)

	src, err = Load(context.Background(), ":memory:")
	require.NoError(t, err)
	defer src.Close()
	_, ok = src.(*SQLite)
	assert.True(t, ok)
}
