// Package freq answers "how common is this word" for ranking tie-breaks.
//
// Two sources are provided:
//   - Table:  an in-memory map built from a TSV (lang, word, frequency).
//   - SQLite: the same data kept in a SQLite database.
//
// Both return 0 for unknown words and never fail a lookup.
package freq

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/robalobadob/wordle-assist/assets"
)

// Source is a frequency oracle that may hold resources.
type Source interface {
	Frequency(word, lang string) float64
	Close() error
}

// Entry is one row of frequency data.
type Entry struct {
	Lang      string
	Word      string
	Frequency float64
}

// Table is an in-memory frequency oracle. It is read-only after construction.
type Table struct {
	m map[string]map[string]float64 // lang -> word -> frequency
}

// NewTable builds a Table from entries. Later duplicates win.
func NewTable(entries []Entry) *Table {
	t := &Table{m: make(map[string]map[string]float64)}
	for _, e := range entries {
		byWord, ok := t.m[e.Lang]
		if !ok {
			byWord = make(map[string]float64)
			t.m[e.Lang] = byWord
		}
		byWord[e.Word] = e.Frequency
	}
	return t
}

// DefaultTable builds a Table from the embedded frequency data.
func DefaultTable() (*Table, error) {
	entries, err := DefaultEntries()
	if err != nil {
		return nil, err
	}
	return NewTable(entries), nil
}

// DefaultEntries parses the embedded frequency data.
func DefaultEntries() ([]Entry, error) {
	lines, err := assets.FrequencyLines()
	if err != nil {
		return nil, fmt.Errorf("read embedded frequencies: %w", err)
	}
	return ParseTSV(strings.NewReader(strings.Join(lines, "\n")))
}

// ParseTSV reads "lang<TAB>word<TAB>frequency" lines. Blank and '#' lines are skipped.
func ParseTSV(r io.Reader) ([]Entry, error) {
	var out []Entry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		fields := strings.Split(s, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want 3 fields, got %d", line, len(fields))
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if f < 0 {
			return nil, fmt.Errorf("line %d: negative frequency", line)
		}
		out = append(out, Entry{
			Lang:      strings.ToLower(strings.TrimSpace(fields[0])),
			Word:      strings.ToLower(strings.TrimSpace(fields[1])),
			Frequency: f,
		})
	}
	return out, sc.Err()
}

// Frequency returns the stored frequency or 0.
func (t *Table) Frequency(word, lang string) float64 {
	return t.m[strings.ToLower(lang)][word]
}

// Entries returns every row sorted by lang then word.
func (t *Table) Entries() []Entry {
	var out []Entry
	for lang, byWord := range t.m {
		for w, f := range byWord {
			out = append(out, Entry{Lang: lang, Word: w, Frequency: f})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Lang != out[j].Lang {
			return out[i].Lang < out[j].Lang
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// Close is a no-op.
func (t *Table) Close() error { return nil }
