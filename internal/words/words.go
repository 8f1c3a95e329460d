// Provides the dictionary the solver narrows.
//
// Responsibilities:
//   - Load an ordered word list from a file, or fall back to the embedded default.
//   - Normalise entries (trim, lowercase) and keep only 5-letter a–z words.
//   - Preserve file order: the leading entries form the opening pool.
//
// File format:
//   - One word per line; blank lines and lines starting with '#' are skipped.
//   - Duplicates keep their first position.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/robalobadob/wordle-assist/assets"
	"github.com/robalobadob/wordle-assist/internal/solver"
)

var ErrEmpty = errors.New("words: dictionary is empty")

// Dictionary is an ordered, de-duplicated, read-only word list.
type Dictionary struct {
	words []string
	index map[string]int
}

// Load reads the dictionary at path, or the embedded default when path is empty.
func Load(path string) (*Dictionary, error) {
	if path == "" {
		lines, err := assets.WordLines()
		if err != nil {
			return nil, fmt.Errorf("read embedded words: %w", err)
		}
		return FromList(lines)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return d, nil
}

// Parse reads one word per line from r.
func Parse(r io.Reader) (*Dictionary, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return FromList(lines)
}

// FromList normalises list into a Dictionary, dropping invalid entries.
func FromList(list []string) (*Dictionary, error) {
	d := &Dictionary{index: make(map[string]int, len(list))}
	for _, line := range list {
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" || strings.HasPrefix(w, "#") || !solver.ValidWord(w) {
			continue
		}
		if _, dup := d.index[w]; dup {
			continue
		}
		d.index[w] = len(d.words)
		d.words = append(d.words, w)
	}
	if len(d.words) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// Words returns a copy of the words in dictionary order.
func (d *Dictionary) Words() []string { return slices.Clone(d.words) }

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.index[strings.ToLower(w)]
	return ok
}

// Index returns w's position, or -1.
func (d *Dictionary) Index(w string) int {
	if i, ok := d.index[strings.ToLower(w)]; ok {
		return i
	}
	return -1
}

// Head returns up to n leading words.
func (d *Dictionary) Head(n int) []string {
	return slices.Clone(d.words[:min(max(n, 0), len(d.words))])
}
