// Package assets bundles the default data shipped inside the binary:
//   - words.txt      the ordered default dictionary
//   - frequency.tsv  usage frequencies (lang, word, frequency)
//   - sql/*.sql      migrations for the SQLite frequency store
package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed words.txt frequency.tsv sql/*.sql
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// WordLines returns the non-comment lines of the embedded dictionary, in file order.
func WordLines() ([]string, error) {
	return readLines("words.txt")
}

// FrequencyLines returns the non-comment lines of the embedded frequency table.
func FrequencyLines() ([]string, error) {
	return readLines("frequency.tsv")
}

// Migrations exposes the embedded sql directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "sql")
	if err != nil {
		// sql/ is embedded at compile time; Sub only fails on a malformed path.
		panic(err)
	}
	return sub
}
