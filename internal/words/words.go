// internal/words/words.go
//
// Dictionary loading for game settings.
//
// Responsibilities:
//   - Read word lists from a file (one word per line, # comments allowed).
//   - Fall back to the embedded default list from the assets package.
//   - Report list shape (count, letter lengths) for diagnostics.
//
// Normalization (case folding, dedupe, uniform length) is the job of
// game.NewConfig; this package only gets the raw entries off disk.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/wordle-tracker/assets"
)

// Load reads a word list from path, or the embedded default when path is empty.
func Load(path string) ([]string, error) {
	if path == "" {
		f, err := assets.FS.Open(assets.DefaultList)
		if err != nil {
			return nil, fmt.Errorf("open embedded word list: %w", err)
		}
		defer f.Close()
		return Parse(f)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer f.Close()
	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return list, nil
}

// Parse reads one entry per line, trimming whitespace and skipping blank
// lines and lines starting with '#'.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// Lengths returns the distinct letter counts found in list, ascending.
// A healthy dictionary has exactly one.
func Lengths(list []string) []int {
	seen := make(map[int]struct{})
	for _, w := range list {
		seen[utf8.RuneCountInString(strings.TrimSpace(w))] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
