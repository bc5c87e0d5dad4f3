// internal/game/config.go
//
// Immutable game configuration shared read-only by every session.
// Built once per settings load and passed explicitly into each session call.

package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrConfiguration is returned when a Config cannot be built or a session
// cannot be created from it.
var ErrConfiguration = errors.New("game: invalid configuration")

// Config is the dictionary and rule set for a game. It is never mutated
// after NewConfig returns.
type Config struct {
	list          []string
	words         map[string]struct{}
	wordLength    int
	maxRounds     int
	caseSensitive bool
}

// NewConfig normalizes and validates a dictionary.
//
// Rules:
//   - Entries are trimmed; blank entries are skipped; duplicates collapse.
//   - Without caseSensitive, entries are upper-cased.
//   - At least one entry must remain, and all must share one letter length.
//   - maxRounds must be positive.
func NewConfig(words []string, maxRounds int, caseSensitive bool) (*Config, error) {
	if maxRounds <= 0 {
		return nil, fmt.Errorf("maxRounds must be positive, got %d: %w", maxRounds, ErrConfiguration)
	}
	c := &Config{
		words:         make(map[string]struct{}, len(words)),
		maxRounds:     maxRounds,
		caseSensitive: caseSensitive,
	}
	for _, w := range words {
		w = c.Normalize(w)
		if w == "" {
			continue
		}
		if _, dup := c.words[w]; dup {
			continue
		}
		n := utf8.RuneCountInString(w)
		if c.wordLength == 0 {
			c.wordLength = n
		} else if n != c.wordLength {
			return nil, fmt.Errorf("word %q has %d letters, expected %d: %w", w, n, c.wordLength, ErrConfiguration)
		}
		c.words[w] = struct{}{}
		c.list = append(c.list, w)
	}
	if len(c.list) == 0 {
		return nil, fmt.Errorf("dictionary is empty: %w", ErrConfiguration)
	}
	return c, nil
}

// Normalize trims raw and upper-cases it unless the config is case sensitive.
func (c *Config) Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if c.caseSensitive {
		return raw
	}
	return strings.ToUpper(raw)
}

// Contains reports whether an already-normalized word is in the dictionary.
func (c *Config) Contains(word string) bool {
	_, ok := c.words[word]
	return ok
}

// Words returns a copy of the normalized dictionary in load order.
func (c *Config) Words() []string {
	return append([]string(nil), c.list...)
}

// WordLength is the letter count shared by every dictionary entry.
func (c *Config) WordLength() int { return c.wordLength }

// MaxRounds is the number of accepted guesses a session allows.
func (c *Config) MaxRounds() int { return c.maxRounds }

func (c *Config) CaseSensitive() bool { return c.caseSensitive }
