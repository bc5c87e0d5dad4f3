// Package identity maps human-readable player names to opaque, stable ids.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"unicode/utf8"
)

// MinNameLength is the shortest accepted player name.
const MinNameLength = 3

// ErrInvalidName is returned for names shorter than MinNameLength.
var ErrInvalidName = errors.New("username must be at least 3 characters")

// NormalizeName trims surrounding whitespace.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// ValidateName checks a normalized name.
func ValidateName(name string) error {
	if utf8.RuneCountInString(name) < MinNameLength {
		return ErrInvalidName
	}
	return nil
}

// ID is the hex sha256 of name. It is used as the persistence key and is
// never reversed.
func ID(name string) string {
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:])
}
