// internal/store/store.go
//
// Persistence for player documents.
// Implementations:
//   - Memory: process-local map (development, tests).
//   - FS:     one JSON file per player under a directory, optionally zstd-compressed.
//   - SQL:    a players table in SQLite or Postgres.
//
// Stores hand out copies: mutating a loaded *profile.Profile never changes
// stored state until Save is called. Stores do not serialize concurrent
// writers to the same player; callers own that.

package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/robalobadob/wordle-tracker/internal/profile"
)

// ErrNotFound is returned by Load when no document exists for the id.
var ErrNotFound = errors.New("player not found")

// Store defines the persistence interface for player documents.
type Store interface {
	// Load returns the document stored under id, or ErrNotFound.
	Load(ctx context.Context, id string) (*profile.Profile, error)

	// Save creates or replaces the document under p.User.ID.
	Save(ctx context.Context, p *profile.Profile) error

	Close() error
}

func encode(p *profile.Profile) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

func decode(b []byte) (*profile.Profile, error) {
	var p profile.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
