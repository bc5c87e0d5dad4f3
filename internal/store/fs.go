package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/robalobadob/wordle-tracker/internal/profile"
)

const (
	extJSON = ".json"
	extZstd = ".json.zst"
)

// FS stores each player as {dir}/{id}.json, or {id}.json.zst when compress
// is set. Load accepts either form so the flag can be flipped on a live data dir.
type FS struct {
	dir      string
	compress bool
}

// NewFS creates dir if needed and returns a store rooted there.
func NewFS(dir string, compress bool) (*FS, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &FS{dir: dir, compress: compress}, nil
}

func (s *FS) path(id, ext string) string {
	return filepath.Join(s.dir, id+ext)
}

func (s *FS) Load(ctx context.Context, id string) (*profile.Profile, error) {
	exts := []string{extJSON, extZstd}
	if s.compress {
		exts = []string{extZstd, extJSON}
	}
	for _, ext := range exts {
		b, err := os.ReadFile(s.path(id, ext))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read player %s: %w", id, err)
		}
		if ext == extZstd {
			if b, err = decompress(b); err != nil {
				return nil, fmt.Errorf("decompress player %s: %w", id, err)
			}
		}
		p, err := decode(b)
		if err != nil {
			return nil, fmt.Errorf("decode player %s: %w", id, err)
		}
		return p, nil
	}
	return nil, ErrNotFound
}

// Save writes to a temp file and renames it over the target, then removes
// the file in the other encoding if one is left behind.
func (s *FS) Save(ctx context.Context, p *profile.Profile) error {
	b, err := encode(p)
	if err != nil {
		return fmt.Errorf("encode player %s: %w", p.User.ID, err)
	}
	ext, stale := extJSON, extZstd
	if s.compress {
		ext, stale = extZstd, extJSON
		if b, err = compress(b); err != nil {
			return fmt.Errorf("compress player %s: %w", p.User.ID, err)
		}
	}

	tmp, err := os.CreateTemp(s.dir, p.User.ID+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write player %s: %w", p.User.ID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close player %s: %w", p.User.ID, err)
	}
	if err := os.Rename(tmp.Name(), s.path(p.User.ID, ext)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename player %s: %w", p.User.ID, err)
	}
	if err := os.Remove(s.path(p.User.ID, stale)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove stale player file: %w", err)
	}
	return nil
}

func (s *FS) Close() error { return nil }

func compress(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := enc.Write(b); err != nil {
		enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(b []byte) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return io.ReadAll(dec)
}
