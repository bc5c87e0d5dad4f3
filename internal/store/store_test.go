package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/robalobadob/wordle-tracker/internal/config"
	"github.com/robalobadob/wordle-tracker/internal/profile"
)

// exerciseStore runs the behavior every Store must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	p := profile.New("alice", 6, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if _, err := s.Load(ctx, p.User.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before save, got %v", err)
	}
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx, p.User.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.User.Username != "alice" || len(got.Stats.GuessDistribution) != 6 {
		t.Fatalf("unexpected document %+v", got)
	}

	got.Stats.GamesPlayed = 99
	again, err := s.Load(ctx, p.User.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.Stats.GamesPlayed != 0 {
		t.Fatalf("loaded documents must be copies")
	}

	got.Stats.GamesPlayed = 3
	if err := s.Save(ctx, got); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	again, err = s.Load(ctx, p.User.ID)
	if err != nil {
		t.Fatalf("reload after overwrite: %v", err)
	}
	if again.Stats.GamesPlayed != 3 {
		t.Fatalf("expected overwritten document, got %d games", again.Stats.GamesPlayed)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestFSStorePlain(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFS(dir, false)
	if err != nil {
		t.Fatalf("new fs store: %v", err)
	}
	exerciseStore(t, s)

	matches, _ := filepath.Glob(filepath.Join(dir, "*.json"))
	if len(matches) != 1 {
		t.Fatalf("expected one json file, got %v", matches)
	}
}

func TestFSStoreCompressed(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFS(dir, true)
	if err != nil {
		t.Fatalf("new fs store: %v", err)
	}
	exerciseStore(t, s)

	matches, _ := filepath.Glob(filepath.Join(dir, "*.json.zst"))
	if len(matches) != 1 {
		t.Fatalf("expected one zst file, got %v", matches)
	}
}

func TestFSStoreSwitchesEncoding(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	plain, _ := NewFS(dir, false)
	p := profile.New("bobby", 6, time.Now())
	if err := plain.Save(ctx, p); err != nil {
		t.Fatalf("save plain: %v", err)
	}

	zs, _ := NewFS(dir, true)
	got, err := zs.Load(ctx, p.User.ID)
	if err != nil {
		t.Fatalf("compressed store should read plain file: %v", err)
	}
	if err := zs.Save(ctx, got); err != nil {
		t.Fatalf("save compressed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, p.User.ID+".json")); !os.IsNotExist(err) {
		t.Fatalf("expected stale plain file removed, got %v", err)
	}
}

func TestFSStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	s, _ := NewFS(dir, false)
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{bad json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := s.Load(context.Background(), "bad"); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestSQLiteStore(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "db", "wordle.db")
	s, err := OpenSQL(context.Background(), DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

func TestSQLiteMigrationsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "wordle.db")
	ctx := context.Background()
	first, err := OpenSQL(ctx, DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	first.Close()
	second, err := OpenSQL(ctx, DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	second.Close()
}

func TestSQLiteDSN(t *testing.T) {
	cases := map[string]string{
		"data/app.db":              "data/app.db?" + sqliteParams,
		"file:app.db?cache=shared": "file:app.db?cache=shared&" + sqliteParams,
		"app.db?_loc=auto":         "app.db?_loc=auto&" + sqliteParams,
	}
	for in, want := range cases {
		if got := sqliteDSN(in); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

func TestSQLiteForeignKeysOnEveryConnection(t *testing.T) {
	dir := t.TempDir()
	db, err := openSQLite(filepath.Join(dir, "nested", "fk.db") + "?cache=private")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(3)

	ctx := context.Background()
	var conns []*sql.Conn
	for i := 0; i < 3; i++ {
		c, err := db.Conn(ctx)
		if err != nil {
			t.Fatalf("conn: %v", err)
		}
		conns = append(conns, c)
	}
	for i, c := range conns {
		var on int
		if err := c.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&on); err != nil {
			t.Fatalf("conn %d: %v", i, err)
		}
		if on != 1 {
			t.Fatalf("expected foreign keys on for conn %d, got %d", i, on)
		}
		c.Close()
	}
}

func TestRebind(t *testing.T) {
	pg := &SQL{driver: DriverPostgres}
	if got := pg.rebind(`SELECT a FROM t WHERE x=? AND y=?`); got != `SELECT a FROM t WHERE x=$1 AND y=$2` {
		t.Fatalf("unexpected postgres query %s", got)
	}
	lite := &SQL{driver: DriverSQLite}
	if got := lite.rebind(`x=?`); got != `x=?` {
		t.Fatalf("sqlite query must be unchanged, got %s", got)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	if s, err := Open(ctx, config.StoreConfig{Driver: "memory"}); err != nil || s == nil {
		t.Fatalf("memory: %v", err)
	}
	if _, err := Open(ctx, config.StoreConfig{Driver: "file", DataDir: t.TempDir()}); err != nil {
		t.Fatalf("file: %v", err)
	}
	if _, err := Open(ctx, config.StoreConfig{Driver: "mongo"}); err == nil {
		t.Fatalf("expected unknown driver error")
	}
}
