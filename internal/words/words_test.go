package words

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseSkipsBlanksAndComments(t *testing.T) {
	got, err := Parse(strings.NewReader("# header\ncrane\n\n  slate  \n#skip\ntrace\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"crane", "slate", "trace"}) {
		t.Fatalf("unexpected words %v", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("crane\nslate\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 words, got %d", len(got))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("expected embedded words")
	}
	if l := Lengths(got); !reflect.DeepEqual(l, []int{5}) {
		t.Fatalf("expected uniform 5-letter defaults, got lengths %v", l)
	}
}

func TestLengths(t *testing.T) {
	if got := Lengths([]string{"crane", "cranes", "slate", "ox"}); !reflect.DeepEqual(got, []int{2, 5, 6}) {
		t.Fatalf("unexpected lengths %v", got)
	}
}
