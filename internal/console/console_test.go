package console

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/robalobadob/wordle-tracker/internal/game"
)

func newSession(t *testing.T, answer string) *game.Session {
	t.Helper()
	cfg, err := game.NewConfig([]string{"crane", "trace", "slate"}, 3, false)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	s, err := game.NewWithAnswer(cfg, answer)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	return s
}

func TestPlayWin(t *testing.T) {
	var out strings.Builder
	err := Play(newSession(t, "trace"), strings.NewReader("crane\nxx\ntrace\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Guess the 5-letter word (3 attempts)",
		"Legend: O = Hit, ? = Present, _ = Miss",
		"Feedback:    ? O O _ O",
		"! Guess must be 5 letters long",
		"Remaining attempts: 2",
		"Correct! You won in 2 tries!",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestPlayLoss(t *testing.T) {
	var out strings.Builder
	if err := Play(newSession(t, "trace"), strings.NewReader("crane\nslate\ncrane\n"), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Game over! The word was: TRACE") {
		t.Fatalf("expected loss message, got:\n%s", out.String())
	}
}

func TestPlayInputClosed(t *testing.T) {
	var out strings.Builder
	err := Play(newSession(t, "trace"), strings.NewReader("crane\n"), &out)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestRun(t *testing.T) {
	cfg, _ := game.NewConfig([]string{"crane"}, 6, false)
	var out strings.Builder
	if err := Run(cfg, strings.NewReader("crane\n"), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "You won in 1 tries") {
		t.Fatalf("expected win, got:\n%s", out.String())
	}
}
