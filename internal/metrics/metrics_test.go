package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/robalobadob/wordle-tracker/internal/game"
)

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder()
	r.GameStarted("normal")
	r.GameStarted("normal")
	r.Guess(game.RejectNone)
	r.Guess(game.RejectNotInDictionary)
	r.GameCompleted(true, 3, 40)
	r.GameCompleted(false, 6, 90)

	if got := testutil.ToFloat64(r.gamesStarted.WithLabelValues("normal")); got != 2 {
		t.Fatalf("expected 2 games started, got %v", got)
	}
	if got := testutil.ToFloat64(r.guesses.WithLabelValues("accepted")); got != 1 {
		t.Fatalf("expected 1 accepted guess, got %v", got)
	}
	if got := testutil.ToFloat64(r.guesses.WithLabelValues("not_in_dictionary")); got != 1 {
		t.Fatalf("expected 1 dictionary rejection, got %v", got)
	}
	if got := testutil.ToFloat64(r.gamesCompleted.WithLabelValues("won")); got != 1 {
		t.Fatalf("expected 1 win, got %v", got)
	}
	if got := testutil.CollectAndCount(r.roundsToWin); got != 1 {
		t.Fatalf("expected rounds histogram collected, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.GameStarted("normal")
	r.Guess(game.RejectWrongLength)
	r.GameCompleted(true, 1, 1)
	r.HTTPRequest(http.MethodGet, 200)

	rr := httptest.NewRecorder()
	r.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 from nil recorder, got %d", rr.Code)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	r := NewRecorder()
	r.HTTPRequest(http.MethodPost, 202)

	rr := httptest.NewRecorder()
	r.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `wordle_http_requests_total{method="POST",status="202"} 1`) {
		t.Fatalf("expected http counter in output")
	}
}
