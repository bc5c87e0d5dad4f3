package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robalobadob/wordle-tracker/internal/game"
)

// Recorder owns the game collectors and their registry.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry       *prometheus.Registry
	gamesStarted   *prometheus.CounterVec
	guesses        *prometheus.CounterVec
	gamesCompleted *prometheus.CounterVec
	roundsToWin    prometheus.Histogram
	gameSeconds    prometheus.Histogram
	httpRequests   *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		gamesStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_games_started_total",
			Help: "Games created, by mode.",
		}, []string{"mode"}),
		guesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_guesses_total",
			Help: "Guesses submitted, by result (accepted or the rejection reason).",
		}, []string{"result"}),
		gamesCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_games_completed_total",
			Help: "Games finished, by outcome.",
		}, []string{"outcome"}),
		roundsToWin: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordle_rounds_to_win",
			Help:    "Rounds used by won games.",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		}),
		gameSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordle_game_duration_seconds",
			Help:    "Wall-clock time from game creation to completion.",
			Buckets: prometheus.ExponentialBuckets(5, 2, 10),
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_http_requests_total",
			Help: "HTTP requests, by method and status.",
		}, []string{"method", "status"}),
	}
	r.registry.MustRegister(
		r.gamesStarted, r.guesses, r.gamesCompleted, r.roundsToWin, r.gameSeconds, r.httpRequests,
		collectors.NewGoCollector(),
	)
	return r
}

func (r *Recorder) GameStarted(mode string) {
	if r == nil {
		return
	}
	r.gamesStarted.WithLabelValues(mode).Inc()
}

// Guess counts one submitted guess; an empty rejection means it was accepted.
func (r *Recorder) Guess(rej game.Rejection) {
	if r == nil {
		return
	}
	result := string(rej)
	if rej == game.RejectNone {
		result = "accepted"
	}
	r.guesses.WithLabelValues(result).Inc()
}

func (r *Recorder) GameCompleted(won bool, rounds int, seconds float64) {
	if r == nil {
		return
	}
	outcome := "lost"
	if won {
		outcome = "won"
		r.roundsToWin.Observe(float64(rounds))
	}
	r.gamesCompleted.WithLabelValues(outcome).Inc()
	r.gameSeconds.Observe(seconds)
}

func (r *Recorder) HTTPRequest(method string, status int) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
