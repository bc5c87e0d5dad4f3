// internal/httpserver/server.go
//
// HTTP server wiring for the Wordle tracker.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, JSON, CORS, access log).
//   - Public endpoints: "/", "/health", "/metrics".
//   - Player endpoints under /api/v1/user: get-or-create, register, login.
//   - Game endpoints under /api/v1/game: create, submit guess (auth when AUTH_REQUIRED).
//   - Leaderboards under /api/v1/leaderboard.
//
// Notes:
//   - Every handler delegates to play.Service; this package only maps
//     requests, errors and outcomes to HTTP.
//   - Validation rejections are 202 with success=false, never 4xx.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/robalobadob/wordle-tracker/internal/config"
	"github.com/robalobadob/wordle-tracker/internal/metrics"
	"github.com/robalobadob/wordle-tracker/internal/play"
)

// Server bundles the router and the game service.
type Server struct {
	r       *chi.Mux
	svc     *play.Service
	cfg     config.Config
	metrics *metrics.Recorder
	http    *http.Server
}

// New constructs a Server, installs middleware, and registers routes.
func New(svc *play.Service, cfg config.Config, rec *metrics.Recorder) *Server {
	s := &Server{r: chi.NewRouter(), svc: svc, cfg: cfg, metrics: rec}
	s.http = &http.Server{Handler: s.r, ReadHeaderTimeout: 5 * time.Second}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(s.accessLog)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(cfg.ClientOrigin))

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "wordle-tracker",
			"endpoints": []string{
				"GET /api/v1/user/get-info/{name}",
				"POST /api/v1/user/register/{name}",
				"POST /api/v1/user/login/{name}",
				"POST /api/v1/game/create-game/{name}[/{gameId}]",
				"POST /api/v1/game/{name}/{gameId}/submit-guess",
				"GET /api/v1/leaderboard/{kind}",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Method(http.MethodGet, "/metrics", rec.Handler())

	s.r.Route("/api/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Get("/get-info/{name}", s.handleGetInfo)
			r.Post("/register/{name}", s.handleRegister)
			r.Post("/login/{name}", s.handleLogin)
			r.Post("/logout", s.handleLogout)
		})
		r.Route("/game", func(r chi.Router) {
			r.With(s.playerAuth).Post("/create-game/{name}", s.handleCreateGame)
			r.With(s.playerAuth).Post("/create-game/{name}/{gameId}", s.handleCreateGame)
			r.With(s.playerAuth).Post("/{name}/{gameId}/submit-guess", s.handleSubmitGuess)
		})
		r.Get("/leaderboard/{kind}", s.handleLeaderboard)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, envelope{Code: http.StatusNotFound, Error: "not_found", Message: r.URL.Path})
	})

	return s
}

// Start serves HTTP on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.http.Addr = addr
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops a server started with Start, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }
