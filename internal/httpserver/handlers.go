package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle-tracker/internal/game"
	"github.com/robalobadob/wordle-tracker/internal/leaderboard"
	"github.com/robalobadob/wordle-tracker/internal/profile"
	"github.com/robalobadob/wordle-tracker/internal/stats"
)

const (
	defaultBoardLimit = 10
	maxBoardLimit     = 100
)

// decodeBody decodes an optional JSON body; an empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ------------------------------ USER ---------------------------------------

func (s *Server) handleGetInfo(w http.ResponseWriter, r *http.Request) {
	p, created, err := s.svc.GetOrCreatePlayer(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if created {
		writeOK(w, http.StatusCreated, "New user created successfully", p.Public())
		return
	}
	writeOK(w, http.StatusOK, "User data retrieved successfully", p.Public())
}

type loginReq struct {
	Password string `json:"password"`
}

type loginRes struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	PlayerID  string    `json:"playerId"`
	Username  string    `json:"username"`
}

// handleRegister creates a player with a password and logs them in.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body loginReq
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid_json", err)
		return
	}
	p, err := s.svc.Register(r.Context(), chi.URLParam(r, "name"), body.Password)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.issueToken(w, r, p, http.StatusCreated, "Registration successful")
}

// handleLogin checks the player's password, then issues a token as both a
// cookie and a response field. Players without a password cannot log in.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginReq
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid_json", err)
		return
	}
	p, err := s.svc.Login(r.Context(), chi.URLParam(r, "name"), body.Password)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.issueToken(w, r, p, http.StatusOK, "Login successful")
}

func (s *Server) issueToken(w http.ResponseWriter, r *http.Request, p *profile.Profile, status int, msg string) {
	tok, exp, err := s.signToken(p.User.ID, p.User.Username)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "sign_failed", err)
		return
	}
	s.setAuthCookie(w, tok, exp)
	writeOK(w, status, msg, loginRes{
		Token:     tok,
		ExpiresAt: exp.UTC(),
		PlayerID:  p.User.ID,
		Username:  p.User.Username,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearAuthCookie(w)
	writeOK(w, http.StatusOK, "Logged out", nil)
}

// ------------------------------ GAME ---------------------------------------

type createGameReq struct {
	Mode string `json:"mode"` // "normal" (default) | "daily"
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var body createGameReq
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid_json", err)
		return
	}
	g, err := s.svc.CreateGame(r.Context(), chi.URLParam(r, "name"), chi.URLParam(r, "gameId"), body.Mode)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeOK(w, http.StatusCreated, "Creating new game done!", g.Public())
}

type guessReq struct {
	Guess string `json:"guess"`
}

// guessRes is the success payload: the engine outcome plus the game as it
// now stands. History and Stats are present only when the guess ended the game.
type guessRes struct {
	game.Outcome
	Game    profile.CurrentGame   `json:"game"`
	History *profile.HistoryEntry `json:"history,omitempty"`
	Stats   *stats.Stats          `json:"stats,omitempty"`
}

func (s *Server) handleSubmitGuess(w http.ResponseWriter, r *http.Request) {
	var body guessReq
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid_json", err)
		return
	}
	res, err := s.svc.SubmitGuess(r.Context(), chi.URLParam(r, "name"), chi.URLParam(r, "gameId"), body.Guess)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !res.Outcome.Success {
		writeJSON(w, http.StatusAccepted, envelope{
			Code:    http.StatusAccepted,
			Message: res.Outcome.Message,
			Error:   string(res.Outcome.Rejection),
		})
		return
	}

	out := guessRes{Outcome: res.Outcome, Game: res.Game.Public(), History: res.History}
	if res.History != nil {
		st := res.Profile.Stats
		out.Stats = &st
	}
	writeOK(w, http.StatusOK, res.Outcome.Message, out)
}

// --------------------------- LEADERBOARD -----------------------------------

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	kind, ok := leaderboard.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		s.writeError(w, r, http.StatusBadRequest, "unknown leaderboard", nil)
		return
	}
	limit := defaultBoardLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.writeError(w, r, http.StatusBadRequest, "limit must be a positive integer", err)
			return
		}
		limit = min(n, maxBoardLimit)
	}
	top, err := s.svc.Leaderboard(r.Context(), kind, limit)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "leaderboard unavailable", err)
		return
	}
	writeOK(w, http.StatusOK, "", top)
}
