package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-tracker/internal/play"
)

// envelope is the body shape of every API response.
type envelope struct {
	Success   bool   `json:"success"`
	Code      int    `json:"code"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data"`
	Error     string `json:"error,omitempty"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeOK(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Success: true, Code: status, Message: message, Data: data})
}

// writeError writes a failure envelope. Internal error text is only exposed
// in development.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	body := envelope{Code: status, Message: message, RequestID: chimw.GetReqID(r.Context())}
	if status >= http.StatusInternalServerError {
		body.Error = "Internal server error"
		log.Error().Err(err).Str("request_id", body.RequestID).Str("path", r.URL.Path).Msg(message)
		if err != nil && s.cfg.IsDevelopment() {
			body.Details = err.Error()
		}
	}
	writeJSON(w, status, body)
}

// fail maps a play error to its HTTP status and message.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, play.ErrInvalidName):
		s.writeError(w, r, http.StatusBadRequest, "Username must be at least 3 characters", err)
	case errors.Is(err, play.ErrGuessRequired):
		s.writeError(w, r, http.StatusBadRequest, "Guess is required", err)
	case errors.Is(err, play.ErrUnknownMode), errors.Is(err, play.ErrPasswordInvalid):
		s.writeError(w, r, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, play.ErrPlayerNotFound):
		s.writeError(w, r, http.StatusNotFound, "User not found", err)
	case errors.Is(err, play.ErrGameNotFound):
		s.writeError(w, r, http.StatusNotFound, "Game not found or not active", err)
	case errors.Is(err, play.ErrPlayerExists):
		s.writeError(w, r, http.StatusConflict, "Username already taken", err)
	case errors.Is(err, play.ErrDailyPlayed):
		s.writeError(w, r, http.StatusConflict, "Daily game already played", err)
	case errors.Is(err, play.ErrBadCredentials):
		s.writeError(w, r, http.StatusUnauthorized, "Invalid username or password", err)
	default:
		s.writeError(w, r, http.StatusInternalServerError, "Unable to process request", err)
	}
}
