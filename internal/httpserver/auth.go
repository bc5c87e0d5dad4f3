package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/wordle-tracker/internal/identity"
)

// authPlayer is the subject of a valid token.
type authPlayer struct {
	ID       string
	Username string
}

var errInvalidToken = errors.New("invalid token")

// signToken creates an HS256 JWT for a player, valid for Auth.ExpiresDays.
func (s *Server) signToken(id, username string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(time.Duration(s.cfg.Auth.ExpiresDays) * 24 * time.Hour)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       id,
		"username": username,
		"exp":      exp.Unix(),
		"iat":      now.Unix(),
	})
	ss, err := t.SignedString([]byte(s.cfg.Auth.Secret))
	return ss, exp, err
}

// parseToken validates a token and returns the player it was issued to.
func (s *Server) parseToken(tok string) (*authPlayer, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Auth.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return nil, errInvalidToken
	}
	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	if id == "" || username == "" {
		return nil, errInvalidToken
	}
	return &authPlayer{ID: id, Username: username}, nil
}

// setAuthCookie writes the auth token cookie. Production cookies are
// Secure and SameSite=None so a separately hosted client can send them.
func (s *Server) setAuthCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, s.authCookie(token, exp, 0))
}

func (s *Server) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, s.authCookie("", time.Time{}, -1))
}

func (s *Server) authCookie(value string, exp time.Time, maxAge int) *http.Cookie {
	secure := s.cfg.Env == "production"
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     s.cfg.Auth.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
		MaxAge:   maxAge,
	}
}

// bearerOrCookie extracts a bearer token from the Authorization header or the auth cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.cfg.Auth.CookieName); err == nil {
		return c.Value
	}
	return ""
}

// playerAuth guards routes with a {name} parameter. When auth is required the
// token's player id must match the named player. It must run after routing
// (chi With, not Use) so the URL params are populated.
func (s *Server) playerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.cfg.Auth.Required {
			next.ServeHTTP(w, r)
			return
		}
		tok := s.bearerOrCookie(r)
		if tok == "" {
			s.writeError(w, r, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		me, err := s.parseToken(tok)
		if err != nil {
			s.writeError(w, r, http.StatusUnauthorized, "Invalid token", err)
			return
		}
		if me.ID != identity.ID(identity.NormalizeName(chi.URLParam(r, "name"))) {
			s.writeError(w, r, http.StatusForbidden, "Token does not belong to this player", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
