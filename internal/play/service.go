// internal/play/service.go
//
// Player and game usecases on top of the core engine.
// Each call loads the player document, restores the session with the live
// game config, applies one operation and persists the result:
//
//	load → game.Restore → SubmitGuess → save (→ history + stats on completion)
//
// Validation rejections come back as a game.Outcome, not an error. Store
// errors are wrapped and returned; they are never retried here.

package play

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/wordle-tracker/internal/daily"
	"github.com/robalobadob/wordle-tracker/internal/game"
	"github.com/robalobadob/wordle-tracker/internal/identity"
	"github.com/robalobadob/wordle-tracker/internal/leaderboard"
	"github.com/robalobadob/wordle-tracker/internal/metrics"
	"github.com/robalobadob/wordle-tracker/internal/profile"
	"github.com/robalobadob/wordle-tracker/internal/store"
)

var (
	ErrInvalidName     = identity.ErrInvalidName
	ErrPlayerNotFound  = errors.New("user not found")
	ErrGameNotFound    = errors.New("game not found or not active")
	ErrGuessRequired   = errors.New("guess is required")
	ErrUnknownMode     = errors.New("unknown game mode")
	ErrDailyPlayed     = errors.New("daily game already played")
	ErrBadCredentials  = errors.New("invalid username or password")
	ErrPlayerExists    = errors.New("username taken")
	ErrPasswordInvalid = errors.New("password must be 8-100 chars")
)

// Service runs player and game usecases. It is safe for concurrent use
// across players; calls for the same player must be serialized by the caller.
type Service struct {
	store     store.Store
	board     leaderboard.Board
	metrics   *metrics.Recorder
	cfg       atomic.Pointer[game.Config]
	dailySalt string
	now       func() time.Time

	// rules keeps the newest config seen for each rule set, so games
	// created before a reload keep playing under their own rules.
	mu    sync.RWMutex
	rules map[profile.GameSettings]*game.Config
}

type Option func(*Service)

func WithLeaderboard(b leaderboard.Board) Option { return func(s *Service) { s.board = b } }
func WithMetrics(m *metrics.Recorder) Option     { return func(s *Service) { s.metrics = m } }
func WithDailySalt(salt string) Option           { return func(s *Service) { s.dailySalt = salt } }
func WithClock(now func() time.Time) Option      { return func(s *Service) { s.now = now } }

func NewService(st store.Store, cfg *game.Config, opts ...Option) *Service {
	s := &Service{
		store: st,
		board: leaderboard.Noop{},
		now:   time.Now,
		rules: make(map[profile.GameSettings]*game.Config),
	}
	s.SetConfig(cfg)
	for _, o := range opts {
		o(s)
	}
	return s
}

// Config returns the live game config.
func (s *Service) Config() *game.Config { return s.cfg.Load() }

// SetConfig swaps the live game config. Games created afterwards use it;
// games already in progress keep the rules they were created with.
func (s *Service) SetConfig(cfg *game.Config) {
	if cfg == nil {
		return
	}
	s.mu.Lock()
	s.rules[profile.SettingsOf(cfg)] = cfg
	s.mu.Unlock()
	s.cfg.Store(cfg)
}

// configFor returns a config carrying the rules g was created under.
// A retained config is used when it knows the answer; otherwise (after a
// restart, say) one is rebuilt from the live words of the game's length
// plus the answer.
func (s *Service) configFor(g *profile.CurrentGame) (*game.Config, error) {
	want := g.Settings
	if want.MaxRounds <= 0 {
		return s.Config(), nil
	}
	s.mu.RLock()
	cfg := s.rules[want]
	s.mu.RUnlock()
	if cfg != nil && cfg.Contains(g.Answer) {
		return cfg, nil
	}

	var list []string
	for _, w := range s.Config().Words() {
		if utf8.RuneCountInString(w) == want.WordLength {
			list = append(list, w)
		}
	}
	list = append(list, g.Answer)
	cfg, err := game.NewConfig(list, want.MaxRounds, want.CaseSensitive)
	if err != nil {
		return nil, fmt.Errorf("rebuild rules for game %s: %w", g.GameID, err)
	}
	log.Debug().Str("game", g.GameID).Int("words", len(list)).Msg("rebuilt game rules")
	return cfg, nil
}

func (s *Service) load(ctx context.Context, name string) (*profile.Profile, error) {
	p, err := s.store.Load(ctx, identity.ID(name))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load player: %w", err)
	}
	return p, nil
}

func (s *Service) save(ctx context.Context, p *profile.Profile) error {
	if err := s.store.Save(ctx, p); err != nil {
		return fmt.Errorf("save player: %w", err)
	}
	return nil
}

// GetOrCreatePlayer loads the player named name, creating and saving a new
// document if none exists. created reports which happened.
func (s *Service) GetOrCreatePlayer(ctx context.Context, name string) (p *profile.Profile, created bool, err error) {
	name = identity.NormalizeName(name)
	if err := identity.ValidateName(name); err != nil {
		return nil, false, err
	}
	p, err = s.load(ctx, name)
	if err == nil {
		return p, false, nil
	}
	if !errors.Is(err, ErrPlayerNotFound) {
		return nil, false, err
	}
	p = profile.New(name, s.Config().MaxRounds(), s.now())
	if err := s.save(ctx, p); err != nil {
		return nil, false, err
	}
	log.Info().Str("player", p.User.ID).Msg("player created")
	return p, true, nil
}

// CreateGame starts a new game for an existing player, replacing any game
// in progress. An empty gameID gets a generated one. Mode is
// profile.ModeNormal (random answer, the default) or profile.ModeDaily
// (answer and id fixed for the UTC day). Asking for today's daily game while
// it is in progress returns that game unchanged.
func (s *Service) CreateGame(ctx context.Context, name, gameID, mode string) (*profile.CurrentGame, error) {
	name = identity.NormalizeName(name)
	p, err := s.load(ctx, name)
	if err != nil {
		return nil, err
	}
	cfg := s.Config()
	now := s.now()

	var sess *game.Session
	switch mode {
	case "", profile.ModeNormal:
		mode = profile.ModeNormal
		sess, err = game.New(cfg)
		if gameID == "" {
			gameID = uuid.NewString()
		}
	case profile.ModeDaily:
		list := cfg.Words()
		gameID = daily.GameID(now)
		if cur := p.GameState.CurrentGame; cur != nil && cur.GameID == gameID && !cur.IsGameOver {
			return cur, nil
		}
		for _, h := range p.GameState.History {
			if h.GameID == gameID {
				return nil, ErrDailyPlayed
			}
		}
		sess, err = game.NewWithAnswer(cfg, list[daily.WordIndex(now, s.dailySalt, len(list))])
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if err != nil {
		return nil, err
	}

	g := profile.NewCurrentGame(gameID, mode, cfg, sess.State(), now)
	p.GameState.CurrentGame = g
	p.Touch(now)
	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	s.metrics.GameStarted(mode)
	log.Debug().Str("player", p.User.ID).Str("game", gameID).Str("answer", g.Answer).Msg("game created")
	return g, nil
}

// GuessResult is what SubmitGuess reports.
// Game is the game after the guess (nil on rejection); History is set only
// when the guess finished the game, and Profile then carries the new stats.
type GuessResult struct {
	Outcome game.Outcome
	Game    *profile.CurrentGame
	History *profile.HistoryEntry
	Profile *profile.Profile
}

// SubmitGuess applies guess to the player's current game.
func (s *Service) SubmitGuess(ctx context.Context, name, gameID, guess string) (GuessResult, error) {
	if strings.TrimSpace(guess) == "" {
		return GuessResult{}, ErrGuessRequired
	}
	name = identity.NormalizeName(name)
	p, err := s.load(ctx, name)
	if err != nil {
		return GuessResult{}, err
	}
	cur := p.GameState.CurrentGame
	if cur == nil || cur.GameID != gameID {
		return GuessResult{}, ErrGameNotFound
	}

	cfg, err := s.configFor(cur)
	if err != nil {
		return GuessResult{}, err
	}
	sess := game.Restore(cfg, cur.State())
	out := sess.SubmitGuess(guess)
	s.metrics.Guess(out.Rejection)
	if !out.Success {
		return GuessResult{Outcome: out}, nil
	}

	now := s.now()
	cur.Update(sess.State(), now)
	res := GuessResult{Outcome: out, Game: cur, Profile: p}
	if cur.IsGameOver {
		h := p.Complete(cur, now)
		res.History = &h
	}
	p.Touch(now)
	if err := s.save(ctx, p); err != nil {
		return GuessResult{}, err
	}

	if res.History != nil {
		s.metrics.GameCompleted(res.History.IsWon, cur.CurrentRound, res.History.TimeUsed)
		if err := s.board.Record(ctx, p); err != nil {
			log.Warn().Err(err).Str("player", p.User.ID).Msg("leaderboard update failed")
		}
		log.Info().Str("player", p.User.ID).Str("game", cur.GameID).Bool("won", cur.IsWon).
			Int("rounds", cur.CurrentRound).Msg("game completed")
	}
	return res, nil
}

// Register creates a player protected by password. Unlike
// GetOrCreatePlayer it never touches an existing player, so an account
// created without a password cannot be claimed later.
func (s *Service) Register(ctx context.Context, name, password string) (*profile.Profile, error) {
	name = identity.NormalizeName(name)
	if err := identity.ValidateName(name); err != nil {
		return nil, err
	}
	if len(password) < 8 || len(password) > 100 {
		return nil, ErrPasswordInvalid
	}
	if _, err := s.load(ctx, name); err == nil {
		return nil, ErrPlayerExists
	} else if !errors.Is(err, ErrPlayerNotFound) {
		return nil, err
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	p := profile.New(name, s.Config().MaxRounds(), s.now())
	p.User.PasswordHash = string(h)
	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	log.Info().Str("player", p.User.ID).Msg("player registered")
	return p, nil
}

// Login checks password for a registered player. Players created without a
// password cannot log in.
func (s *Service) Login(ctx context.Context, name, password string) (*profile.Profile, error) {
	p, err := s.load(ctx, identity.NormalizeName(name))
	if errors.Is(err, ErrPlayerNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if p.User.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(p.User.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	return p, nil
}

// Leaderboard returns the top players on kind.
func (s *Service) Leaderboard(ctx context.Context, kind leaderboard.Kind, limit int) ([]leaderboard.Entry, error) {
	return s.board.Top(ctx, kind, limit)
}
