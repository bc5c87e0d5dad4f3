// internal/profile/profile.go
//
// The persisted player document. One document per player holds:
//   - meta:      document version and timestamps.
//   - user:      id (hashed name), display name, preferences, optional password hash.
//   - stats:     aggregate statistics (stats.Stats).
//   - gameState: the in-progress game (if any) and the completed-game history.
//
// Documents are plain data; stores copy them in and out by value.

package profile

import (
	"strings"
	"time"

	"github.com/robalobadob/wordle-tracker/internal/game"
	"github.com/robalobadob/wordle-tracker/internal/identity"
	"github.com/robalobadob/wordle-tracker/internal/stats"
)

// Version is written into every new document.
const Version = "1.0"

// Modes a game can be created in.
const (
	ModeNormal = "normal"
	ModeDaily  = "daily"
)

type Profile struct {
	Meta      Meta        `json:"meta"`
	User      User        `json:"user"`
	Stats     stats.Stats `json:"stats"`
	GameState GameState   `json:"gameState"`
}

type Meta struct {
	Version     string    `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	Preferences  Preferences `json:"preferences"`
	PasswordHash string      `json:"passwordHash,omitempty"`
}

type Preferences struct {
	Theme    string `json:"theme"`
	GameMode string `json:"gameMode"`
}

type GameState struct {
	CurrentGame *CurrentGame   `json:"currentGame"`
	History     []HistoryEntry `json:"history"`
}

// CurrentGame is the persisted snapshot of an in-progress game.
type CurrentGame struct {
	GameID       string           `json:"gameId"`
	Mode         string           `json:"mode,omitempty"`
	Answer       string           `json:"answer"`
	CurrentRound int              `json:"currentRound"`
	MaxRounds    int              `json:"maxRounds"`
	IsGameOver   bool             `json:"isGameOver"`
	IsWon        bool             `json:"isWon"`
	Guesses      [][]game.Verdict `json:"guesses"`
	CreatedAt    time.Time        `json:"createdAt"`
	LastUpdated  time.Time        `json:"lastUpdated"`
	Settings     GameSettings     `json:"settings"`
}

// GameSettings records the rules a game was created under.
type GameSettings struct {
	WordLength    int  `json:"wordLength"`
	MaxRounds     int  `json:"maxRounds"`
	CaseSensitive bool `json:"caseSensitive"`
}

// HistoryEntry is the summary of one completed game.
// TimeUsed is wall-clock seconds from creation to completion.
type HistoryEntry struct {
	GameID      string    `json:"gameId"`
	Answer      string    `json:"answer"`
	Guesses     []string  `json:"guesses"`
	IsWon       bool      `json:"isWon"`
	CreatedAt   time.Time `json:"createdAt"`
	CompletedAt time.Time `json:"completedAt"`
	TimeUsed    float64   `json:"timeUsed"`
}

// SettingsOf records the rules of cfg.
func SettingsOf(cfg *game.Config) GameSettings {
	return GameSettings{
		WordLength:    cfg.WordLength(),
		MaxRounds:     cfg.MaxRounds(),
		CaseSensitive: cfg.CaseSensitive(),
	}
}

// New creates an empty document for name.
func New(name string, maxRounds int, now time.Time) *Profile {
	now = now.UTC()
	return &Profile{
		Meta:      Meta{Version: Version, CreatedAt: now, LastUpdated: now},
		User:      User{ID: identity.ID(name), Username: name},
		Stats:     stats.New(maxRounds),
		GameState: GameState{History: []HistoryEntry{}},
	}
}

// Touch bumps the document's LastUpdated.
func (p *Profile) Touch(now time.Time) {
	p.Meta.LastUpdated = now.UTC()
}

// Public returns a copy safe to hand to clients: no password hash and no
// answer for an active game.
func (p *Profile) Public() Profile {
	out := *p
	out.User.PasswordHash = ""
	if g := p.GameState.CurrentGame; g != nil {
		pub := g.Public()
		out.GameState.CurrentGame = &pub
	}
	return out
}

// NewCurrentGame snapshots a freshly created session.
func NewCurrentGame(id, mode string, cfg *game.Config, snap game.Snapshot, now time.Time) *CurrentGame {
	now = now.UTC()
	g := &CurrentGame{
		GameID:    id,
		Mode:      mode,
		MaxRounds: cfg.MaxRounds(),
		CreatedAt: now,
		Settings:  SettingsOf(cfg),
	}
	g.Update(snap, now)
	return g
}

// State returns the session fields for game.Restore.
func (g *CurrentGame) State() game.State {
	return game.State{
		Answer:       g.Answer,
		Guesses:      g.Guesses,
		CurrentRound: g.CurrentRound,
		IsGameOver:   g.IsGameOver,
		IsWon:        g.IsWon,
	}
}

// Update copies a session snapshot back into the document.
func (g *CurrentGame) Update(snap game.Snapshot, now time.Time) {
	g.Answer = snap.Answer
	g.Guesses = snap.Guesses
	g.CurrentRound = snap.CurrentRound
	g.IsGameOver = snap.IsGameOver
	g.IsWon = snap.IsWon
	g.LastUpdated = now.UTC()
}

// Public hides the answer while the game is active.
func (g *CurrentGame) Public() CurrentGame {
	out := *g
	if !g.IsGameOver {
		out.Answer = ""
	}
	return out
}

// History summarizes the game as completed at now.
func (g *CurrentGame) History(now time.Time) HistoryEntry {
	now = now.UTC()
	words := make([]string, len(g.Guesses))
	for i, row := range g.Guesses {
		var b strings.Builder
		for _, v := range row {
			b.WriteString(v.Letter)
		}
		words[i] = b.String()
	}
	return HistoryEntry{
		GameID:      g.GameID,
		Answer:      g.Answer,
		Guesses:     words,
		IsWon:       g.IsWon,
		CreatedAt:   g.CreatedAt,
		CompletedAt: now,
		TimeUsed:    now.Sub(g.CreatedAt).Seconds(),
	}
}

// Complete records g as finished: history is prepended (newest first),
// stats are folded in, and the current game is cleared.
func (p *Profile) Complete(g *CurrentGame, now time.Time) HistoryEntry {
	h := g.History(now)
	p.GameState.History = append([]HistoryEntry{h}, p.GameState.History...)
	p.Stats = stats.Update(p.Stats, stats.Result{
		Won:             g.IsWon,
		TimeUsedSeconds: h.TimeUsed,
		Rounds:          g.CurrentRound,
	}, g.MaxRounds)
	p.GameState.CurrentGame = nil
	p.Touch(now)
	return h
}
