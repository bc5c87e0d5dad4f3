// Package leaderboard ranks players by wins, best streak and win rate.
//
// Boards are derived data: they are refreshed from a player's stats after
// each completed game and can be rebuilt from the player store at any time.
package leaderboard

import (
	"context"

	"github.com/robalobadob/wordle-tracker/internal/profile"
)

// Kind selects a ranking.
type Kind string

const (
	KindWins    Kind = "wins"
	KindStreak  Kind = "streak"
	KindWinRate Kind = "winrate"
)

// Kinds lists every ranking in display order.
var Kinds = []Kind{KindWins, KindStreak, KindWinRate}

// ParseKind validates a user-supplied ranking name.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Entry is one ranked row. Rank starts at 1.
type Entry struct {
	PlayerID string  `json:"playerId"`
	Username string  `json:"username"`
	Score    float64 `json:"score"`
	Rank     int     `json:"rank"`
}

// Board records player standings and serves rankings.
type Board interface {
	Record(ctx context.Context, p *profile.Profile) error
	Top(ctx context.Context, kind Kind, limit int) ([]Entry, error)
}

// score returns p's value on the given ranking.
func score(p *profile.Profile, kind Kind) float64 {
	switch kind {
	case KindWins:
		return float64(p.Stats.GamesWon)
	case KindStreak:
		return float64(p.Stats.MaxStreak)
	case KindWinRate:
		return p.Stats.WinPercentage
	}
	return 0
}

// Noop is used when no leaderboard backend is configured.
type Noop struct{}

func (Noop) Record(context.Context, *profile.Profile) error { return nil }

func (Noop) Top(context.Context, Kind, int) ([]Entry, error) { return []Entry{}, nil }
