// Package stats folds completed game results into a player's running
// statistics. Update is pure: it never mutates its input.
package stats

// Stats are a player's aggregate statistics across all completed games.
type Stats struct {
	GamesPlayed       int     `json:"gamesPlayed"`
	GamesWon          int     `json:"gamesWon"`
	WinPercentage     float64 `json:"winPercentage"`
	CurrentStreak     int     `json:"currentStreak"`
	MaxStreak         int     `json:"maxStreak"`
	GuessDistribution []int   `json:"guessDistribution"`
	AverageTime       float64 `json:"averageTime"`
}

// Result is the outcome of one completed game.
// Rounds is the round count of the game as reported by the session; it only
// matters for wins.
type Result struct {
	Won             bool
	TimeUsedSeconds float64
	Rounds          int
}

// New returns empty statistics with one distribution bucket per round.
func New(maxRounds int) Stats {
	if maxRounds < 0 {
		maxRounds = 0
	}
	return Stats{GuessDistribution: make([]int, maxRounds)}
}

// Update returns prior with r folded in.
//
// Wins increment GuessDistribution[r.Rounds-1]; an index outside
// [0, maxRounds-1] is skipped. A distribution shorter than maxRounds
// (e.g. after maxRounds was raised) is padded with zero buckets.
func Update(prior Stats, r Result, maxRounds int) Stats {
	next := prior
	next.GamesPlayed = prior.GamesPlayed + 1
	if r.Won {
		next.GamesWon = prior.GamesWon + 1
		next.CurrentStreak = prior.CurrentStreak + 1
	} else {
		next.CurrentStreak = 0
	}
	next.WinPercentage = WinPercentage(next.GamesPlayed, next.GamesWon)
	next.MaxStreak = max(prior.MaxStreak, next.CurrentStreak)
	next.AverageTime = (prior.AverageTime*float64(prior.GamesPlayed) + r.TimeUsedSeconds) / float64(next.GamesPlayed)

	size := max(len(prior.GuessDistribution), maxRounds)
	next.GuessDistribution = make([]int, size)
	copy(next.GuessDistribution, prior.GuessDistribution)
	if r.Won {
		if i := r.Rounds - 1; i >= 0 && i < maxRounds {
			next.GuessDistribution[i]++
		}
	}
	return next
}

// WinPercentage is won/played*100, or 0 when nothing was played.
func WinPercentage(played, won int) float64 {
	if played <= 0 {
		return 0
	}
	return float64(won) / float64(played) * 100
}
