// internal/game/engine.go
//
// Session state machine for a single game.
// Responsibilities:
//   - Create sessions with an answer drawn uniformly from the dictionary.
//   - Validate guesses (already over, letter count, dictionary membership).
//   - Score accepted guesses with Evaluate and track Active → Over(won) transitions.
//
// Notes:
//   - Apply is the pure transition function; Session is a thin mutable wrapper
//     around it for callers that prefer methods.
//   - Rejected guesses never consume a round.
//   - A winning guess on the last allowed round is a win.
package game

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"unicode/utf8"
)

const (
	msgAlreadyOver = "Game is already over"
	msgNotInDict   = "Word not in dictionary"
	msgAccepted    = "Guess submitted successfully"
	msgWon         = "Congratulations! You guessed the word!"
	msgLost        = "Game over! You've used all your attempts"
)

// Session is one game bound to one answer and one Config.
// It is not safe for concurrent use.
type Session struct {
	cfg   *Config
	state State
}

// New starts a session with a random answer from cfg.
func New(cfg *Config) (*Session, error) {
	if cfg == nil || len(cfg.list) == 0 {
		return nil, fmt.Errorf("no dictionary to draw an answer from: %w", ErrConfiguration)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(cfg.list))))
	if err != nil {
		return nil, fmt.Errorf("pick answer: %w", err)
	}
	return Restore(cfg, State{Answer: cfg.list[n.Int64()]}), nil
}

// NewWithAnswer starts a session with a fixed answer, which must be in cfg.
func NewWithAnswer(cfg *Config, answer string) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config: %w", ErrConfiguration)
	}
	answer = cfg.Normalize(answer)
	if !cfg.Contains(answer) {
		return nil, fmt.Errorf("answer %q not in dictionary: %w", answer, ErrConfiguration)
	}
	return Restore(cfg, State{Answer: answer}), nil
}

// Restore rebuilds a session from a previously persisted State.
func Restore(cfg *Config, st State) *Session {
	if st.Guesses == nil {
		st.Guesses = [][]Verdict{}
	}
	st.CurrentRound = len(st.Guesses)
	return &Session{cfg: cfg, state: st}
}

// SubmitGuess applies raw to the session and reports the outcome.
func (s *Session) SubmitGuess(raw string) Outcome {
	next, out := Apply(s.cfg, s.state, raw)
	s.state = next
	return out
}

// State returns a detached snapshot of the session.
func (s *Session) State() Snapshot {
	st := s.state
	st.Guesses = make([][]Verdict, len(s.state.Guesses))
	for i, g := range s.state.Guesses {
		st.Guesses[i] = append([]Verdict(nil), g...)
	}
	return Snapshot{
		State:           st,
		MaxRounds:       s.cfg.maxRounds,
		RemainingRounds: s.cfg.maxRounds - st.CurrentRound,
	}
}

// Apply is the transition function (state, guess) → (state', outcome).
// st is never modified; rejected guesses return st unchanged.
func Apply(cfg *Config, st State, raw string) (State, Outcome) {
	guess := cfg.Normalize(raw)

	if st.IsGameOver {
		return st, Outcome{
			Message:         msgAlreadyOver,
			Rejection:       RejectAlreadyOver,
			CurrentRound:    st.CurrentRound,
			RemainingRounds: cfg.maxRounds - st.CurrentRound,
			IsGameOver:      true,
			IsWon:           st.IsWon,
			Answer:          st.Answer,
		}
	}
	// The answer's length wins over the config's; a restored game may be
	// paired with a config built for another length.
	want := cfg.wordLength
	if n := utf8.RuneCountInString(st.Answer); n > 0 {
		want = n
	}
	if utf8.RuneCountInString(guess) != want {
		return st, Outcome{
			Message:   fmt.Sprintf("Guess must be %d letters long", want),
			Rejection: RejectWrongLength,
		}
	}
	if !cfg.Contains(guess) {
		return st, Outcome{Message: msgNotInDict, Rejection: RejectNotInDictionary}
	}

	verdicts := Evaluate(st.Answer, guess)
	next := st
	// Full slice expression forces a copy so st.Guesses is never aliased.
	next.Guesses = append(st.Guesses[:len(st.Guesses):len(st.Guesses)], verdicts)
	next.CurrentRound = len(next.Guesses)

	out := Outcome{
		Success:  true,
		Message:  msgAccepted,
		Verdicts: verdicts,
	}
	if guess == st.Answer {
		next.IsGameOver, next.IsWon = true, true
		out.Message = msgWon
	} else if next.CurrentRound >= cfg.maxRounds {
		next.IsGameOver = true
		out.Message = msgLost
	}

	out.CurrentRound = next.CurrentRound
	out.RemainingRounds = cfg.maxRounds - next.CurrentRound
	out.IsGameOver = next.IsGameOver
	out.IsWon = next.IsWon
	if next.IsGameOver {
		out.Answer = next.Answer
	}
	return next, out
}
