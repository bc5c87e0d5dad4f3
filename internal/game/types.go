// internal/game/types.go
//
// Core type definitions for the word-guessing engine.
// Defines:
//   - Status/Verdict: per-letter result of an evaluated guess.
//   - State: the persisted fields of one game session.
//   - Snapshot: read-only view of a session (State + round counters).
//   - Outcome: what a single SubmitGuess call reports back.

package game

// Status is the evaluation of a single letter in a guess.
//   - "correct": letter is in the answer at this position.
//   - "present": letter is in the answer elsewhere (bounded by unmatched occurrences).
//   - "absent":  no unmatched occurrence of the letter remains.
type Status string

const (
	StatusCorrect Status = "correct"
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// Verdict is the evaluation of the letter at Position in a guess.
type Verdict struct {
	Letter   string `json:"letter"`
	Status   Status `json:"status"`
	Position int    `json:"position"`
}

// Rejection names why a guess was not accepted.
type Rejection string

const (
	RejectNone            Rejection = ""
	RejectAlreadyOver     Rejection = "already_over"
	RejectWrongLength     Rejection = "wrong_length"
	RejectNotInDictionary Rejection = "not_in_dictionary"
)

// State holds the mutable fields of a single game session.
// Invariant: CurrentRound == len(Guesses).
type State struct {
	Answer       string      `json:"answer"`
	Guesses      [][]Verdict `json:"guesses"`
	CurrentRound int         `json:"currentRound"`
	IsGameOver   bool        `json:"isGameOver"`
	IsWon        bool        `json:"isWon"`
}

// Snapshot is a detached copy of a session's state plus derived counters.
// The answer is always included; hiding it is up to the transport.
type Snapshot struct {
	State
	MaxRounds       int `json:"maxRounds"`
	RemainingRounds int `json:"remainingRounds"`
}

// Outcome reports the result of one SubmitGuess call.
//
// Verdicts is set only when the guess was accepted. Answer is set only when
// the session is over (just finished, or already over before the call).
type Outcome struct {
	Success         bool      `json:"success"`
	Message         string    `json:"message"`
	Rejection       Rejection `json:"rejection,omitempty"`
	Verdicts        []Verdict `json:"guessResult,omitempty"`
	CurrentRound    int       `json:"currentRound"`
	RemainingRounds int       `json:"remainingRounds"`
	IsGameOver      bool      `json:"isGameOver"`
	IsWon           bool      `json:"isWon"`
	Answer          string    `json:"answer,omitempty"`
}
