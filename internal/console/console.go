// Package console plays a single game on a terminal.
//
// Feedback legend: O = Hit, ? = Present, _ = Miss.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-tracker/internal/game"
)

// Run starts a game with a random answer from cfg and plays it on in/out.
func Run(cfg *game.Config, in io.Reader, out io.Writer) error {
	sess, err := game.New(cfg)
	if err != nil {
		return err
	}
	log.Debug().Str("answer", sess.State().Answer).Msg("console game created")
	return Play(sess, in, out)
}

// Play reads one guess per line until sess is over. Rejected guesses are
// reported and the same attempt is asked again.
func Play(sess *game.Session, in io.Reader, out io.Writer) error {
	snap := sess.State()
	sc := bufio.NewScanner(in)

	fmt.Fprintf(out, "Guess the %d-letter word (%d attempts)\n", len([]rune(snap.Answer)), snap.MaxRounds)
	fmt.Fprintln(out, "Legend: O = Hit, ? = Present, _ = Miss")
	fmt.Fprintln(out, "Type your guess and press Enter:")

	for {
		fmt.Fprintf(out, "Attempt %d: ", snap.CurrentRound+1)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return err
			}
			return fmt.Errorf("input closed before the game ended: %w", io.ErrUnexpectedEOF)
		}

		res := sess.SubmitGuess(sc.Text())
		if !res.Success {
			fmt.Fprintf(out, "! %s\n", res.Message)
			continue
		}
		fmt.Fprintln(out, "Your guess: ", letters(res.Verdicts))
		fmt.Fprintln(out, "Feedback:   ", marks(res.Verdicts))

		snap = sess.State()
		if snap.IsGameOver {
			if snap.IsWon {
				fmt.Fprintf(out, "\nCorrect! You won in %d tries!\n", snap.CurrentRound)
			} else {
				fmt.Fprintf(out, "\nGame over! The word was: %s\n", snap.Answer)
			}
			return nil
		}
		fmt.Fprintf(out, "Remaining attempts: %d\n", snap.RemainingRounds)
	}
}

func letters(vs []game.Verdict) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.Letter
	}
	return strings.Join(parts, " ")
}

func marks(vs []game.Verdict) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		switch v.Status {
		case game.StatusCorrect:
			parts[i] = "O"
		case game.StatusPresent:
			parts[i] = "?"
		default:
			parts[i] = "_"
		}
	}
	return strings.Join(parts, " ")
}
