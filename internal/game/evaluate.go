// internal/game/evaluate.go

package game

// Evaluate scores guess against answer with the two-pass algorithm.
//
// Pass 1 counts every answer letter whose position is not matched by the guess.
// Pass 2 walks left to right: an in-place match is correct; otherwise the letter
// is present while its unmatched count lasts, and absent after that.
//
// Both inputs should have the same number of letters; Apply enforces that.
// Guess positions past the end of answer are never correct.
func Evaluate(answer, guess string) []Verdict {
	a := []rune(answer)
	g := []rune(guess)
	out := make([]Verdict, len(g))

	unmatched := make(map[rune]int, len(a))
	for i := range a {
		if i >= len(g) || g[i] != a[i] {
			unmatched[a[i]]++
		}
	}

	for i, r := range g {
		v := Verdict{Letter: string(r), Position: i}
		switch {
		case i < len(a) && r == a[i]:
			v.Status = StatusCorrect
		case unmatched[r] > 0:
			v.Status = StatusPresent
			unmatched[r]--
		default:
			v.Status = StatusAbsent
		}
		out[i] = v
	}
	return out
}
