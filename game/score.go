package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Score is the response to a guess: how many digits are in the right
// place, and how many are right but in the wrong place.
type Score struct {
	Correct   int
	Incorrect int
}

// Solved is true when every position matched.
func (s Score) Solved(codeLength int) bool {
	return s.Correct == codeLength
}

func (s Score) String() string {
	return fmt.Sprintf("Correct (Exact Match): %d, Incorrect (Wrong Place): %d",
		s.Correct, s.Incorrect)
}

// element keeps track of where a digit started out, so the trace output
// still makes sense after the working copies have shrunk.
type element struct {
	index int
	value int
}

func elements(c Code) []element {
	els := make([]element, len(c.values))
	for i, v := range c.values {
		els[i] = element{index: i, value: v}
	}
	return els
}

func findInSequence(seq []element, value int) int {
	for i := range seq {
		if seq[i].value == value {
			return i
		}
	}
	return -1
}

func remove(seq []element, i int) []element {
	return append(seq[:i], seq[i+1:]...)
}

// ScoreGuess compares a guess against the secret. Each secret digit is
// consumed by at most one guess digit: exact matches are taken out first,
// then every remaining guess digit takes the first remaining secret digit
// of the same value, if there is one. Neither code is modified.
func ScoreGuess(secret, guess Code) (Score, error) {
	if secret.Len() != guess.Len() {
		return Score{}, &LengthMismatchError{Secret: secret.Len(), Guess: guess.Len()}
	}
	var score Score
	sec := elements(secret)
	gue := elements(guess)

	// Removing a pair shifts the rest left, so only advance on a miss.
	idx := 0
	for idx < len(gue) {
		if gue[idx].value == sec[idx].value {
			score.Correct++
			log.Trace().Int("secret-idx", sec[idx].index).Int("guess-idx", gue[idx].index).
				Int("value", gue[idx].value).Msg("exact-match")
			gue = remove(gue, idx)
			sec = remove(sec, idx)
		} else {
			idx++
		}
	}

	for _, g := range gue {
		pos := findInSequence(sec, g.value)
		if pos == -1 {
			continue
		}
		score.Incorrect++
		log.Trace().Int("secret-idx", sec[pos].index).Int("guess-idx", g.index).
			Int("value", g.value).Msg("wrong-place-match")
		sec = remove(sec, pos)
	}
	return score, nil
}
