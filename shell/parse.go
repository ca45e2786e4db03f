package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/domino14/mastermind/game"
)

var (
	errEmptyGuess      = errors.New("please enter a guess")
	errNotNumeric      = errors.New("guesses may only contain digits")
	errDigitOutOfRange = errors.New("digit out of range")
)

// parseGuess turns what the player typed into a code. It accepts 1234,
// 1 2 3 4 and 1,2,3,4. Every digit must be within the rules' range before
// the code is built.
func parseGuess(line string, rules game.Rules) (game.Code, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return game.Code{}, errEmptyGuess
	}

	var tokens []string
	if strings.ContainsAny(line, ", \t") {
		tokens = strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
	} else {
		for _, r := range line {
			tokens = append(tokens, string(r))
		}
	}

	values := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		if !allDigits(tok) {
			return game.Code{}, fmt.Errorf("%w: %q", errNotNumeric, tok)
		}
		if len(tok) > 1 {
			return game.Code{}, fmt.Errorf("%w: %s is not a single digit between 0 and %d",
				errDigitOutOfRange, tok, rules.MaxDigit)
		}
		v := int(tok[0] - '0')
		if v > rules.MaxDigit {
			return game.Code{}, fmt.Errorf("%w: %d is not between 0 and %d",
				errDigitOutOfRange, v, rules.MaxDigit)
		}
		values = append(values, v)
	}
	return game.FromValues(rules, values)
}

// allDigits rejects signs, so "+2" and "-0" are not digits.
func allDigits(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

func exampleGuess(rules game.Rules) string {
	var sb strings.Builder
	for i := 0; i < rules.CodeLength; i++ {
		sb.WriteString(strconv.Itoa((i + 1) % (rules.MaxDigit + 1)))
	}
	return sb.String()
}
