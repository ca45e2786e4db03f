package game

import (
	"fmt"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat/combin"
)

// MaxEnumerable caps how many codes AllCodes is willing to build. The
// default rules have 1296.
const MaxEnumerable = 1 << 20

// AllCodes returns every code the rules allow, in lexicographic order.
func AllCodes(rules Rules) ([]Code, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if n := rules.NumCodes(); n > MaxEnumerable {
		return nil, fmt.Errorf("%w: %d codes", ErrTooManyCodes, n)
	}
	lens := make([]int, rules.CodeLength)
	for i := range lens {
		lens[i] = rules.MaxDigit + 1
	}
	return lo.Map(combin.Cartesian(lens), func(values []int, _ int) Code {
		return Code{values: values}
	}), nil
}

// ConsistentCodes returns the codes that could still be the secret given
// the scores in history.
func ConsistentCodes(rules Rules, history []Turn) ([]Code, error) {
	all, err := AllCodes(rules)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(candidate Code, _ int) bool {
		for _, t := range history {
			s, err := ScoreGuess(candidate, t.Guess)
			if err != nil || s != t.Score {
				return false
			}
		}
		return true
	}), nil
}
