package game

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultCodeLength  = 4
	DefaultMaxDigit    = 5
	DefaultMaxAttempts = 10

	// Digits are typed one character each, so the alphabet stops at 9.
	MaxDigitLimit = 9
	// A code has to fit on one line of input.
	MaxCodeLength    = 16
	MaxAttemptsLimit = 100
)

var ErrInvalidRules = errors.New("invalid rules")

// Rules is a simple struct that encapsulates the constants a game is
// played with: how long a code is, the largest digit that may appear in it,
// and how many guesses the player gets.
type Rules struct {
	CodeLength  int
	MaxDigit    int
	MaxAttempts int
}

func DefaultRules() Rules {
	return Rules{
		CodeLength:  DefaultCodeLength,
		MaxDigit:    DefaultMaxDigit,
		MaxAttempts: DefaultMaxAttempts,
	}
}

func (r Rules) Validate() error {
	if r.CodeLength < 1 || r.CodeLength > MaxCodeLength {
		return fmt.Errorf("%w: code length must be between 1 and %d, got %d",
			ErrInvalidRules, MaxCodeLength, r.CodeLength)
	}
	if r.MaxDigit < 0 || r.MaxDigit > MaxDigitLimit {
		return fmt.Errorf("%w: max digit must be between 0 and %d, got %d",
			ErrInvalidRules, MaxDigitLimit, r.MaxDigit)
	}
	if r.MaxAttempts < 1 || r.MaxAttempts > MaxAttemptsLimit {
		return fmt.Errorf("%w: max attempts must be between 1 and %d, got %d",
			ErrInvalidRules, MaxAttemptsLimit, r.MaxAttempts)
	}
	return nil
}

// NumCodes is the size of the code space, (MaxDigit+1)^CodeLength. It
// saturates at math.MaxInt.
func (r Rules) NumCodes() int {
	n := 1
	base := r.MaxDigit + 1
	for i := 0; i < r.CodeLength; i++ {
		if n > math.MaxInt/base {
			return math.MaxInt
		}
		n *= base
	}
	return n
}

func (r Rules) String() string {
	return fmt.Sprintf("code length %d, digits 0-%d, %d attempts",
		r.CodeLength, r.MaxDigit, r.MaxAttempts)
}
