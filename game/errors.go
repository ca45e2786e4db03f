package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength  = errors.New("invalid code length")
	ErrLengthMismatch = errors.New("code length mismatch")
	ErrGameOver       = errors.New("game is over")
	ErrSecretHidden   = errors.New("the secret is only revealed once the game is over")
	ErrTooManyCodes   = errors.New("code space too large to enumerate")
)

// InvalidLengthError is returned when a code is built from a sequence
// whose length is not the rules' code length.
type InvalidLengthError struct {
	Got  int
	Want int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("%v: got %d digits, want %d", ErrInvalidLength, e.Got, e.Want)
}

func (e *InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// LengthMismatchError is returned when a secret and a guess of different
// lengths are compared.
type LengthMismatchError struct {
	Secret int
	Guess  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v: secret has %d digits, guess has %d", ErrLengthMismatch, e.Secret, e.Guess)
}

func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}
