package game

import (
	"strconv"
	"strings"
)

// Code is an ordered sequence of digits; either the secret or a guess.
// It cannot be changed once built.
type Code struct {
	values []int
}

// RandomCode draws every digit independently and uniformly from
// [0, rules.MaxDigit].
func RandomCode(rules Rules, src Source) Code {
	values := make([]int, rules.CodeLength)
	for i := range values {
		values[i] = src.Intn(rules.MaxDigit + 1)
	}
	return Code{values: values}
}

// FromValues builds a code out of caller-supplied digits. Only the length
// is checked; the input layer is responsible for keeping each digit within
// [0, rules.MaxDigit].
func FromValues(rules Rules, values []int) (Code, error) {
	if len(values) != rules.CodeLength {
		return Code{}, &InvalidLengthError{Got: len(values), Want: rules.CodeLength}
	}
	v := make([]int, len(values))
	copy(v, values)
	return Code{values: v}, nil
}

func (c Code) Len() int {
	return len(c.values)
}

// Values returns a copy of the digits.
func (c Code) Values() []int {
	v := make([]int, len(c.values))
	copy(v, c.values)
	return v
}

func (c Code) Equal(o Code) bool {
	if len(c.values) != len(o.values) {
		return false
	}
	for i := range c.values {
		if c.values[i] != o.values[i] {
			return false
		}
	}
	return true
}

// String renders the code as {1, 2, 3, 4}.
func (c Code) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, v := range c.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteString("}")
	return sb.String()
}

// Compact renders the code the way a player types it, e.g. 1234.
func (c Code) Compact() string {
	var sb strings.Builder
	for _, v := range c.values {
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}
