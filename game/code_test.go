package game

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestFromValues(t *testing.T) {
	is := is.New(t)
	rules := DefaultRules()
	values := []int{1, 2, 3, 4}
	c, err := FromValues(rules, values)
	is.NoErr(err)
	is.Equal(c.Len(), 4)

	// The code keeps its own copy.
	values[0] = 5
	v := c.Values()
	is.Equal(v, []int{1, 2, 3, 4})
	v[1] = 5
	is.Equal(c.Values(), []int{1, 2, 3, 4})
}

func TestFromValuesInvalidLength(t *testing.T) {
	is := is.New(t)
	rules := DefaultRules()
	for _, values := range [][]int{{1, 2, 3}, {}, nil, {1, 2, 3, 4, 5}} {
		c, err := FromValues(rules, values)
		is.True(errors.Is(err, ErrInvalidLength))
		var ile *InvalidLengthError
		is.True(errors.As(err, &ile))
		is.Equal(ile.Got, len(values))
		is.Equal(ile.Want, 4)
		is.Equal(c.Len(), 0)
	}
}

func TestFromValuesDoesNotRangeCheck(t *testing.T) {
	is := is.New(t)
	c, err := FromValues(DefaultRules(), []int{9, 0, 7, 1})
	is.NoErr(err)
	is.Equal(c.Values(), []int{9, 0, 7, 1})
}

func TestCodeString(t *testing.T) {
	is := is.New(t)
	rules := DefaultRules()
	c, err := FromValues(rules, []int{1, 0, 5, 3})
	is.NoErr(err)
	is.Equal(c.String(), "{1, 0, 5, 3}")
	is.Equal(c.Compact(), "1053")

	one, err := FromValues(Rules{CodeLength: 1, MaxDigit: 5, MaxAttempts: 1}, []int{4})
	is.NoErr(err)
	is.Equal(one.String(), "{4}")
}

func TestCodeEqual(t *testing.T) {
	is := is.New(t)
	rules := DefaultRules()
	a, _ := FromValues(rules, []int{1, 2, 3, 4})
	b, _ := FromValues(rules, []int{1, 2, 3, 4})
	c, _ := FromValues(rules, []int{1, 2, 4, 3})
	is.True(a.Equal(b))
	is.True(!a.Equal(c))
	is.True(!a.Equal(Code{}))
}
