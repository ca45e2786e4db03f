package game

import (
	"testing"

	"github.com/matryer/is"
)

func TestRandomCodeDistribution(t *testing.T) {
	is := is.New(t)
	rules := DefaultRules()
	src := NewSource(0)
	counts := make([]int, rules.MaxDigit+1)
	draws := 15000
	for i := 0; i < draws; i++ {
		c := RandomCode(rules, src)
		is.Equal(c.Len(), rules.CodeLength)
		for _, v := range c.Values() {
			is.True(v >= 0 && v <= rules.MaxDigit)
			counts[v]++
		}
	}
	expected := draws * rules.CodeLength / (rules.MaxDigit + 1)
	for _, ct := range counts {
		// About 5.5 standard deviations either way.
		is.True(ct > expected-500)
		is.True(ct < expected+500)
	}
}

func TestSeededSourceReplays(t *testing.T) {
	is := is.New(t)
	rules := DefaultRules()
	a := NewSource(0x7AFEBABEF00DBADA)
	b := NewSource(0x7AFEBABEF00DBADA)
	for i := 0; i < 50; i++ {
		is.True(RandomCode(rules, a).Equal(RandomCode(rules, b)))
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	is := is.New(t)
	rules := DefaultRules()
	a := NewSource(1)
	b := NewSource(2)
	same := true
	for i := 0; i < 20; i++ {
		if !RandomCode(rules, a).Equal(RandomCode(rules, b)) {
			same = false
		}
	}
	is.True(!same)
}

func TestBackToBackSecretsAreIndependent(t *testing.T) {
	// Generating two secrets in the same second must not hand out the
	// same code every time.
	is := is.New(t)
	rules := DefaultRules()
	src := NewSource(0)
	same := 0
	for i := 0; i < 100; i++ {
		g1, err := NewGame(rules, src)
		is.NoErr(err)
		g2, err := NewGame(rules, src)
		is.NoErr(err)
		if g1.secret.Equal(g2.secret) {
			same++
		}
	}
	// 1 in 1296 odds per pair.
	is.True(same < 5)
}
