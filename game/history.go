package game

// Turn is one guess-and-score cycle.
type Turn struct {
	Number int
	Guess  Code
	Score  Score
}

// History returns a copy of the turns played so far, oldest first.
func (g *Game) History() []Turn {
	h := make([]Turn, len(g.history))
	copy(h, g.history)
	return h
}
