package game

import (
	"fmt"
	"strings"
)

func turnRow(t Turn, codeWidth int) string {
	return fmt.Sprintf("%3d: %-*s  %7d  %9d", t.Number, codeWidth, t.Guess.String(),
		t.Score.Correct, t.Score.Incorrect)
}

// ToDisplayText renders the history of the game as a table, followed by
// how it stands. The secret only shows up once the game is lost.
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	// "{1, 2, 3, 4}" takes three chars per digit.
	codeWidth := 3 * g.rules.CodeLength
	if codeWidth < len("Guess") {
		codeWidth = len("Guess")
	}

	fmt.Fprintf(&sb, "     %-*s  %7s  %9s\n", codeWidth, "Guess", "Correct", "Incorrect")
	for _, t := range g.history {
		sb.WriteString(turnRow(t, codeWidth))
		sb.WriteString("\n")
	}

	switch g.playing {
	case Playing:
		fmt.Fprintf(&sb, "Attempts left: %d of %d\n", g.AttemptsLeft(), g.rules.MaxAttempts)
	case Won:
		fmt.Fprintf(&sb, "Solved in %d attempt(s).\n", len(g.history))
	case Lost:
		fmt.Fprintf(&sb, "Out of luck. The code was: Code - %s\n", g.secret.String())
	}
	return sb.String()
}
