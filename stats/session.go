package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
)

const (
	DefaultConfidence = 95.0

	histogramBins  = 10
	histogramWidth = 40
)

// Session tallies the games played since the program started.
type Session struct {
	played int
	won    int
	lost   int

	// Only games that were won count towards attempts.
	attempts    Statistic
	winAttempts []float64
}

// Record adds a finished game.
func (s *Session) Record(won bool, attempts int) {
	s.played++
	if !won {
		s.lost++
		return
	}
	s.won++
	s.attempts.Push(float64(attempts))
	s.winAttempts = append(s.winAttempts, float64(attempts))
}

func (s *Session) Played() int { return s.played }
func (s *Session) Won() int    { return s.won }
func (s *Session) Lost() int   { return s.lost }

// Attempts is the running statistic of attempts used in won games.
func (s *Session) Attempts() *Statistic {
	return &s.attempts
}

// WinRate is the fraction of played games that were won.
func (s *Session) WinRate() float64 {
	if s.played == 0 {
		return 0
	}
	return float64(s.won) / float64(s.played)
}

// Summary renders the session tally. The average number of attempts comes
// with a confidence interval at the given confidence level (in percent).
func (s *Session) Summary(confidence float64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games played: %d\n", s.played)
	fmt.Fprintf(&sb, "Won: %d, Lost: %d (%.1f%% won)\n", s.won, s.lost, 100*s.WinRate())
	if s.won == 0 {
		return sb.String()
	}
	fmt.Fprintf(&sb, "Attempts per win: %.2f ± %.2f (%.0f%% confidence), stdev %.2f\n",
		s.attempts.Mean(), ZVal(confidence)*s.attempts.StandardError(), confidence,
		s.attempts.Stdev())
	return sb.String()
}

// Histogram prints the spread of attempts used in won games.
func (s *Session) Histogram(w io.Writer) error {
	if len(s.winAttempts) == 0 {
		_, err := io.WriteString(w, "No games won yet.\n")
		return err
	}
	if s.attempts.Variance() == 0 {
		_, err := fmt.Fprintf(w, "All %d win(s) took %.0f attempt(s).\n",
			len(s.winAttempts), s.winAttempts[0])
		return err
	}
	hist := histogram.Hist(histogramBins, s.winAttempts)
	return histogram.Fprint(w, hist, histogram.Linear(histogramWidth))
}
