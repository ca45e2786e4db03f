package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRecord(t *testing.T) {
	s := &Session{}
	s.Record(true, 4)
	s.Record(false, 10)
	s.Record(true, 6)
	s.Record(true, 5)

	assert.Equal(t, 4, s.Played())
	assert.Equal(t, 3, s.Won())
	assert.Equal(t, 1, s.Lost())
	assert.InDelta(t, 0.75, s.WinRate(), epsilon)
	assert.Equal(t, 3, s.Attempts().Count())
	assert.InDelta(t, 5.0, s.Attempts().Mean(), epsilon)
}

func TestSessionSummary(t *testing.T) {
	s := &Session{}
	assert.Equal(t, "Games played: 0\nWon: 0, Lost: 0 (0.0% won)\n", s.Summary(DefaultConfidence))

	s.Record(true, 4)
	s.Record(true, 6)
	summary := s.Summary(DefaultConfidence)
	assert.Contains(t, summary, "Games played: 2\n")
	assert.Contains(t, summary, "Won: 2, Lost: 0 (100.0% won)\n")
	assert.Contains(t, summary, "Attempts per win: 5.00 ± 1.96 (95% confidence), stdev 1.41\n")
}

func TestSessionHistogram(t *testing.T) {
	s := &Session{}
	var buf bytes.Buffer
	require.NoError(t, s.Histogram(&buf))
	assert.Equal(t, "No games won yet.\n", buf.String())

	s.Record(true, 3)
	s.Record(true, 3)
	buf.Reset()
	require.NoError(t, s.Histogram(&buf))
	assert.Equal(t, "All 2 win(s) took 3 attempt(s).\n", buf.String())

	for _, a := range []int{1, 4, 4, 5, 7, 10} {
		s.Record(true, a)
	}
	buf.Reset()
	require.NoError(t, s.Histogram(&buf))
	assert.NotEmpty(t, strings.TrimSpace(buf.String()))
}
