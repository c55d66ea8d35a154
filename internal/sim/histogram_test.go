package sim

import (
	"testing"

	engine "github.com/edwin-thomson/Hanabi/engine"
	"github.com/stretchr/testify/assert"
)

func TestHistogram(t *testing.T) {
	h := Summarize([]engine.Result{
		{Status: engine.StatusWon, Score: 25},
		{Status: engine.StatusExhausted, Score: 19},
		{Status: engine.StatusExhausted, Score: 19},
		{Status: engine.StatusLost, Score: 0},
	})
	assert.Equal(t, 4, h.Games)
	assert.Equal(t, 63, h.Total)
	assert.InDelta(t, 15.75, h.Mean(), 1e-9)
	assert.Equal(t, 2, h.Scores[19])
	assert.Equal(t, 1, h.Scores[0])
	assert.Equal(t, 2, h.ByStatus[engine.StatusExhausted])

	s := h.String()
	assert.Contains(t, s, " 19:2 ")
	assert.Contains(t, s, "Total: 63 Avg: 15.750")
	assert.Contains(t, s, "won:1 exhausted:2 lost:1")
}

func TestEmptyHistogram(t *testing.T) {
	var h Histogram
	assert.Zero(t, h.Mean())
	assert.Contains(t, h.String(), "Total: 0 Avg: 0.000")
}
