package sim

import (
	"fmt"
	"strings"

	engine "github.com/edwin-thomson/Hanabi/engine"
)

// Histogram aggregates final scores over many games.
type Histogram struct {
	Scores   [engine.MaxScore + 1]int
	Games    int
	Total    int
	ByStatus map[engine.Status]int
}

// Add records one finished game.
func (h *Histogram) Add(r engine.Result) {
	if h.ByStatus == nil {
		h.ByStatus = make(map[engine.Status]int)
	}
	h.Scores[r.Score]++
	h.Games++
	h.Total += r.Score
	h.ByStatus[r.Status]++
}

// Mean is the average score, 0 for an empty histogram.
func (h *Histogram) Mean() float64 {
	if h.Games == 0 {
		return 0
	}
	return float64(h.Total) / float64(h.Games)
}

// Summarize builds a histogram from a batch of results.
func Summarize(results []engine.Result) *Histogram {
	h := &Histogram{}
	for _, r := range results {
		h.Add(r)
	}
	return h
}

func (h *Histogram) String() string {
	var sb strings.Builder
	sb.WriteString("Scores:")
	for s, n := range h.Scores {
		fmt.Fprintf(&sb, " %d:%d", s, n)
	}
	fmt.Fprintf(&sb, "\nTotal: %d Avg: %.3f\n", h.Total, h.Mean())
	sb.WriteString("Outcomes:")
	for _, st := range []engine.Status{engine.StatusWon, engine.StatusExhausted, engine.StatusLost} {
		fmt.Fprintf(&sb, " %s:%d", st, h.ByStatus[st])
	}
	sb.WriteString("\n")
	return sb.String()
}
