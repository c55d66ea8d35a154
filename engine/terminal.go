package engine

// Status is the phase of the turn state machine.
type Status uint8

const (
	StatusSetup     Status = iota // built, not dealt
	StatusRunning                 // turn loop
	StatusWon                     // every firework completed
	StatusLost                    // life tokens exhausted
	StatusExhausted               // deck ran out and the final round ended
)

func (s Status) String() string {
	switch s {
	case StatusSetup:
		return "setup"
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusExhausted:
		return "exhausted"
	}
	return "unknown"
}

// IsTerminal returns true when the game is over.
func (g *GameState) IsTerminal() bool {
	return g.Status == StatusWon || g.Status == StatusLost || g.Status == StatusExhausted
}

// FinalScore is the reported result. Running out of lives forfeits the
// fireworks built so far.
func (g *GameState) FinalScore() int {
	if g.Status == StatusLost {
		return 0
	}
	return int(g.Score)
}

// advanceTurn rotates to the next seat and checks the deck-out end condition.
// Once the deck is empty every seat gets exactly one more turn.
func (g *GameState) advanceTurn() {
	if g.IsTerminal() {
		return
	}
	g.TurnNumber++
	g.CurrentSeat = g.NextSeat(g.CurrentSeat)

	if g.DeckLen == 0 {
		if g.FinalTurns == 0 {
			g.Status = StatusExhausted
			return
		}
		g.FinalTurns--
	}
}
