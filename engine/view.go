package engine

// View is one seat's read-only window onto a live game. Every other seat's
// hand is visible; the seat's own hand is not. Seats passed to and returned
// from a View are relative: 0 is the viewer, 1 the next seat to act after it.
type View struct {
	g    *GameState
	seat uint8
}

// ViewFor returns the masked view for an absolute seat.
func (g *GameState) ViewFor(seat uint8) View {
	return View{g: g, seat: seat}
}

// Seat returns the viewer's absolute seat number.
func (v View) Seat() int { return int(v.seat) }

// NumSeats returns the number of seats at the table.
func (v View) NumSeats() int { return int(v.g.Rules.NumSeats) }

// HandSize returns the number of cards in the viewer's own hand.
func (v View) HandSize() int { return int(v.g.Hands[v.seat].Len) }

// HandLen returns the number of cards held by the seat at relative offset rel.
// Unlike Hand it may be called for the viewer itself.
func (v View) HandLen(rel int) int {
	return int(v.g.Hands[v.g.AbsoluteSeat(rel, v.seat)].Len)
}

// Hand returns a copy of the hand held by the seat at relative offset rel.
// Asking for one's own hand panics with a *ProtocolError.
func (v View) Hand(rel int) []Card {
	abs := v.g.AbsoluteSeat(rel, v.seat)
	if abs == v.seat {
		panic(&ProtocolError{Seat: int(v.seat), Reason: "cannot look at own hand"})
	}
	return v.g.Hands[abs].Slice()
}

func (v View) Clues() int    { return int(v.g.Clues) }
func (v View) MaxClues() int { return int(v.g.Rules.MaxClues) }
func (v View) Lives() int    { return int(v.g.Lives) }
func (v View) Score() int    { return int(v.g.Score) }
func (v View) DeckLen() int  { return int(v.g.DeckLen) }

// Discards returns a copy of the discard pile, oldest first.
func (v View) Discards() []Card { return v.g.DiscardPile() }

// Fireworks returns the height of every colour's stack.
func (v View) Fireworks() [NumColours]uint8 { return v.g.Fireworks }

// Rules returns the table configuration.
func (v View) Rules() Rules { return v.g.Rules }
