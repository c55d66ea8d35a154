package engine

// ApplyAction applies an action for the current seat and advances the turn.
// An illegal action returns a *ProtocolError and leaves the state unchanged.
func (g *GameState) ApplyAction(a Action) (Outcome, error) {
	if err := g.validate(a); err != nil {
		return nil, err
	}

	var out Outcome
	switch act := a.(type) {
	case Play:
		out = g.play(uint8(act.Slot))
	case Discard:
		out = g.discard(uint8(act.Slot))
	case Clue:
		out = g.clue(act)
	}

	g.LastAction = LastActionInfo{Seat: g.CurrentSeat, Action: a, Outcome: out}
	g.advanceTurn()
	return out, nil
}

// play resolves a Play: success extends the firework, failure costs a life
// and sends the card to the discard pile.
func (g *GameState) play(slot uint8) PlayOutcome {
	seat := g.CurrentSeat
	card := g.Hands[seat].removeAt(slot)
	col := card.Colour()

	if uint8(card.Rank()) == g.Fireworks[col]+1 {
		g.Fireworks[col]++
		g.Score++
		if g.Score == MaxScore {
			g.Status = StatusWon
			return PlayOutcome{Card: card, Accepted: true}
		}
		if g.Fireworks[col] == MaxRank && g.Clues < g.Rules.MaxClues {
			g.Clues++
		}
		return PlayOutcome{Card: card, Accepted: true, Drew: g.refill(seat)}
	}

	g.Lives--
	g.pushDiscard(card)
	if g.Lives == 0 {
		g.Status = StatusLost
		return PlayOutcome{Card: card}
	}
	return PlayOutcome{Card: card, Drew: g.refill(seat)}
}

// discard resolves a Discard: the card is lost and a clue token regained.
func (g *GameState) discard(slot uint8) DiscardOutcome {
	seat := g.CurrentSeat
	card := g.Hands[seat].removeAt(slot)
	g.pushDiscard(card)
	g.Clues++
	return DiscardOutcome{Card: card, Drew: g.refill(seat)}
}

// clue resolves a Clue: spend a token and report the matching slots.
func (g *GameState) clue(c Clue) ClueOutcome {
	target := g.AbsoluteSeat(c.Target, g.CurrentSeat)
	g.Clues--

	var matched SlotSet
	h := &g.Hands[target]
	for i := uint8(0); i < h.Len; i++ {
		if c.Matches(h.Cards[i]) {
			matched = matched.Add(int(i))
		}
	}
	return ClueOutcome{Matched: matched}
}

// refill appends a fresh card to the seat's hand when the deck allows it.
func (g *GameState) refill(seat uint8) bool {
	if g.DeckLen == 0 {
		return false
	}
	g.Hands[seat].push(g.draw())
	return true
}

func (g *GameState) pushDiscard(c Card) {
	g.Discards[g.DiscardLen] = c
	g.DiscardLen++
}
