package engine

// validate checks an action submitted by the current seat against the true
// state. Every failure is a protocol violation.
func (g *GameState) validate(a Action) *ProtocolError {
	seat := g.CurrentSeat
	if g.Status != StatusRunning {
		return protocolf(seat, a, "game is not running (%s)", g.Status)
	}
	switch act := a.(type) {
	case Play:
		if act.Slot < 0 || act.Slot >= int(g.Hands[seat].Len) {
			return protocolf(seat, a, "slot out of range (hand size %d)", g.Hands[seat].Len)
		}
	case Discard:
		if act.Slot < 0 || act.Slot >= int(g.Hands[seat].Len) {
			return protocolf(seat, a, "slot out of range (hand size %d)", g.Hands[seat].Len)
		}
		if g.Clues >= g.Rules.MaxClues {
			return protocolf(seat, a, "cannot discard with %d clue tokens", g.Clues)
		}
	case Clue:
		if g.Clues == 0 {
			return protocolf(seat, a, "no clue tokens left")
		}
		if act.Target <= 0 || act.Target >= int(g.Rules.NumSeats) {
			if act.Target%int(g.Rules.NumSeats) == 0 {
				return protocolf(seat, a, "cannot clue yourself")
			}
			return protocolf(seat, a, "target out of range")
		}
		switch act.Dimension {
		case ByColour:
			if act.Value >= NumColours {
				return protocolf(seat, a, "no such colour %d", act.Value)
			}
		case ByRank:
			if act.Value < 1 || act.Value > MaxRank {
				return protocolf(seat, a, "no such rank %d", act.Value)
			}
		default:
			return protocolf(seat, a, "unknown clue dimension %d", act.Dimension)
		}
	case nil:
		return protocolf(seat, nil, "no action")
	default:
		return protocolf(seat, a, "unknown action type %T", a)
	}
	return nil
}

// LegalActions lists every action the current seat may submit, plays first,
// then discards, then clues by target, colour clues before rank clues.
func (g *GameState) LegalActions() []Action {
	if g.Status != StatusRunning {
		return nil
	}
	seat := g.CurrentSeat
	n := int(g.Hands[seat].Len)
	out := make([]Action, 0, 2*n+int(g.Rules.NumSeats)*(NumColours+MaxRank))

	for i := 0; i < n; i++ {
		out = append(out, Play{Slot: i})
	}
	if g.Clues < g.Rules.MaxClues {
		for i := 0; i < n; i++ {
			out = append(out, Discard{Slot: i})
		}
	}
	if g.Clues > 0 {
		for t := 1; t < int(g.Rules.NumSeats); t++ {
			for c := Colour(0); c < NumColours; c++ {
				out = append(out, ColourClue(t, c))
			}
			for r := Rank(1); r <= MaxRank; r++ {
				out = append(out, RankClue(t, r))
			}
		}
	}
	return out
}

// IsLegal reports whether the current seat may submit a.
func (g *GameState) IsLegal(a Action) bool {
	return g.validate(a) == nil
}
