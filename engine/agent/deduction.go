package agent

import engine "github.com/edwin-thomson/Hanabi/engine"

// DeductionGroup is the knowledge for one hand, oldest slot first.
type DeductionGroup []*PossibilityMatrix

// tally counts physical cards already accounted for.
type tally struct {
	cards   [engine.NumColours][engine.MaxRank + 1]int
	colours [engine.NumColours]int
	ranks   [engine.MaxRank + 1]int
}

func (t *tally) addCard(c engine.Card) {
	t.cards[c.Colour()][c.Rank()]++
	t.colours[c.Colour()]++
	t.ranks[c.Rank()]++
}

// addKnown counts whatever the slot's knowledge pins down.
func (t *tally) addKnown(m *PossibilityMatrix) {
	if c, ok := m.KnownCard(); ok {
		t.addCard(c)
		return
	}
	if col, ok := m.KnownColour(); ok {
		t.colours[col]++
	}
	if r, ok := m.KnownRank(); ok {
		t.ranks[r]++
	}
}

// colourSupply is the number of physical cards of one colour.
const colourSupply = 10

// Deduce runs scarcity elimination over the group until a full pass changes
// nothing. visible are physical cards the vantage point can see; others are
// slots outside the group whose known facts also account for cards. It
// reports whether any slot changed.
func (g DeductionGroup) Deduce(visible []engine.Card, others []*PossibilityMatrix) bool {
	var base tally
	for _, c := range visible {
		base.addCard(c)
	}
	for _, m := range others {
		base.addKnown(m)
	}

	changed := false
	for progress := true; progress; {
		progress = false
		for i, m := range g {
			if _, ok := m.KnownCard(); ok {
				continue
			}
			t := base
			for j, o := range g {
				if j != i {
					t.addKnown(o)
				}
			}
			if eliminate(m, &t) {
				progress = true
				changed = true
			}
		}
	}
	return changed
}

// eliminate removes every identity, colour and rank whose whole supply is
// already accounted for elsewhere.
func eliminate(m *PossibilityMatrix, t *tally) bool {
	changed := false
	for c := engine.Colour(0); c < engine.NumColours; c++ {
		for r := engine.Rank(1); r <= engine.MaxRank; r++ {
			n, supply := t.cards[c][r], engine.Copies(r)
			if n > supply {
				engine.Invariantf("%d copies of %v accounted for, only %d exist", n, engine.NewCard(c, r), supply)
			}
			if n == supply && m.EliminateCard(engine.NewCard(c, r)) {
				changed = true
			}
		}
		if n := t.colours[c]; n > colourSupply {
			engine.Invariantf("%d %s cards accounted for, only %d exist", n, c, colourSupply)
		} else if n == colourSupply && m.EliminateColour(c) {
			changed = true
		}
	}
	for r := engine.Rank(1); r <= engine.MaxRank; r++ {
		supply := engine.NumColours * engine.Copies(r)
		if n := t.ranks[r]; n > supply {
			engine.Invariantf("%d rank-%d cards accounted for, only %d exist", n, r, supply)
		} else if n == supply && m.EliminateNumber(r) {
			changed = true
		}
	}
	return changed
}
