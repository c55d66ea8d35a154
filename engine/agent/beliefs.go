package agent

import engine "github.com/edwin-thomson/Hanabi/engine"

// Beliefs is the public summary every seat derives identically from played
// and lost cards.
type Beliefs struct {
	Playable engine.CardSet // next card of every colour
	Unsafe   engine.CardSet // last unseen copy; losing it caps a firework
	Useless  engine.CardSet // can never be played again

	lost [engine.NumColours][engine.MaxRank + 1]uint8
}

// NewBeliefs returns the summary for a fresh deal.
func NewBeliefs() Beliefs {
	return Beliefs{
		Playable: engine.RankSet(1),
		Unsafe:   engine.RankSet(engine.MaxRank),
	}
}

// Played records a successful play of c.
func (b *Beliefs) Played(c engine.Card) {
	b.Playable = b.Playable.Remove(c)
	b.Useless = b.Useless.Add(c)
	b.Unsafe = b.Unsafe.Remove(c)
	if c.Rank() < engine.MaxRank {
		b.Playable = b.Playable.Add(engine.NewCard(c.Colour(), c.Rank()+1))
	}
}

// Lost records c going to the discard pile, by discard or failed play.
func (b *Beliefs) Lost(c engine.Card) {
	b.lost[c.Colour()][c.Rank()]++
	switch {
	case b.Unsafe.Has(c):
		// That was the last copy: the colour can never pass c.Rank()-1.
		b.Unsafe = b.Unsafe.Remove(c)
		for r := c.Rank(); r <= engine.MaxRank; r++ {
			dead := engine.NewCard(c.Colour(), r)
			b.Useless = b.Useless.Add(dead)
			b.Unsafe = b.Unsafe.Remove(dead)
			b.Playable = b.Playable.Remove(dead)
		}
	case b.Useless.Has(c):
	case int(b.lost[c.Colour()][c.Rank()]) == engine.Copies(c.Rank())-1:
		b.Unsafe = b.Unsafe.Add(c)
	}
}
