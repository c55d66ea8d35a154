package agent

import (
	engine "github.com/edwin-thomson/Hanabi/engine"
)

// clueCandidate is a clue that would single out one card of a hand.
type clueCandidate struct {
	clue engine.Clue
	slot int
}

// isolates reports which clue dimensions single out hand[i] as the oldest
// match, ignoring earlier slots for which skip returns true.
func isolates(hand []engine.Card, i int, skip func(j int) bool) (byColour, byRank bool) {
	byColour, byRank = true, true
	for j := 0; j < i; j++ {
		if skip != nil && skip(j) {
			continue
		}
		if hand[j].Colour() == hand[i].Colour() {
			byColour = false
		}
		if hand[j].Rank() == hand[i].Rank() {
			byRank = false
		}
	}
	return byColour, byRank
}

// playClue looks for a clue that makes another seat play a card. On the way
// it may protect a seat that is about to be forced into a bad discard.
func (p *ConventionPlayer) playClue(playables engine.CardSet) (engine.Action, bool) {
	clues := p.view.Clues()
	var cands []clueCandidate

	for seat := 1; seat < len(p.hands); seat++ {
		hand := p.view.Hand(seat)
		for i, card := range hand {
			if p.isPending(seat, i) || p.knowledge(seat, i).MustBeIn(playables) || !playables.Has(card) {
				continue
			}
			byColour, byRank := isolates(hand, i, func(j int) bool { return p.isPending(seat, j) })
			if byRank {
				cands = append(cands, clueCandidate{engine.RankClue(seat, card.Rank()), i})
			}
			if byColour {
				cands = append(cands, clueCandidate{engine.ColourClue(seat, card.Colour()), i})
			}
		}

		if (clues <= 2 && seat == 1) || (clues == 1 && seat == 2) {
			if !p.hasSafeDiscard(seat) {
				if a, ok := p.discardClue(seat); ok {
					return a, true
				}
			}
		}
	}
	if len(cands) == 0 {
		return nil, false
	}

	best := cands[0]
	if len(cands) > 1 {
		bestScore := p.scoreClue(best, playables)
		for _, c := range cands[1:] {
			if s := p.scoreClue(c, playables); s > bestScore {
				best, bestScore = c, s
			}
		}
	}
	p.log.Debugf("giving %s clue to ask for play of %v", best.clue.Dimension, p.view.Hand(best.clue.Target)[best.slot])
	return best.clue, true
}

// hasSafeDiscard reports whether seat holds a card it knows is not the last
// copy of its kind.
func (p *ConventionPlayer) hasSafeDiscard(seat int) bool {
	for i := range p.hands[seat] {
		if !p.knowledge(seat, i).CouldBeIn(p.beliefs.Unsafe) {
			return true
		}
	}
	return false
}

// handStats counts what a seat can prove about its cards.
type handStats struct {
	playable, unsafe, useless, notUnsafe, possibilities int
}

func (p *ConventionPlayer) measure(know []*PossibilityMatrix, playables engine.CardSet) handStats {
	var st handStats
	b := &p.beliefs
	for _, k := range know {
		if k.MustBeIn(playables) {
			st.playable++
		}
		if k.MustBeIn(b.Unsafe) {
			st.unsafe++
		}
		if k.MustBeIn(b.Useless) {
			st.useless++
		}
		if !k.CouldBeIn(b.Unsafe) {
			st.notUnsafe++
		}
		st.possibilities += k.Count()
	}
	return st
}

// scoreClue rates a play clue: favour idle seats, last copies, low cards and
// rank clues, and whatever the clue teaches about the rest of the hand.
func (p *ConventionPlayer) scoreClue(c clueCandidate, playables engine.CardSet) int {
	seat := c.clue.Target
	hand := p.view.Hand(seat)
	card := hand[c.slot]
	b := &p.beliefs

	score := 0
	for i := range p.hands[seat] {
		if p.knowledge(seat, i).MustBeIn(b.Playable) {
			score -= 1000
		}
	}
	if b.Unsafe.Has(card) {
		score += 100
	}
	score -= 10 * int(card.Rank())
	if c.clue.Dimension == engine.ByRank {
		score += 10
	}

	rest := playables.Remove(card)
	var others []*PossibilityMatrix
	var cards []engine.Card
	for i, s := range p.hands[seat] {
		if i != c.slot {
			others = append(others, s.know.Clone())
			cards = append(cards, hand[i])
		}
	}
	before := p.measure(others, rest)
	for i, k := range others {
		k.ApplyClue(c.clue, c.clue.Matches(cards[i]))
	}
	after := p.measure(others, rest)

	score += 2000 * (after.playable - before.playable)
	score += 100 * (after.unsafe - before.unsafe)
	score += 60 * (after.useless - before.useless)
	score += 50 * (after.notUnsafe - before.notUnsafe)
	score += before.possibilities - after.possibilities
	return score
}

// discardClue protects the oldest unmarked last copy in a seat's hand that
// the seat cannot mistake for a playable card.
func (p *ConventionPlayer) discardClue(seat int) (engine.Action, bool) {
	b := &p.beliefs
	hand := p.view.Hand(seat)
	for i, card := range hand {
		k := p.knowledge(seat, i)
		if !b.Unsafe.Has(card) || k.MustBeIn(b.Unsafe) || p.isPending(seat, i) {
			continue
		}
		if !k.CouldBeIn(b.Playable) {
			byColour, byRank := isolates(hand, i, nil)
			if byRank {
				p.log.Debugf("giving rank clue to mark %v", card)
				return engine.RankClue(seat, card.Rank()), true
			}
			if byColour {
				p.log.Debugf("giving colour clue to mark %v", card)
				return engine.ColourClue(seat, card.Colour()), true
			}
		} else if i == 0 {
			if col, ok := absentColour(hand); ok {
				p.log.Debugf("giving empty colour clue to mark %v", card)
				return engine.ColourClue(seat, col), true
			}
		}
	}
	return nil, false
}

func absentColour(hand []engine.Card) (engine.Colour, bool) {
	var present [engine.NumColours]bool
	for _, c := range hand {
		present[c.Colour()] = true
	}
	for col := engine.Colour(0); col < engine.NumColours; col++ {
		if !present[col] {
			return col, true
		}
	}
	return 0, false
}

func absentRank(hand []engine.Card) (engine.Rank, bool) {
	var present [engine.MaxRank + 1]bool
	for _, c := range hand {
		present[c.Rank()] = true
	}
	for r := engine.Rank(1); r <= engine.MaxRank; r++ {
		if !present[r] {
			return r, true
		}
	}
	return 0, false
}

// fallback is the last resort when nothing useful is left to do: a rank
// clue that touches nothing, else any clue whose convention meaning is true,
// else a certain discard, else the own card most likely to play.
func (p *ConventionPlayer) fallback() engine.Action {
	for seat := 1; seat < len(p.hands); seat++ {
		if r, ok := absentRank(p.view.Hand(seat)); ok {
			p.log.Debugf("forced: giving useless rank clue to seat %d", seat)
			return engine.RankClue(seat, r)
		}
	}
	for seat := 1; seat < len(p.hands); seat++ {
		for col := engine.Colour(0); col < engine.NumColours; col++ {
			if c := engine.ColourClue(seat, col); p.truthful(c) {
				p.log.Debugf("forced: giving %v", c)
				return c
			}
		}
		for r := engine.Rank(1); r <= engine.MaxRank; r++ {
			if c := engine.RankClue(seat, r); p.truthful(c) {
				p.log.Debugf("forced: giving %v", c)
				return c
			}
		}
	}
	if p.view.Clues() < p.view.MaxClues() {
		a, _ := p.discard(discardCertain)
		return a
	}
	// Every hand holds every rank and no clue reads true. A clue read wrongly
	// would corrupt its receiver's own knowledge, so risk a life instead.
	i := p.likeliestPlay()
	p.log.Warnf("forced: no safe clue or discard, playing slot %d", i)
	return engine.Play{Slot: i}
}

// likeliestPlay returns the own slot with the largest share of playable
// possibilities, oldest first on ties.
func (p *ConventionPlayer) likeliestPlay() int {
	playables := p.playables()
	best, bestHit, bestAll := 0, 0, 1
	for i := range p.hands[0] {
		k := p.knowledge(0, i)
		hit := k.Possibilities().Intersect(playables).Len()
		if hit*bestAll > bestHit*k.Count() {
			best, bestHit, bestAll = i, hit, k.Count()
		}
	}
	return best
}

// truthful reports whether every seat would read c in a way consistent with
// the real cards.
func (p *ConventionPlayer) truthful(c engine.Clue) bool {
	b := &p.beliefs
	hand := p.view.Hand(c.Target)

	first := -1
	matchedAny := false
	for i, card := range hand {
		if !c.Matches(card) {
			continue
		}
		matchedAny = true
		if !p.isPending(c.Target, i) {
			first = i
			break
		}
	}
	switch {
	case !matchedAny:
		return c.Dimension == engine.ByRank || len(hand) == 0 || b.Unsafe.Has(hand[0])
	case first < 0:
		return true
	}

	k := p.knowledge(c.Target, first).Clone()
	k.ApplyClue(c, true)
	switch {
	case k.CouldBeIn(b.Playable):
		return b.Playable.Has(hand[first])
	case k.CouldBeIn(b.Unsafe):
		return b.Unsafe.Has(hand[first])
	}
	return true
}
