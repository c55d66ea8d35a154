package agent

import (
	"fmt"

	engine "github.com/edwin-thomson/Hanabi/engine"
	"github.com/sirupsen/logrus"
)

// BasicPlayer keeps no card knowledge. When nobody has plays queued it clues
// a needed card so that every touched card is playable, and plays every card
// a clue touches. Otherwise it burns clue tokens on clues that touch nothing,
// or discards its oldest card.
type BasicPlayer struct {
	view    engine.View
	pending int   // clued cards still to be played, table-wide
	myPlays []int // my slots to play, in order
	log     logrus.FieldLogger
}

// NewBasicPlayer returns a BasicPlayer.
func NewBasicPlayer(log logrus.FieldLogger) *BasicPlayer {
	if log == nil {
		log = engine.DiscardLogger()
	}
	return &BasicPlayer{log: log}
}

// Init implements engine.Agent.
func (p *BasicPlayer) Init(v engine.View) error {
	p.view = v
	p.pending = 0
	p.myPlays = p.myPlays[:0]
	p.log = p.log.WithField("seat", v.Seat())
	return nil
}

func (p *BasicPlayer) needed(c engine.Card) bool {
	return uint8(c.Rank()) == p.view.Fireworks()[c.Colour()]+1
}

// RequestAction implements engine.Agent.
func (p *BasicPlayer) RequestAction() (engine.Action, error) {
	if len(p.myPlays) > 0 {
		ix := p.myPlays[0]
		p.myPlays = p.myPlays[1:]
		for i := range p.myPlays {
			if p.myPlays[i] > ix {
				p.myPlays[i]--
			}
		}
		return engine.Play{Slot: ix}, nil
	}

	n := p.view.NumSeats()
	if p.pending == 0 && p.view.Clues() > 0 {
		for seat := 1; seat < n; seat++ {
			if c, ok := p.playClue(seat); ok {
				return c, nil
			}
		}
	}

	if p.view.Clues() > 6 {
		if p.pending > 0 {
			// Anything goes while plays are queued.
			return engine.ColourClue(1, engine.Red), nil
		}
		for seat := 1; seat < n; seat++ {
			hand := p.view.Hand(seat)
			for v := 0; v < engine.NumColours; v++ {
				rankOK, colourOK := true, true
				for _, c := range hand {
					if int(c.Rank()) == v+1 {
						rankOK = false
					}
					if int(c.Colour()) == v {
						colourOK = false
					}
				}
				if rankOK {
					return engine.RankClue(seat, engine.Rank(v+1)), nil
				}
				if colourOK {
					return engine.ColourClue(seat, engine.Colour(v)), nil
				}
			}
		}
		if p.view.Clues() == p.view.MaxClues() {
			p.log.Warn("no safe clue at max tokens")
			return engine.ColourClue(1, engine.Red), nil
		}
	}
	return engine.Discard{Slot: 0}, nil
}

// playClue finds a clue for seat whose every touched card can be played in
// turn: the target card plus other needed cards that are not duplicates.
func (p *BasicPlayer) playClue(seat int) (engine.Action, bool) {
	hand := p.view.Hand(seat)
	for i, card := range hand {
		if !p.needed(card) {
			continue
		}
		colourOK, rankOK := true, true
		for j, c2 := range hand {
			if j == i {
				continue
			}
			if c2 == card {
				colourOK, rankOK = false, false
				break
			}
			if p.needed(c2) && !duplicated(hand, j, i) {
				continue
			}
			if c2.Colour() == card.Colour() {
				colourOK = false
			}
			if c2.Rank() == card.Rank() {
				rankOK = false
			}
		}
		if rankOK {
			return engine.RankClue(seat, card.Rank()), true
		}
		if colourOK {
			return engine.ColourClue(seat, card.Colour()), true
		}
	}
	return nil, false
}

// duplicated reports whether hand[j] appears again outside slots j and skip.
func duplicated(hand []engine.Card, j, skip int) bool {
	for k, c := range hand {
		if k != j && k != skip && c == hand[j] {
			return true
		}
	}
	return false
}

// NotifyAction implements engine.Agent.
func (p *BasicPlayer) NotifyAction(actor int, a engine.Action, o engine.Outcome) error {
	switch act := a.(type) {
	case engine.Play:
		if p.pending > 0 {
			p.pending--
		}
	case engine.Clue:
		out, ok := o.(engine.ClueOutcome)
		if !ok {
			return fmt.Errorf("clue by seat %d came with %T", actor, o)
		}
		matched := out.Matched
		if p.pending == 0 {
			if act.Target == 0 {
				p.myPlays = append(p.myPlays, matched.Slots()...)
			}
			p.pending += matched.Len()
		}
	}
	return nil
}
