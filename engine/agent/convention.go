package agent

import (
	"fmt"

	engine "github.com/edwin-thomson/Hanabi/engine"
	"github.com/sirupsen/logrus"
)

// ConventionPlayer tracks card knowledge for every hand at the table and
// plays by a shared clue convention:
//
//   - the oldest newly clued card that might be playable is playable;
//   - otherwise, if it might be the last copy of its kind, it is;
//   - a colour clue touching nothing marks the oldest card as the last copy;
//   - a rank clue touching nothing means nothing.
//
// Every seat at the table must run the same convention.
type ConventionPlayer struct {
	view    engine.View
	beliefs Beliefs
	tracker
	log logrus.FieldLogger
}

// NewConventionPlayer returns a player that logs its reasoning to log.
func NewConventionPlayer(log logrus.FieldLogger) *ConventionPlayer {
	if log == nil {
		log = engine.DiscardLogger()
	}
	return &ConventionPlayer{log: log}
}

// Init implements engine.Agent.
func (p *ConventionPlayer) Init(v engine.View) error {
	p.view = v
	p.beliefs = NewBeliefs()
	p.reset(v)
	p.log = p.log.WithField("seat", v.Seat())
	p.deduce()
	return nil
}

// Beliefs returns the current public summary.
func (p *ConventionPlayer) Beliefs() Beliefs { return p.beliefs }

// Knowledge returns this player's model of the card at a relative seat and slot.
func (p *ConventionPlayer) Knowledge(seat, slot int) *PossibilityMatrix {
	return p.knowledge(seat, slot)
}

// PendingPlays lists the outstanding play instructions, oldest first.
func (p *ConventionPlayer) PendingPlays() []PendingSlot { return p.pendingSlots() }

// ---------------------------------------------------------------------------
// Notifications
// ---------------------------------------------------------------------------

// NotifyAction implements engine.Agent.
func (p *ConventionPlayer) NotifyAction(actor int, a engine.Action, o engine.Outcome) error {
	switch act := a.(type) {
	case engine.Play:
		out, ok := o.(engine.PlayOutcome)
		if !ok {
			return fmt.Errorf("play by seat %d came with %T", actor, o)
		}
		if err := p.cardLeft(actor, act.Slot, out.Drew); err != nil {
			return err
		}
		if out.Accepted {
			p.beliefs.Played(out.Card)
		} else {
			p.beliefs.Lost(out.Card)
		}

	case engine.Discard:
		out, ok := o.(engine.DiscardOutcome)
		if !ok {
			return fmt.Errorf("discard by seat %d came with %T", actor, o)
		}
		if err := p.cardLeft(actor, act.Slot, out.Drew); err != nil {
			return err
		}
		p.beliefs.Lost(out.Card)

	case engine.Clue:
		out, ok := o.(engine.ClueOutcome)
		if !ok {
			return fmt.Errorf("clue by seat %d came with %T", actor, o)
		}
		if act.Target < 0 || act.Target >= len(p.hands) {
			return fmt.Errorf("clue by seat %d names seat %d", actor, act.Target)
		}
		for i, s := range p.hands[act.Target] {
			s.know.ApplyClue(act, out.Matched.Has(i))
		}
		p.deduce()
		p.interpret(act, out.Matched)
		p.deduce()

	default:
		return fmt.Errorf("unknown action %T", a)
	}
	return nil
}

// cardLeft removes a played or discarded card from the actor's hand and
// appends its replacement.
func (p *ConventionPlayer) cardLeft(seat, index int, drew bool) error {
	if seat < 0 || seat >= len(p.hands) || index < 0 || index >= len(p.hands[seat]) {
		return fmt.Errorf("seat %d has no slot %d", seat, index)
	}
	p.removeSlot(seat, index)
	if drew {
		p.addSlot(seat)
	}
	p.deduce()
	return nil
}

// interpret applies the convention meaning of a clue after its literal
// meaning has been absorbed.
func (p *ConventionPlayer) interpret(c engine.Clue, matched engine.SlotSet) {
	target := c.Target
	b := &p.beliefs

	if matched.Empty() {
		if c.Dimension != engine.ByColour || len(p.hands[target]) == 0 {
			return
		}
		k := p.knowledge(target, 0)
		if k.CouldBeIn(b.Unsafe) && (target == 0 || b.Unsafe.Has(p.view.Hand(target)[0])) {
			if target == 0 {
				p.log.Debug("told not to discard slot 0")
			}
			k.SetIsOneOf(b.Unsafe)
		}
		return
	}

	first := -1
	for _, i := range matched.Slots() {
		if !p.isPending(target, i) {
			first = i
			break
		}
	}
	if first < 0 {
		p.log.Debugf("clue to seat %d touched only pending cards", target)
		return
	}

	k := p.knowledge(target, first)
	if k.CouldBeIn(b.Playable) {
		if target == 0 || b.Playable.Has(p.view.Hand(target)[first]) {
			if target == 0 {
				p.log.Debugf("this clue is telling me to play slot %d", first)
			}
			p.addPending(target, first)
			k.SetIsOneOf(b.Playable)
		}
	} else if k.CouldBeIn(b.Unsafe) {
		if target == 0 || b.Unsafe.Has(p.view.Hand(target)[first]) {
			if target == 0 {
				p.log.Debugf("told not to discard slot %d", first)
			}
			k.SetIsOneOf(b.Unsafe)
		}
	}
}

// ---------------------------------------------------------------------------
// Deduction
// ---------------------------------------------------------------------------

// publicCards returns every card that has left a hand: discards and the
// fireworks built so far.
func (p *ConventionPlayer) publicCards() []engine.Card {
	cards := p.view.Discards()
	fw := p.view.Fireworks()
	for c := engine.Colour(0); c < engine.NumColours; c++ {
		for r := engine.Rank(1); r <= engine.Rank(fw[c]); r++ {
			cards = append(cards, engine.NewCard(c, r))
		}
	}
	return cards
}

// cardsSeenBy returns what seat can see, as far as this player can tell.
func (p *ConventionPlayer) cardsSeenBy(seat int) []engine.Card {
	cards := p.publicCards()
	for i := 1; i < len(p.hands); i++ {
		if i != seat {
			cards = append(cards, p.view.Hand(i)...)
		}
	}
	return cards
}

// deduce brings every hand to its fixed point: first this player's own,
// then each other seat as that seat would reason about it.
func (p *ConventionPlayer) deduce() {
	mine := p.group(0)
	mine.Deduce(p.cardsSeenBy(0), nil)
	for seat := 1; seat < len(p.hands); seat++ {
		p.group(seat).Deduce(p.cardsSeenBy(seat), mine)
	}
	p.audit()
}

// audit checks that knowledge about visible cards still admits the real card.
func (p *ConventionPlayer) audit() {
	for seat := 1; seat < len(p.hands); seat++ {
		hand := p.view.Hand(seat)
		if len(hand) != len(p.hands[seat]) {
			engine.Invariantf("tracking %d cards for seat %d, it holds %d", len(p.hands[seat]), seat, len(hand))
		}
		for i, card := range hand {
			if !p.knowledge(seat, i).CouldBe(card) {
				engine.Invariantf("seat %d slot %d is %v but knowledge excludes it:\n%v", seat, i, card, p.knowledge(seat, i))
			}
		}
	}
}

// playables is the playable set minus cards other seats are already
// instructed to play.
func (p *ConventionPlayer) playables() engine.CardSet {
	s := p.beliefs.Playable
	for _, ps := range p.pendingSlots() {
		if ps.Seat != 0 {
			s = s.Remove(p.view.Hand(ps.Seat)[ps.Slot])
		}
	}
	return s
}

// ---------------------------------------------------------------------------
// Action selection
// ---------------------------------------------------------------------------

// RequestAction implements engine.Agent.
func (p *ConventionPlayer) RequestAction() (engine.Action, error) {
	if i, ok := p.firstPending(0); ok {
		p.log.Debugf("told to play slot %d", i)
		return engine.Play{Slot: i}, nil
	}

	playables := p.playables()
	for i := range p.hands[0] {
		if p.knowledge(0, i).MustBeIn(playables) {
			p.log.Debugf("decided to play slot %d", i)
			return engine.Play{Slot: i}, nil
		}
	}

	clues := p.view.Clues()
	if clues == 1 {
		if a, ok := p.discard(discardHigh); ok {
			return a, nil
		}
	}
	if clues == 0 {
		// Discarding is always legal at zero tokens.
		a, _ := p.discard(discardCertain)
		return a, nil
	}

	if a, ok := p.playClue(playables); ok {
		return a, nil
	}
	for seat := 1; seat < len(p.hands); seat++ {
		if a, ok := p.discardClue(seat); ok {
			return a, nil
		}
	}

	if clues < 4 {
		if a, ok := p.discard(discardMedium); ok {
			return a, nil
		}
	}
	if clues < p.view.MaxClues() {
		if a, ok := p.discard(discardLow); ok {
			return a, nil
		}
	}
	return p.fallback(), nil
}
