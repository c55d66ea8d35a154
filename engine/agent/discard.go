package agent

import engine "github.com/edwin-thomson/Hanabi/engine"

// discardPriority says how hard the player is willing to look for a discard.
type discardPriority uint8

const (
	discardLow     discardPriority = iota // only cards known to be useless
	discardMedium                         // or cards known not to be a last copy
	discardHigh                           // or cards not known to be a last copy
	discardCertain                        // or, failing all that, the oldest card
)

// discard walks the ladder from strictest to loosest up to pr.
func (p *ConventionPlayer) discard(pr discardPriority) (engine.Action, bool) {
	if p.view.Clues() >= p.view.MaxClues() {
		return nil, false
	}
	b := &p.beliefs
	hand := p.hands[0]

	for i := range hand {
		if p.knowledge(0, i).MustBeIn(b.Useless) {
			p.log.Debugf("discarding useless slot %d", i)
			return engine.Discard{Slot: i}, true
		}
	}
	if pr == discardLow {
		return nil, false
	}

	for i := range hand {
		if !p.knowledge(0, i).CouldBeIn(b.Unsafe) {
			p.log.Debugf("discarding safe slot %d", i)
			return engine.Discard{Slot: i}, true
		}
	}
	if pr == discardMedium {
		return nil, false
	}

	for i := range hand {
		if !p.knowledge(0, i).MustBeIn(b.Unsafe) {
			p.log.Debugf("discarding maybe-safe slot %d", i)
			return engine.Discard{Slot: i}, true
		}
	}
	if pr == discardHigh {
		return nil, false
	}

	p.log.Debug("discarding oldest slot")
	return engine.Discard{Slot: 0}, true
}
