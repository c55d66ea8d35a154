package agent

import engine "github.com/edwin-thomson/Hanabi/engine"

// EagerPlayer plays its oldest card while it can afford to lose a life,
// then stalls with clues, then discards.
type EagerPlayer struct {
	view engine.View
}

// Init implements engine.Agent.
func (p *EagerPlayer) Init(v engine.View) error {
	p.view = v
	return nil
}

// RequestAction implements engine.Agent.
func (p *EagerPlayer) RequestAction() (engine.Action, error) {
	switch {
	case p.view.Lives() > 1 || p.view.Score() == 0:
		return engine.Play{Slot: 0}, nil
	case p.view.Clues() > 0:
		return engine.ColourClue(1, engine.Yellow), nil
	default:
		return engine.Discard{Slot: 0}, nil
	}
}

// NotifyAction implements engine.Agent. EagerPlayer keeps no state.
func (p *EagerPlayer) NotifyAction(int, engine.Action, engine.Outcome) error { return nil }
