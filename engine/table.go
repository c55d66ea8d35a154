package engine

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Agent is a seat's decision maker. The Table calls Init once, RequestAction
// only on the agent's turn, and NotifyAction once per turn on every agent,
// including the actor. Seats in notifications are relative to the receiver.
type Agent interface {
	Init(v View) error
	RequestAction() (Action, error)
	NotifyAction(actor int, a Action, o Outcome) error
}

// Result summarises a finished game.
type Result struct {
	GameID uuid.UUID
	Seed   uint64
	Status Status
	Score  int // FinalScore: 0 when lives ran out
	Turns  int
	Clues  int
	Lives  int
	Hash   uint64
}

// Table runs one game between a fixed set of agents.
type Table struct {
	ID     uuid.UUID
	State  GameState
	seed   uint64
	agents []Agent
	log    logrus.FieldLogger
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithLogger sets the logger used for per-turn debug output.
func WithLogger(l logrus.FieldLogger) TableOption {
	return func(t *Table) { t.log = l }
}

// WithID overrides the random game ID.
func WithID(id uuid.UUID) TableOption {
	return func(t *Table) { t.ID = id }
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// NewTable builds a game seeded with seed for the given agents, one per seat.
func NewTable(seed uint64, rules Rules, agents []Agent, opts ...TableOption) (*Table, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if len(agents) != int(rules.NumSeats) {
		return nil, fmt.Errorf("need %d agents, got %d", rules.NumSeats, len(agents))
	}
	t := &Table{
		ID:     uuid.New(),
		State:  NewGame(seed, rules),
		seed:   seed,
		agents: agents,
		log:    DiscardLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.log = t.log.WithField("game", t.ID)
	return t, nil
}

// Run deals and plays the game to a terminal state. Protocol and invariant
// violations end the game with an error; losing is not an error.
func (t *Table) Run() (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case *ProtocolError:
				err = e
			case *InvariantError:
				err = fmt.Errorf("seat %d, turn %d: %w", t.State.CurrentSeat, t.State.TurnNumber, e)
			default:
				panic(r)
			}
			res = t.result()
		}
	}()

	g := &t.State
	g.Deal()
	for seat, a := range t.agents {
		if err := a.Init(g.ViewFor(uint8(seat))); err != nil {
			return t.result(), fmt.Errorf("init seat %d: %w", seat, err)
		}
		t.log.WithField("seat", seat).Debugf("hand %v", g.Hands[seat].Slice())
	}

	for !g.IsTerminal() {
		actor := g.CurrentSeat
		act, err := t.agents[actor].RequestAction()
		if err != nil {
			return t.result(), fmt.Errorf("seat %d request: %w", actor, err)
		}
		out, err := g.ApplyAction(act)
		if err != nil {
			return t.result(), err
		}
		t.logTurn(actor, act, out)
		if err := t.broadcast(actor, act, out); err != nil {
			return t.result(), err
		}
	}

	res = t.result()
	t.log.WithFields(logrus.Fields{
		"status": res.Status,
		"score":  res.Score,
		"turns":  res.Turns,
	}).Info("game over")
	return res, nil
}

// broadcast tells every agent what happened, re-expressing seats in the
// receiver's numbering.
func (t *Table) broadcast(actor uint8, act Action, out Outcome) error {
	g := &t.State
	for i, a := range t.agents {
		viewer := uint8(i)
		send := act
		if c, ok := act.(Clue); ok {
			target := g.AbsoluteSeat(c.Target, actor)
			send = c.Retarget(g.RelativeSeat(target, viewer))
		}
		if err := a.NotifyAction(g.RelativeSeat(actor, viewer), send, out); err != nil {
			return fmt.Errorf("seat %d notify: %w", i, err)
		}
	}
	return nil
}

func (t *Table) logTurn(actor uint8, act Action, out Outcome) {
	g := &t.State
	entry := t.log.WithFields(logrus.Fields{
		"turn": g.TurnNumber,
		"seat": actor,
	})
	switch o := out.(type) {
	case PlayOutcome:
		if o.Accepted {
			entry.Debugf("played %v: success", o.Card)
		} else {
			entry.Debugf("played %v: failed, %d lives left", o.Card, g.Lives)
		}
	case DiscardOutcome:
		entry.Debugf("discarded %v", o.Card)
	case ClueOutcome:
		c := act.(Clue)
		target := g.AbsoluteSeat(c.Target, actor)
		entry.Debugf("clued seat %d %s %d, matching %v", target, c.Dimension, c.Value, o.Matched.Slots())
	}
}

func (t *Table) result() Result {
	g := &t.State
	return Result{
		GameID: t.ID,
		Seed:   t.seed,
		Status: g.Status,
		Score:  g.FinalScore(),
		Turns:  int(g.TurnNumber),
		Clues:  int(g.Clues),
		Lives:  int(g.Lives),
		Hash:   g.StateHash(),
	}
}
