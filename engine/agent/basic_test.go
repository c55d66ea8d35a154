package agent

import (
	"testing"

	engine "github.com/edwin-thomson/Hanabi/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEagerPlayerLosesFast(t *testing.T) {
	tbl, err := NewTable("eager", 7, engine.DefaultRules(), nil)
	require.NoError(t, err)
	res, err := tbl.Run()
	require.NoError(t, err)
	if res.Status == engine.StatusLost {
		assert.Zero(t, res.Score)
		assert.Zero(t, res.Lives)
	}
}

// TestBasicPlayerPlaysCluedCards: a clue to seat 0 while nothing is pending
// queues every touched slot, oldest first.
func TestBasicPlayerPlaysCluedCards(t *testing.T) {
	g := engine.NewGame(3, engine.DefaultRules())
	g.Deal()
	p := NewBasicPlayer(nil)
	require.NoError(t, p.Init(g.ViewFor(0)))

	var matched engine.SlotSet
	matched = matched.Add(1).Add(3)
	require.NoError(t, p.NotifyAction(2, engine.RankClue(0, 1), engine.ClueOutcome{Matched: matched}))

	a, err := p.RequestAction()
	require.NoError(t, err)
	assert.Equal(t, engine.Play{Slot: 1}, a)
	require.NoError(t, p.NotifyAction(0, a, engine.PlayOutcome{}))

	// Slot 3 moved down after slot 1 left.
	a, err = p.RequestAction()
	require.NoError(t, err)
	assert.Equal(t, engine.Play{Slot: 2}, a)
}

func TestBasicPlayerRejectsMismatchedOutcome(t *testing.T) {
	g := engine.NewGame(3, engine.DefaultRules())
	g.Deal()
	p := NewBasicPlayer(nil)
	require.NoError(t, p.Init(g.ViewFor(0)))
	assert.Error(t, p.NotifyAction(1, engine.RankClue(1, 2), engine.PlayOutcome{}))
}
