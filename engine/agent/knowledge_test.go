package agent

import (
	"math/rand/v2"
	"testing"

	engine "github.com/edwin-thomson/Hanabi/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireInvariant asserts that f panics with an *engine.InvariantError.
func requireInvariant(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected an invariant panic")
		_, ok := r.(*engine.InvariantError)
		require.True(t, ok, "panic value %v is not *engine.InvariantError", r)
	}()
	f()
}

func TestNewPossibilityMatrix(t *testing.T) {
	m := NewPossibilityMatrix()
	assert.Equal(t, 25, m.Count())
	assert.Equal(t, engine.AllCards, m.Possibilities())
	_, ok := m.KnownColour()
	assert.False(t, ok)
	_, ok = m.KnownRank()
	assert.False(t, ok)
	_, ok = m.KnownCard()
	assert.False(t, ok)
}

func TestSetCardCollapses(t *testing.T) {
	card := engine.NewCard(engine.Green, 3)
	m := NewPossibilityMatrix()
	assert.True(t, m.SetCard(card))
	assert.False(t, m.SetCard(card), "second SetCard should change nothing")

	got, ok := m.KnownCard()
	require.True(t, ok)
	assert.Equal(t, card, got)
	for _, other := range engine.AllCards.Remove(card).Cards() {
		assert.False(t, m.CouldBe(other), "still admits %v", other)
	}
}

func TestKnownFactsRefresh(t *testing.T) {
	m := NewPossibilityMatrix()
	m.SetColour(engine.Blue)
	col, ok := m.KnownColour()
	assert.True(t, ok)
	assert.Equal(t, engine.Blue, col)
	_, ok = m.KnownRank()
	assert.False(t, ok)

	m.EliminateNumber(1)
	m.EliminateNumber(2)
	m.EliminateNumber(3)
	m.EliminateCard(engine.NewCard(engine.Blue, 5))
	r, ok := m.KnownRank()
	assert.True(t, ok)
	assert.Equal(t, engine.Rank(4), r)
	card, ok := m.KnownCard()
	assert.True(t, ok)
	assert.Equal(t, engine.NewCard(engine.Blue, 4), card)
}

func TestSetIsOneOf(t *testing.T) {
	m := NewPossibilityMatrix()
	m.SetIsOneOf(engine.RankSet(1))
	assert.True(t, m.MustBeIn(engine.RankSet(1)))
	assert.True(t, m.CouldBeIn(engine.ColourSet(engine.Red)))
	assert.False(t, m.MustBeIn(engine.ColourSet(engine.Red)))

	m.SetIsNotOneOf(engine.SetOf(engine.NewCard(engine.Red, 1), engine.NewCard(engine.White, 1)))
	assert.Equal(t, 3, m.Count())
	assert.False(t, m.CouldBe(engine.NewCard(engine.Red, 1)))
}

func TestApplyClue(t *testing.T) {
	touched := NewPossibilityMatrix()
	touched.ApplyClue(engine.RankClue(1, 2), true)
	assert.True(t, touched.MustBeIn(engine.RankSet(2)))

	missed := NewPossibilityMatrix()
	missed.ApplyClue(engine.ColourClue(1, engine.Red), false)
	assert.Equal(t, 20, missed.Count())
	assert.False(t, missed.CouldBeIn(engine.ColourSet(engine.Red)))
}

func TestEmptyMatrixPanics(t *testing.T) {
	m := NewPossibilityMatrix()
	m.SetColour(engine.Red)
	requireInvariant(t, func() { m.SetColour(engine.Yellow) })
	requireInvariant(t, func() { m.EliminateColour(engine.Red) })
	assert.Equal(t, 5, m.Count(), "failed restriction must not be applied")
}

// TestRandomEliminationsKeepRealCard applies random facts that are true of a
// hidden card and checks the card is never excluded.
func TestRandomEliminationsKeepRealCard(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 2))
	for trial := 0; trial < 500; trial++ {
		hidden := engine.NewCard(engine.Colour(rng.IntN(5)), engine.Rank(1+rng.IntN(5)))
		m := NewPossibilityMatrix()
		for step := 0; step < 12; step++ {
			col := engine.Colour(rng.IntN(5))
			r := engine.Rank(1 + rng.IntN(5))
			switch rng.IntN(4) {
			case 0:
				m.ApplyClue(engine.ColourClue(1, col), hidden.Colour() == col)
			case 1:
				m.ApplyClue(engine.RankClue(1, r), hidden.Rank() == r)
			case 2:
				if other := engine.NewCard(col, r); other != hidden {
					m.EliminateCard(other)
				}
			case 3:
				s := engine.SetOf(hidden, engine.NewCard(col, r))
				m.SetIsOneOf(s.Union(engine.RankSet(r)))
			}
			require.True(t, m.CouldBe(hidden), "trial %d step %d lost %v", trial, step, hidden)
			require.Positive(t, m.Count())
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := NewPossibilityMatrix()
	cp := m.Clone()
	cp.SetColour(engine.White)
	assert.Equal(t, 25, m.Count())
	assert.Equal(t, 5, cp.Count())
}

func TestMatrixString(t *testing.T) {
	m := NewPossibilityMatrix()
	m.SetCard(engine.NewCard(engine.Yellow, 2))
	want := "   12345\n" +
		"R  .....\n" +
		"Y  .X...\n" +
		"G  .....\n" +
		"B  .....\n" +
		"W  .....\n"
	assert.Equal(t, want, m.String())
}
