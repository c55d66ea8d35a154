package agent

import (
	"testing"

	engine "github.com/edwin-thomson/Hanabi/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(c engine.Colour, r engine.Rank) engine.Card { return engine.NewCard(c, r) }

func TestNewBeliefs(t *testing.T) {
	b := NewBeliefs()
	assert.Equal(t, engine.RankSet(1), b.Playable)
	assert.Equal(t, engine.RankSet(5), b.Unsafe)
	assert.True(t, b.Useless.Empty())
}

func TestBeliefsPlayed(t *testing.T) {
	b := NewBeliefs()
	b.Played(card(engine.Red, 1))
	assert.False(t, b.Playable.Has(card(engine.Red, 1)))
	assert.True(t, b.Playable.Has(card(engine.Red, 2)))
	assert.True(t, b.Useless.Has(card(engine.Red, 1)))
	assert.Equal(t, 5, b.Playable.Len())

	// Completing a colour leaves nothing playable in it.
	b.Played(card(engine.Red, 2))
	b.Played(card(engine.Red, 3))
	b.Played(card(engine.Red, 4))
	b.Played(card(engine.Red, 5))
	assert.False(t, b.Playable.Overlaps(engine.ColourSet(engine.Red)))
	assert.False(t, b.Unsafe.Has(card(engine.Red, 5)))
	assert.Equal(t, engine.ColourSet(engine.Red), b.Useless)
}

func TestBeliefsLost(t *testing.T) {
	tests := []struct {
		name       string
		lost       []engine.Card
		wantUnsafe []engine.Card
		notUnsafe  []engine.Card
	}{
		{
			name:       "first of two copies",
			lost:       []engine.Card{card(engine.Blue, 2)},
			wantUnsafe: []engine.Card{card(engine.Blue, 2)},
		},
		{
			name:      "first of three copies",
			lost:      []engine.Card{card(engine.Green, 1)},
			notUnsafe: []engine.Card{card(engine.Green, 1)},
		},
		{
			name:       "second of three copies",
			lost:       []engine.Card{card(engine.Green, 1), card(engine.Green, 1)},
			wantUnsafe: []engine.Card{card(engine.Green, 1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBeliefs()
			for _, c := range tt.lost {
				b.Lost(c)
			}
			for _, c := range tt.wantUnsafe {
				assert.True(t, b.Unsafe.Has(c), "%v should be unsafe", c)
			}
			for _, c := range tt.notUnsafe {
				assert.False(t, b.Unsafe.Has(c), "%v should not be unsafe", c)
			}
		})
	}
}

// TestBeliefsLastCopyLost kills the rest of the colour.
func TestBeliefsLastCopyLost(t *testing.T) {
	b := NewBeliefs()
	b.Lost(card(engine.White, 3))
	b.Lost(card(engine.White, 3))

	assert.False(t, b.Unsafe.Overlaps(engine.ColourSet(engine.White)))
	for r := engine.Rank(3); r <= engine.MaxRank; r++ {
		assert.True(t, b.Useless.Has(card(engine.White, r)), "White %d should be useless", r)
	}
	assert.False(t, b.Useless.Has(card(engine.White, 2)))

	// A later White 4 discard changes nothing.
	before := b
	b.Lost(card(engine.White, 4))
	assert.Equal(t, before.Unsafe, b.Unsafe)
}

func TestBeliefsLostUselessCard(t *testing.T) {
	b := NewBeliefs()
	b.Played(card(engine.Yellow, 1))
	b.Lost(card(engine.Yellow, 1))
	b.Lost(card(engine.Yellow, 1))
	assert.False(t, b.Unsafe.Has(card(engine.Yellow, 1)), "a played card is never unsafe")
}

// TestBeliefsDeadCardNotPlayable: losing the last copy of the next card in a
// colour leaves nothing playable there.
func TestBeliefsDeadCardNotPlayable(t *testing.T) {
	b := NewBeliefs()
	b.Played(card(engine.Blue, 1))
	require.True(t, b.Playable.Has(card(engine.Blue, 2)))

	b.Lost(card(engine.Blue, 2))
	b.Lost(card(engine.Blue, 2))
	assert.False(t, b.Playable.Overlaps(engine.ColourSet(engine.Blue)))
	assert.True(t, b.Useless.Has(card(engine.Blue, 2)))
	assert.True(t, b.Playable.Intersect(b.Useless).Empty(), "a card is never both playable and useless")
}
