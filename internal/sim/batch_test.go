package sim

import (
	"context"
	"testing"

	engine "github.com/edwin-thomson/Hanabi/engine"
	"github.com/edwin-thomson/Hanabi/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBatch(workers int) *Batch {
	return &Batch{
		Games:    24,
		Seed:     100,
		Workers:  workers,
		Strategy: "convention",
		Rules:    engine.DefaultRules(),
	}
}

func TestBatchSeedsInOrder(t *testing.T) {
	results, err := newBatch(4).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 24)
	for i, r := range results {
		assert.Equal(t, uint64(100+i), r.Seed)
		assert.NotEqual(t, engine.StatusRunning, r.Status)
	}
}

// TestBatchIndependentOfWorkers checks the result slice does not depend on
// scheduling.
func TestBatchIndependentOfWorkers(t *testing.T) {
	serial, err := newBatch(1).Run(context.Background())
	require.NoError(t, err)
	parallel, err := newBatch(8).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, parallel, len(serial))
	for i := range serial {
		assert.Equal(t, serial[i].Hash, parallel[i].Hash, "game %d", i)
		assert.Equal(t, serial[i].Score, parallel[i].Score, "game %d", i)
	}
	assert.Equal(t, Summarize(serial).String(), Summarize(parallel).String())
}

func TestBatchUnknownStrategy(t *testing.T) {
	b := newBatch(2)
	b.Strategy = "psychic"
	_, err := b.Run(context.Background())
	assert.Error(t, err)
}

func TestBatchBadRules(t *testing.T) {
	b := newBatch(2)
	b.Rules.NumSeats = 9
	_, err := b.Run(context.Background())
	assert.Error(t, err)
}

func TestBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newBatch(2).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Games = 3
	cfg.Seats = 2
	b := FromConfig(cfg, nil)
	assert.Equal(t, uint8(5), b.Rules.HandSize)

	results, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, results, 3)
}
