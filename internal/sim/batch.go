// Package sim plays batches of independent seeded games in parallel.
package sim

import (
	"context"
	"fmt"
	"time"

	engine "github.com/edwin-thomson/Hanabi/engine"
	"github.com/edwin-thomson/Hanabi/engine/agent"
	"github.com/edwin-thomson/Hanabi/internal/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Batch plays Games games with seeds Seed, Seed+1, ... Each game runs on
// one goroutine; at most Workers games run at once.
type Batch struct {
	Games    int
	Seed     uint64
	Workers  int
	Strategy string
	Rules    engine.Rules
	Log      logrus.FieldLogger
}

// FromConfig builds a Batch from loaded settings.
func FromConfig(cfg config.Config, log logrus.FieldLogger) *Batch {
	return &Batch{
		Games:    cfg.Games,
		Seed:     cfg.Seed,
		Workers:  cfg.Workers,
		Strategy: cfg.Strategy,
		Rules:    cfg.Rules(),
		Log:      log,
	}
}

// Run plays every game and returns the results in seed order, whatever the
// worker count. The first game that fails with an error stops the batch.
func (b *Batch) Run(parent context.Context) ([]engine.Result, error) {
	log := b.Log
	if log == nil {
		log = engine.DiscardLogger()
	}
	if _, err := agent.New(b.Strategy, log); err != nil {
		return nil, err
	}
	if err := b.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	workers := b.Workers
	if workers < 1 {
		workers = 1
	}
	start := time.Now()
	results := make([]engine.Result, b.Games)

	g, ctx := errgroup.WithContext(parent)
	g.SetLimit(workers)
	for i := 0; i < b.Games; i++ {
		if ctx.Err() != nil {
			break
		}
		seed := b.Seed + uint64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tbl, err := agent.NewTable(b.Strategy, seed, b.Rules, log)
			if err != nil {
				return err
			}
			res, err := tbl.Run()
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i, seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"games":    b.Games,
		"strategy": b.Strategy,
		"elapsed":  time.Since(start).Round(time.Millisecond),
	}).Info("batch finished")
	return results, nil
}
