// Command hanabisim plays a batch of seeded games and prints the score
// histogram.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/edwin-thomson/Hanabi/engine/agent"
	"github.com/edwin-thomson/Hanabi/internal/config"
	"github.com/edwin-thomson/Hanabi/internal/sim"
	"github.com/sirupsen/logrus"
)

func main() {
	envFile := flag.String("env", ".env", "optional dotenv file")
	games := flag.Int("games", -1, "number of games (overrides HANABI_GAMES)")
	seed := flag.Uint64("seed", 0, "first seed (overrides HANABI_SEED)")
	workers := flag.Int("workers", 0, "parallel games (overrides HANABI_WORKERS)")
	strategy := flag.String("strategy", "", "one of "+strings.Join(agent.Strategies(), ", "))
	seats := flag.Int("seats", 0, "players at the table")
	level := flag.String("log-level", "", "logrus level")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.Games = *games
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Workers = *workers
		case "strategy":
			cfg.Strategy = *strategy
		case "seats":
			cfg.Seats = *seats
		case "log-level":
			if lvl, perr := logrus.ParseLevel(*level); perr == nil {
				cfg.LogLevel = lvl
			} else {
				err = perr
			}
		}
	})
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := sim.FromConfig(cfg, log).Run(ctx)
	if err != nil {
		log.WithError(err).Fatal("batch failed")
	}
	fmt.Print(sim.Summarize(results))
}
