package agent

import (
	"fmt"
	"sort"

	engine "github.com/edwin-thomson/Hanabi/engine"
	"github.com/sirupsen/logrus"
)

var strategies = map[string]func(logrus.FieldLogger) engine.Agent{
	"convention": func(l logrus.FieldLogger) engine.Agent { return NewConventionPlayer(l) },
	"basic":      func(l logrus.FieldLogger) engine.Agent { return NewBasicPlayer(l) },
	"eager":      func(logrus.FieldLogger) engine.Agent { return &EagerPlayer{} },
}

// Strategies lists the names New accepts.
func Strategies() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds a fresh agent for the named strategy.
func New(name string, log logrus.FieldLogger) (engine.Agent, error) {
	mk, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (have %v)", name, Strategies())
	}
	return mk(log), nil
}

// NewTable seats one fresh agent of the named strategy at every seat.
func NewTable(name string, seed uint64, rules engine.Rules, log logrus.FieldLogger, opts ...engine.TableOption) (*engine.Table, error) {
	if log == nil {
		log = engine.DiscardLogger()
	}
	agents := make([]engine.Agent, rules.NumSeats)
	for i := range agents {
		a, err := New(name, log)
		if err != nil {
			return nil, err
		}
		agents[i] = a
	}
	opts = append([]engine.TableOption{engine.WithLogger(log)}, opts...)
	return engine.NewTable(seed, rules, agents, opts...)
}
