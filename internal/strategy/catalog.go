package strategy

import (
	"fmt"

	"github.com/lox/betsim/internal/game"
)

// Entry pairs a strategy with the name it reports under.
type Entry struct {
	Name     string
	Strategy Strategy
}

// Catalog is an ordered collection of named strategies. Registration order
// is emission order, which keeps results diffable from run to run.
type Catalog struct {
	entries []Entry
	names   map[string]struct{}
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{names: make(map[string]struct{})}
}

// Register appends a named strategy, failing if the name is already taken.
func (c *Catalog) Register(name string, s Strategy) error {
	if _, dup := c.names[name]; dup {
		return fmt.Errorf("strategy %q already registered", name)
	}
	c.names[name] = struct{}{}
	c.entries = append(c.entries, Entry{Name: name, Strategy: s})
	return nil
}

// Entries returns the registered strategies in registration order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of registered strategies.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Build assembles the standard catalog for a game: all-in, the table
// minimum, a fixed-stake sweep, the optional fraction sweeps and kelly, in
// that order. A nil sweep configuration builds the defaults.
func Build(cfg game.Config, sweeps *SweepConfig) (*Catalog, error) {
	if sweeps == nil {
		sweeps = DefaultSweepConfig()
	}
	if err := sweeps.Validate(); err != nil {
		return nil, err
	}

	c := NewCatalog()
	if err := c.Register("all", NewAllIn(cfg)); err != nil {
		return nil, err
	}
	if err := c.Register("min", NewMinBet(cfg)); err != nil {
		return nil, err
	}

	maxFixed := sweeps.Fixed.Max
	if maxFixed <= 0 {
		maxFixed = cfg.Start
	}
	for size := 1; size <= maxFixed; size++ {
		if err := c.Register(fmt.Sprintf("fixed_%d", size), NewFixed(cfg, size)); err != nil {
			return nil, err
		}
	}

	if sweeps.Fractions.Enabled {
		for pct := sweeps.Fractions.Step; pct <= 100; pct += sweeps.Fractions.Step {
			name := fmt.Sprintf("fraction_%d", pct)
			if err := c.Register(name, NewFraction(cfg, float64(pct)/100.0)); err != nil {
				return nil, err
			}
		}
	}
	if sweeps.CumulativeFractions.Enabled {
		for pct := sweeps.CumulativeFractions.Step; pct <= 100; pct += sweeps.CumulativeFractions.Step {
			name := fmt.Sprintf("cum_fraction_%d", pct)
			s := NewFractionCumulative(cfg, float64(pct)/100.0, sweeps.CumulativeFractions.StartingBet)
			if err := c.Register(name, s); err != nil {
				return nil, err
			}
		}
	}

	if err := c.Register("kelly", NewKelly(cfg)); err != nil {
		return nil, err
	}
	return c, nil
}
