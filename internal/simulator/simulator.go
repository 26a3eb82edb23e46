package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/betsim/internal/game"
	"github.com/lox/betsim/internal/randutil"
	"github.com/lox/betsim/internal/statistics"
	"github.com/lox/betsim/internal/strategy"
)

// Config holds configuration for running simulations
type Config struct {
	Game   game.Config
	Trials int
	Seed   int64

	// Workers caps the number of strategies evaluated concurrently. Zero
	// picks one per CPU.
	Workers int

	// ProgressEvery logs a progress line each time that many strategies
	// finish. Zero disables progress logging.
	ProgressEvery int

	Clock  quartz.Clock
	Logger *log.Logger

	// OnResult observes each finished aggregate in completion order. It is
	// never called concurrently.
	OnResult func(statistics.Aggregate)
}

// Simulator runs Monte Carlo betting simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run evaluates every strategy in the catalog and returns the collected
// summary. Each strategy draws from its own stream, derived from the run
// seed by catalog position, so results do not depend on worker count or
// scheduling and the summary always lands in catalog order.
func (s *Simulator) Run(ctx context.Context, catalog *strategy.Catalog) (*statistics.Summary, error) {
	if err := s.config.Game.Validate(); err != nil {
		return nil, fmt.Errorf("game config: %w", err)
	}
	if s.config.Trials <= 0 {
		return nil, fmt.Errorf("trial count %d must be positive", s.config.Trials)
	}
	entries := catalog.Entries()
	if len(entries) == 0 {
		return nil, fmt.Errorf("no strategies to run")
	}

	seedRng := randutil.New(s.config.Seed)
	seeds := make([]int64, len(entries))
	for i := range seeds {
		seeds[i] = seedRng.Int64()
	}

	workers := s.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(entries) {
		workers = len(entries)
	}

	start := s.config.Clock.Now()
	s.config.Logger.Debug("starting simulation",
		"strategies", len(entries),
		"trials", s.config.Trials,
		"workers", workers,
		"seed", s.config.Seed)

	results := make([]statistics.Aggregate, len(entries))

	var mu sync.Mutex // serializes OnResult and the completion count
	completed := 0

	g, ctx := errgroup.WithContext(ctx)
	indexes := make(chan int)

	g.Go(func() error {
		defer close(indexes)
		for i := range entries {
			select {
			case indexes <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range indexes {
				if err := ctx.Err(); err != nil {
					return err
				}
				agg := s.runStrategy(entries[i], seeds[i])
				results[i] = agg

				mu.Lock()
				completed++
				if s.config.ProgressEvery > 0 && completed%s.config.ProgressEvery == 0 {
					s.config.Logger.Info("progress",
						"completed", completed,
						"total", len(entries),
						"percent", fmt.Sprintf("%.1f%%", 100*float64(completed)/float64(len(entries))),
						"elapsed", s.config.Clock.Since(start))
				}
				if s.config.OnResult != nil {
					s.config.OnResult(agg)
				}
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := statistics.NewSummary()
	for _, agg := range results {
		if err := summary.Add(agg); err != nil {
			return nil, fmt.Errorf("collecting results: %w", err)
		}
	}

	if best, ok := summary.Best(); ok {
		s.config.Logger.Debug("simulation complete",
			"best", best.Name,
			"wins", best.Wins,
			"trials", best.Trials,
			"elapsed", s.config.Clock.Since(start))
	}
	return summary, nil
}

// runStrategy plays every trial for one strategy on its own stream.
func (s *Simulator) runStrategy(entry strategy.Entry, seed int64) statistics.Aggregate {
	s.config.Logger.Debug("running strategy", "name", entry.Name)

	rng := randutil.New(seed)
	agg := statistics.Aggregate{Name: entry.Name}
	for t := 0; t < s.config.Trials; t++ {
		result := RunTrial(s.config.Game, entry.Strategy, rng)
		agg.Add(result.Won, result.Steps)
	}
	s.config.Logger.Debug("strategy complete",
		"name", entry.Name,
		"wins", agg.Wins,
		"trials", agg.Trials)
	return agg
}
