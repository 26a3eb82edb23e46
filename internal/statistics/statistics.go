package statistics

import (
	"fmt"
	"math"
)

// Aggregate accumulates trial outcomes for one named strategy.
type Aggregate struct {
	Name   string
	Wins   int
	Trials int
	Steps  int // total flips across all trials
}

// Add incorporates one trial outcome.
func (a *Aggregate) Add(won bool, steps int) {
	a.Trials++
	if won {
		a.Wins++
	}
	a.Steps += steps
}

// Ratio returns the observed win rate.
func (a *Aggregate) Ratio() float64 {
	if a.Trials == 0 {
		return 0
	}
	return float64(a.Wins) / float64(a.Trials)
}

// StdError returns the standard error of the win rate under the binomial
// model.
func (a *Aggregate) StdError() float64 {
	if a.Trials == 0 {
		return 0
	}
	p := a.Ratio()
	return math.Sqrt(p * (1 - p) / float64(a.Trials))
}

// ConfidenceInterval95 returns the 95% confidence interval for the win rate,
// clamped to [0, 1].
func (a *Aggregate) ConfidenceInterval95() (float64, float64) {
	margin := 1.96 * a.StdError()
	return math.Max(0, a.Ratio()-margin), math.Min(1, a.Ratio()+margin)
}

// MeanSteps returns the average number of flips per trial.
func (a *Aggregate) MeanSteps() float64 {
	if a.Trials == 0 {
		return 0
	}
	return float64(a.Steps) / float64(a.Trials)
}

// Validate checks the tallies are internally consistent.
func (a *Aggregate) Validate() error {
	if a.Trials <= 0 {
		return fmt.Errorf("invalid trial count: %d", a.Trials)
	}
	if a.Wins < 0 || a.Wins > a.Trials {
		return fmt.Errorf("win count %d outside [0, %d]", a.Wins, a.Trials)
	}
	if a.Steps < 0 {
		return fmt.Errorf("negative step count: %d", a.Steps)
	}
	return nil
}

// Summary collects aggregates in the order they are added and tracks the
// running best by win count.
type Summary struct {
	Results []Aggregate

	best int // index into Results, -1 until the first result lands
}

// NewSummary returns an empty summary.
func NewSummary() *Summary {
	return &Summary{best: -1}
}

// Add appends a finalized aggregate and updates the running best. Only a
// strictly greater win count displaces the incumbent, so ties keep the
// earliest entry.
func (s *Summary) Add(a Aggregate) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("aggregate %s: %w", a.Name, err)
	}
	s.Results = append(s.Results, a)
	if s.best < 0 || a.Wins > s.Results[s.best].Wins {
		s.best = len(s.Results) - 1
	}
	return nil
}

// Best returns the best-performing aggregate so far, or false when no
// results have been added.
func (s *Summary) Best() (Aggregate, bool) {
	if s.best < 0 {
		return Aggregate{}, false
	}
	return s.Results[s.best], true
}
