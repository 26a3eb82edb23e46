package statistics

import (
	"math"
	"strings"
	"testing"
)

func TestAggregateAdd(t *testing.T) {
	var a Aggregate
	a.Add(true, 3)
	a.Add(false, 10)
	a.Add(true, 1)

	if a.Trials != 3 {
		t.Errorf("Trials = %d, want 3", a.Trials)
	}
	if a.Wins != 2 {
		t.Errorf("Wins = %d, want 2", a.Wins)
	}
	if a.Steps != 14 {
		t.Errorf("Steps = %d, want 14", a.Steps)
	}
	if got := a.MeanSteps(); math.Abs(got-14.0/3.0) > 1e-12 {
		t.Errorf("MeanSteps() = %v, want %v", got, 14.0/3.0)
	}
}

func TestAggregateRatio(t *testing.T) {
	a := Aggregate{Name: "all", Wins: 25, Trials: 100}
	if got := a.Ratio(); got != 0.25 {
		t.Errorf("Ratio() = %v, want 0.25", got)
	}

	var empty Aggregate
	if got := empty.Ratio(); got != 0 {
		t.Errorf("empty Ratio() = %v, want 0", got)
	}
}

func TestAggregateStdError(t *testing.T) {
	a := Aggregate{Wins: 50, Trials: 100}
	// sqrt(0.5*0.5/100) = 0.05
	if got := a.StdError(); math.Abs(got-0.05) > 1e-12 {
		t.Errorf("StdError() = %v, want 0.05", got)
	}

	low, high := a.ConfidenceInterval95()
	if math.Abs(low-0.402) > 1e-12 || math.Abs(high-0.598) > 1e-12 {
		t.Errorf("ConfidenceInterval95() = [%v, %v], want [0.402, 0.598]", low, high)
	}
}

func TestConfidenceIntervalClamped(t *testing.T) {
	a := Aggregate{Wins: 1, Trials: 2}
	low, high := a.ConfidenceInterval95()
	if low < 0 || high > 1 {
		t.Errorf("ConfidenceInterval95() = [%v, %v], want within [0, 1]", low, high)
	}
}

func TestAggregateValidate(t *testing.T) {
	t.Run("consistent tallies pass", func(t *testing.T) {
		a := Aggregate{Name: "min", Wins: 3, Trials: 10, Steps: 42}
		if err := a.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("no trials", func(t *testing.T) {
		var a Aggregate
		if err := a.Validate(); err == nil {
			t.Error("expected error for zero trials")
		}
	})

	t.Run("wins exceed trials", func(t *testing.T) {
		a := Aggregate{Wins: 11, Trials: 10}
		err := a.Validate()
		if err == nil || !strings.Contains(err.Error(), "outside") {
			t.Errorf("expected win count error, got: %v", err)
		}
	})
}

func TestSummaryBest(t *testing.T) {
	t.Run("tracks the strictly greatest win count", func(t *testing.T) {
		s := NewSummary()
		for _, a := range []Aggregate{
			{Name: "all", Wins: 5, Trials: 100},
			{Name: "min", Wins: 40, Trials: 100},
			{Name: "kelly", Wins: 12, Trials: 100},
		} {
			if err := s.Add(a); err != nil {
				t.Fatalf("Add(%s) failed: %v", a.Name, err)
			}
		}
		best, ok := s.Best()
		if !ok || best.Name != "min" {
			t.Errorf("Best() = %v, %v, want min", best.Name, ok)
		}
	})

	t.Run("ties keep the earliest entry", func(t *testing.T) {
		s := NewSummary()
		for _, a := range []Aggregate{
			{Name: "first", Wins: 7, Trials: 100},
			{Name: "second", Wins: 7, Trials: 100},
		} {
			if err := s.Add(a); err != nil {
				t.Fatalf("Add(%s) failed: %v", a.Name, err)
			}
		}
		best, ok := s.Best()
		if !ok || best.Name != "first" {
			t.Errorf("Best() = %v, %v, want first", best.Name, ok)
		}
	})

	t.Run("all-zero wins still names a best", func(t *testing.T) {
		s := NewSummary()
		for _, a := range []Aggregate{
			{Name: "first", Wins: 0, Trials: 10},
			{Name: "second", Wins: 0, Trials: 10},
		} {
			if err := s.Add(a); err != nil {
				t.Fatalf("Add(%s) failed: %v", a.Name, err)
			}
		}
		best, ok := s.Best()
		if !ok || best.Name != "first" {
			t.Errorf("Best() = %v, %v, want first", best.Name, ok)
		}
	})

	t.Run("empty summary has no best", func(t *testing.T) {
		if _, ok := NewSummary().Best(); ok {
			t.Error("expected no best for empty summary")
		}
	})

	t.Run("rejects inconsistent aggregates", func(t *testing.T) {
		s := NewSummary()
		if err := s.Add(Aggregate{Name: "bad", Wins: 5, Trials: 2}); err == nil {
			t.Error("expected error for wins exceeding trials")
		}
	})
}
