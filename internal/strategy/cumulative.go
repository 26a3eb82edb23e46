package strategy

import (
	"math"

	"github.com/lox/betsim/internal/game"
)

// FractionCumulative opens with a fixed starting stake, then stakes a
// fraction of the total amount wagered so far. Wagers only ever grow, so the
// stake escalates regardless of how the bankroll is doing.
type FractionCumulative struct {
	base
	fraction    float64
	startingBet int
}

// NewFractionCumulative creates a FractionCumulative strategy. A startingBet
// of zero or less defaults to the table minimum.
func NewFractionCumulative(cfg game.Config, fraction float64, startingBet int) *FractionCumulative {
	if startingBet <= 0 {
		startingBet = cfg.MinBet
	}
	return &FractionCumulative{base{cfg}, fraction, startingBet}
}

func (f *FractionCumulative) NextBet(bankroll, totalWagered int) int {
	if totalWagered == 0 {
		return f.startingBet
	}
	return int(math.Round(f.fraction * float64(totalWagered)))
}
