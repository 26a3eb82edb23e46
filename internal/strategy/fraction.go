package strategy

import (
	"math"

	"github.com/lox/betsim/internal/game"
)

// Fraction stakes a fixed fraction of the current bankroll, rounded to the
// nearest multiple of the table minimum.
type Fraction struct {
	base
	fraction float64
}

// NewFraction creates a Fraction strategy staking the given fraction of the
// bankroll each flip.
func NewFraction(cfg game.Config, fraction float64) *Fraction {
	return &Fraction{base{cfg}, fraction}
}

func (f *Fraction) NextBet(bankroll, totalWagered int) int {
	steps := math.Round(f.fraction * float64(bankroll) / float64(f.cfg.MinBet))
	stake := int(steps) * f.cfg.MinBet
	if stake == 0 {
		// a zero stake would loop forever
		return 1
	}
	return stake
}
