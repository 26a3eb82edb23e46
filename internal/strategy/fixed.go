package strategy

import "github.com/lox/betsim/internal/game"

// Fixed stakes the same amount every flip, shrinking only when the bankroll
// no longer covers it.
type Fixed struct {
	base
	size int
}

// NewFixed creates a Fixed strategy staking size per flip. A size of zero or
// less defaults to the starting bankroll.
func NewFixed(cfg game.Config, size int) *Fixed {
	if size <= 0 {
		size = cfg.Start
	}
	return &Fixed{base{cfg}, size}
}

func (f *Fixed) NextBet(bankroll, totalWagered int) int {
	return min(f.size, bankroll)
}
