package strategy

import "github.com/lox/betsim/internal/game"

// AllIn stakes the entire bankroll on every flip.
type AllIn struct {
	base
}

// NewAllIn creates a new AllIn strategy.
func NewAllIn(cfg game.Config) *AllIn {
	return &AllIn{base{cfg}}
}

func (a *AllIn) NextBet(bankroll, totalWagered int) int {
	return bankroll
}
