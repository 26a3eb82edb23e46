package strategy

import "github.com/lox/betsim/internal/game"

// MinBet grinds at the table minimum every flip.
type MinBet struct {
	base
}

// NewMinBet creates a new MinBet strategy.
func NewMinBet(cfg game.Config) *MinBet {
	return &MinBet{base{cfg}}
}

func (m *MinBet) NextBet(bankroll, totalWagered int) int {
	return min(m.cfg.MinBet, bankroll)
}
