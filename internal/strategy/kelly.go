package strategy

import "github.com/lox/betsim/internal/game"

// Kelly sizes each stake against the distance still to cover. When the goal
// is cumulative wagering it bets the exact remainder once the bankroll
// covers it, locking in the win, and otherwise stakes half the gap between
// the remainder and the bankroll. When the goal is the bankroll itself it
// stakes exactly what is missing, capped at the bankroll.
type Kelly struct {
	base
}

// NewKelly creates a new Kelly strategy.
func NewKelly(cfg game.Config) *Kelly {
	return &Kelly{base{cfg}}
}

func (k *Kelly) NextBet(bankroll, totalWagered int) int {
	if k.cfg.WinIsBetAmount {
		remaining := k.cfg.Target - totalWagered
		if bankroll >= remaining {
			return remaining
		}
		return min((remaining-bankroll+1)/2, bankroll)
	}
	return min(bankroll, k.cfg.Target-bankroll)
}
