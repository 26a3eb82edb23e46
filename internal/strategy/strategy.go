// Package strategy implements the bet-sizing policies evaluated by the
// simulator. Each strategy is a pure function of the trial state: given the
// current bankroll and the total amount wagered so far it returns the next
// stake. Strategies never mutate game configuration and carry no per-trial
// state, so a single instance can be reused across any number of trials.
package strategy

import "github.com/lox/betsim/internal/game"

// Strategy decides the stake for each round of a trial.
type Strategy interface {
	// NextBet returns the stake for the coming flip. A stake of zero or
	// less, or one exceeding the bankroll, ends the trial.
	NextBet(bankroll, totalWagered int) int
	// ShouldContinue reports whether another flip should be played.
	ShouldContinue(bankroll, totalWagered int) bool
}

// base supplies the continuation rule shared by every strategy: play on
// until the bankroll cannot cover the table minimum or the goal is reached.
type base struct {
	cfg game.Config
}

func (b base) ShouldContinue(bankroll, totalWagered int) bool {
	if b.cfg.Ruined(bankroll) {
		return false
	}
	return !b.cfg.Won(bankroll, totalWagered)
}
