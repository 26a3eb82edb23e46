// Package game defines the biased coin-flip betting game: a bankroll is
// wagered round by round against a coin that pays even money, until the
// bankroll reaches a target or can no longer cover the table minimum.
package game

import "fmt"

// Config holds the fixed parameters of a betting game. The zero value is not
// playable; use Default and override fields as needed.
type Config struct {
	// P is the probability that a single flip wins.
	P float64
	// Start is the bankroll each trial begins with.
	Start int
	// Target is the bankroll (or cumulative wager, see WinIsBetAmount) at
	// which a trial stops as won.
	Target int
	// MinBet is the table minimum. A bankroll below MinBet cannot place a
	// bet and the trial stops as lost.
	MinBet int
	// WinIsBetAmount redefines success: the trial is won once the total
	// amount wagered reaches Target, regardless of the bankroll.
	WinIsBetAmount bool
}

// Default returns the standard game: a 40% coin, 2000 chip bankroll, 10000
// chip target and a table minimum of 1.
func Default() Config {
	return Config{
		P:      0.4,
		Start:  2000,
		Target: 10000,
		MinBet: 1,
	}
}

// Validate reports whether the configuration describes a playable game.
func (c Config) Validate() error {
	if c.P < 0 || c.P > 1 {
		return fmt.Errorf("probability %v outside [0, 1]", c.P)
	}
	if c.Start <= 0 {
		return fmt.Errorf("starting bankroll %d must be positive", c.Start)
	}
	if c.Target <= 0 {
		return fmt.Errorf("target %d must be positive", c.Target)
	}
	if c.MinBet <= 0 {
		return fmt.Errorf("minimum bet %d must be positive", c.MinBet)
	}
	return nil
}

// Won reports whether a trial in the given state has reached its goal.
func (c Config) Won(bankroll, totalWagered int) bool {
	if c.WinIsBetAmount {
		return totalWagered >= c.Target
	}
	return bankroll >= c.Target
}

// Ruined reports whether the bankroll can no longer cover the table minimum.
func (c Config) Ruined(bankroll int) bool {
	return bankroll < c.MinBet
}
