package simulator

import (
	"github.com/lox/betsim/internal/game"
	"github.com/lox/betsim/internal/randutil"
	"github.com/lox/betsim/internal/strategy"
)

// TrialResult captures the outcome of one complete game.
type TrialResult struct {
	Won           bool
	Steps         int
	TotalWagered  int
	FinalBankroll int
}

// RunTrial plays one complete game using the given strategy, drawing flips
// from src, and reports how it ended.
//
// The loop polices stakes but never resizes them: a stake that is not
// positive or exceeds the bankroll ends the trial on the spot, in whatever
// win/loss state already holds. Any clamping is the strategy's own business.
func RunTrial(cfg game.Config, s strategy.Strategy, src randutil.Source) TrialResult {
	bankroll := cfg.Start
	totalWagered := 0
	steps := 0

	for s.ShouldContinue(bankroll, totalWagered) {
		bet := s.NextBet(bankroll, totalWagered)
		if bet <= 0 || bet > bankroll {
			break
		}
		steps++
		totalWagered += bet
		if src.Float64() <= cfg.P {
			bankroll += bet
		} else {
			bankroll -= bet
		}
	}

	return TrialResult{
		Won:           cfg.Won(bankroll, totalWagered),
		Steps:         steps,
		TotalWagered:  totalWagered,
		FinalBankroll: bankroll,
	}
}
