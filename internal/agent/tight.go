package agent

import (
	"math/rand/v2"

	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/poker"
)

// TightAgent plays strong starting hands aggressively and little else.
// Preflop it raises premium hands, calls with strong and medium ones and
// folds the rest to a bet. After the flop it bets made hands of two pair or
// better and otherwise checks or calls small bets.
type TightAgent struct {
	rng *rand.Rand
}

func NewTightAgent(rng *rand.Rand) *TightAgent {
	if rng == nil {
		panic("agent: nil rng")
	}
	return &TightAgent{rng: rng}
}

func (t *TightAgent) Name() string { return StrategyTight }

func (t *TightAgent) Act(g *game.Game) (game.ActionType, int) {
	id := g.CurrentPlayer()
	hole := g.Hand(id)
	if len(hole) != 2 {
		return passive(g)
	}
	moves := g.AvailableMoves()

	if g.HandPhase() == game.Preflop {
		switch poker.ClassifyStartingHand(hole[0], hole[1]) {
		case poker.Premium:
			return t.raise(g, moves)
		case poker.Strong, poker.Medium:
			return passive(g)
		default:
			return foldUnlessFree(moves)
		}
	}

	rank, err := poker.Evaluate(hole, g.Board())
	if err != nil {
		return passive(g)
	}
	switch {
	case rank.Class() <= poker.TwoPair:
		return t.raise(g, moves)
	case rank.Class() == poker.Pair:
		// calls up to half the pot
		if g.ChipsToCall(id)*2 <= potSize(g) {
			return passive(g)
		}
		return foldUnlessFree(moves)
	default:
		return foldUnlessFree(moves)
	}
}

// raise bets somewhere between the minimum and a pot-sized raise, falling
// back to calling when betting is closed.
func (t *TightAgent) raise(g *game.Game, moves game.MoveSet) (game.ActionType, int) {
	lo, hi, ok := moves.RaiseRange()
	if !ok {
		return passive(g)
	}
	target := min(hi, max(lo, g.PlayerBetAmount(g.CurrentPlayer())+potSize(g)))
	if target > lo {
		target = lo + t.rng.IntN(target-lo+1)
	}
	return game.Raise, target
}

func foldUnlessFree(moves game.MoveSet) (game.ActionType, int) {
	if moves.Contains(game.Check) {
		return game.Check, 0
	}
	return game.Fold, 0
}

func potSize(g *game.Game) int {
	total := 0
	for _, p := range g.Pots() {
		total += p.Total
	}
	return total
}
