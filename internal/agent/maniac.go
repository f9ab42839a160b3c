package agent

import (
	"math/rand/v2"

	"github.com/lox/holdem/internal/game"
)

// ManiacAgent is an extremely aggressive agent that shoves frequently.
// Unopened it bets 85% of the time, shoving when short or on a coin flip
// weighted 30%. Facing a bet it shoves 40%, calls 40% and folds the rest.
type ManiacAgent struct {
	rng *rand.Rand
}

func NewManiacAgent(rng *rand.Rand) *ManiacAgent {
	if rng == nil {
		panic("agent: nil rng")
	}
	return &ManiacAgent{rng: rng}
}

func (m *ManiacAgent) Name() string { return StrategyManiac }

func (m *ManiacAgent) Act(g *game.Game) (game.ActionType, int) {
	moves := g.AvailableMoves()

	if moves.Contains(game.Check) {
		if m.rng.Float64() < 0.85 {
			if g.Player(g.CurrentPlayer()).Chips <= 20*g.BigBlind() || m.rng.Float64() < 0.3 {
				return m.shove(g, moves)
			}
			if lo, hi, ok := moves.RaiseRange(); ok {
				return game.Raise, lo + (hi-lo)*3/4
			}
		}
		return game.Check, 0
	}

	switch r := m.rng.Float64(); {
	case r < 0.4:
		return m.shove(g, moves)
	case r < 0.8:
		return passive(g)
	default:
		return game.Fold, 0
	}
}

func (m *ManiacAgent) shove(g *game.Game, moves game.MoveSet) (game.ActionType, int) {
	if moves.Contains(game.AllIn) {
		return game.AllIn, 0
	}
	if _, hi, ok := moves.RaiseRange(); ok {
		return game.Raise, hi
	}
	return passive(g)
}
