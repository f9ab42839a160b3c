// Package agent holds simple automated players used by the simulator.
package agent

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/lox/holdem/internal/game"
)

// Agent decides a move for the acting player. The amount is a "raise to"
// total and only meaningful for game.Raise.
type Agent interface {
	Name() string
	Act(g *game.Game) (game.ActionType, int)
}

// Strategy names accepted by New.
const (
	StrategyCall   = "call"
	StrategyFold   = "fold"
	StrategyRandom = "random"
	StrategyTight  = "tight"
	StrategyManiac = "maniac"
)

// Strategies lists every strategy New understands.
var Strategies = []string{StrategyCall, StrategyFold, StrategyRandom, StrategyTight, StrategyManiac}

// New builds an agent for a strategy name. rng is only used by strategies
// that randomise.
func New(strategy string, rng *rand.Rand) (Agent, error) {
	switch strategy {
	case StrategyCall:
		return CallAgent{}, nil
	case StrategyFold:
		return FoldAgent{}, nil
	case StrategyRandom:
		return NewRandomAgent(rng), nil
	case StrategyTight:
		return NewTightAgent(rng), nil
	case StrategyManiac:
		return NewManiacAgent(rng), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %v)", strategy, Strategies)
	}
}

// ValidStrategy reports whether New accepts the name.
func ValidStrategy(name string) bool {
	return slices.Contains(Strategies, name)
}

// CallAgent never folds: it checks when it can, calls otherwise and goes
// all in when a call would take its whole stack.
type CallAgent struct{}

func (CallAgent) Name() string { return StrategyCall }

func (CallAgent) Act(g *game.Game) (game.ActionType, int) {
	return passive(g)
}

// FoldAgent checks when it is free and folds to any bet.
type FoldAgent struct{}

func (FoldAgent) Name() string { return StrategyFold }

func (FoldAgent) Act(g *game.Game) (game.ActionType, int) {
	if g.AvailableMoves().Contains(game.Check) {
		return game.Check, 0
	}
	return game.Fold, 0
}

// RandomAgent picks uniformly among the legal moves, with a uniform raise
// size when it raises.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	if rng == nil {
		panic("agent: nil rng")
	}
	return &RandomAgent{rng: rng}
}

func (r *RandomAgent) Name() string { return StrategyRandom }

func (r *RandomAgent) Act(g *game.Game) (game.ActionType, int) {
	moves := g.AvailableMoves()
	if len(moves.Actions) == 0 {
		return game.Fold, 0
	}
	a := moves.Actions[r.rng.IntN(len(moves.Actions))]
	if a == game.Raise {
		return a, moves.MinRaise + r.rng.IntN(moves.MaxRaise-moves.MinRaise+1)
	}
	return a, 0
}

// passive checks, calls, or shoves when calling costs the whole stack.
func passive(g *game.Game) (game.ActionType, int) {
	moves := g.AvailableMoves()
	switch {
	case moves.Contains(game.Check):
		return game.Check, 0
	case moves.Contains(game.Call):
		id := g.CurrentPlayer()
		if g.Player(id).Chips <= g.ChipsToCall(id) && moves.Contains(game.AllIn) {
			return game.AllIn, 0
		}
		return game.Call, 0
	default:
		return game.Fold, 0
	}
}
