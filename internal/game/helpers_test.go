package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/internal/randutil"
	"github.com/lox/holdem/poker"
)

// newTable seats len(chips) players with button on seat 0 for the first hand.
func newTable(t *testing.T, sb, bb int, chips ...int) *Game {
	t.Helper()
	g, err := New(0, bb, sb, len(chips),
		WithChips(chips),
		WithButton(len(chips)-1),
		WithRNG(randutil.New(1)),
	)
	require.NoError(t, err)
	return g
}

// stack arranges the next hand's deck. Hole cards are dealt two at a time
// starting left of the button, then the board.
func stack(t *testing.T, g *Game, cards string) {
	t.Helper()
	parsed, err := poker.ParseCards(cards)
	require.NoError(t, err)
	g.stackDeck = poker.NewStackedDeck(parsed)
}

func act(t *testing.T, g *Game, player int, action ActionType, amount int) {
	t.Helper()
	require.Equal(t, player, g.CurrentPlayer(), "expected player %d to act", player)
	require.NoError(t, g.TakeAction(action, amount))
}

func potTotals(g *Game) []int {
	var totals []int
	for _, p := range g.Pots() {
		totals = append(totals, p.Total)
	}
	return totals
}

func chips(g *Game) []int {
	var out []int
	for _, p := range g.Players() {
		out = append(out, p.Chips)
	}
	return out
}

// randomMove picks uniformly among the legal moves.
func randomMove(rng *rand.Rand, g *Game) (ActionType, int) {
	moves := g.AvailableMoves()
	a := moves.Actions[rng.IntN(len(moves.Actions))]
	if a == Raise {
		return a, moves.MinRaise + rng.IntN(moves.MaxRaise-moves.MinRaise+1)
	}
	return a, 0
}
