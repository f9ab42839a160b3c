package game

import "iter"

// PlayerIter visits every seat once, starting at loc and moving clockwise
// (or counter-clockwise when reverse is set). loc wraps around the table.
func (g *Game) PlayerIter(loc int, reverse bool) iter.Seq[int] {
	n := g.maxPlayers
	start := ((loc % n) + n) % n
	return func(yield func(int) bool) {
		for i := range n {
			step := i
			if reverse {
				step = -i
			}
			if !yield(((start+step)%n + n) % n) {
				return
			}
		}
	}
}

// FilterIter is PlayerIter restricted to players matching keep. The
// predicate is evaluated lazily as each seat is reached.
func (g *Game) FilterIter(loc int, reverse bool, keep func(Player) bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		for id := range g.PlayerIter(loc, reverse) {
			if keep(*g.players[id]) && !yield(id) {
				return
			}
		}
	}
}

// ActiveIter visits players who were dealt in and have not folded.
func (g *Game) ActiveIter(loc int, reverse bool) iter.Seq[int] {
	return g.FilterIter(loc, reverse, Player.IsActive)
}

// InPotIter visits players who can still act this hand.
func (g *Game) InPotIter(loc int, reverse bool) iter.Seq[int] {
	return g.FilterIter(loc, reverse, Player.CanAct)
}
