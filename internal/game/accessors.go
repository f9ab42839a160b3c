package game

import (
	"slices"

	"github.com/lox/holdem/poker"
)

// HandPhase returns the current phase. Between hands it is PREHAND.
func (g *Game) HandPhase() HandPhase { return g.phase }

// CurrentPlayer returns the seat to act, or -1 before the first hand.
func (g *Game) CurrentPlayer() int { return g.current }

// Button returns the dealer seat of the current or last hand.
func (g *Game) Button() int { return g.button }

// SmallBlindLoc returns the small blind seat of the current or last hand.
func (g *Game) SmallBlindLoc() int { return g.sbLoc }

// BigBlindLoc returns the big blind seat of the current or last hand.
func (g *Game) BigBlindLoc() int { return g.bbLoc }

// BigBlind returns the big blind amount.
func (g *Game) BigBlind() int { return g.bigBlind }

// SmallBlind returns the small blind amount.
func (g *Game) SmallBlind() int { return g.smallBlind }

// Buyin returns the chips each seat starts with unless WithChips overrides it.
func (g *Game) Buyin() int { return g.buyin }

// MaxPlayers returns the number of seats at the table.
func (g *Game) MaxPlayers() int { return g.maxPlayers }

// IsHandRunning reports whether a hand is in progress.
func (g *Game) IsHandRunning() bool { return g.handRunning }

// IsGameRunning is false once StartHand finds fewer than two funded seats.
func (g *Game) IsGameRunning() bool { return g.gameRunning }

// NumHands returns how many hands have been started.
func (g *Game) NumHands() int { return g.numHands }

// Players returns a copy of every seat.
func (g *Game) Players() []Player {
	out := make([]Player, len(g.players))
	for i, p := range g.players {
		out[i] = *p
	}
	return out
}

// Player returns a copy of one seat.
func (g *Game) Player(id int) Player {
	return *g.players[id]
}

// Board returns the community cards dealt so far.
func (g *Game) Board() []poker.Card {
	return slices.Clone(g.board)
}

// Hand returns a player's hole cards, or nil if they were not dealt in.
func (g *Game) Hand(id int) []poker.Card {
	if id < 0 || id >= len(g.hands) {
		return nil
	}
	return slices.Clone(g.hands[id])
}

// HandHistory returns a copy of the current or last hand's history.
func (g *Game) HandHistory() *History {
	return g.history.Clone()
}

// TotalChips returns every chip on the table, stacks and pots together.
func (g *Game) TotalChips() int {
	total := 0
	for _, p := range g.players {
		total += p.Chips
	}
	if g.handRunning {
		total += g.totalPot()
	}
	return total
}

// clone deep-copies the game for replay snapshots.
func (g *Game) clone() *Game {
	c := *g
	c.players = make([]*Player, len(g.players))
	for i, p := range g.players {
		cp := *p
		c.players[i] = &cp
	}
	c.pots = make([]*pot, len(g.pots))
	for i, p := range g.pots {
		c.pots[i] = p.clone()
	}
	if g.deck != nil {
		c.deck = poker.NewStackedDeck(g.deck.Cards())
	}
	c.board = slices.Clone(g.board)
	c.hands = cloneHands(g.hands)
	c.actedAt = slices.Clone(g.actedAt)
	c.history = g.history.Clone()
	c.stackDeck = nil
	return &c
}
