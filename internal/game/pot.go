package game

import (
	"maps"
	"slices"
)

// pot is one betting pot. A player is eligible to win it while they hold a
// key in bets; folding removes the key and banks the live bet.
type pot struct {
	amount int         // collected in earlier rounds
	raised int         // largest live contribution this round
	bets   map[int]int // live contributions this round
}

func newPot() *pot {
	return &pot{bets: make(map[int]int)}
}

func (p *pot) toCall(player int) int {
	return p.raised - p.bets[player]
}

func (p *pot) post(player, amount int) {
	invariant(amount >= 0, "negative post %d by player %d", amount, player)
	p.bets[player] += amount
	if p.bets[player] > p.raised {
		p.raised = p.bets[player]
	}
}

func (p *pot) has(player int) bool {
	_, ok := p.bets[player]
	return ok
}

func (p *pot) players() []int {
	return slices.Sorted(maps.Keys(p.bets))
}

func (p *pot) live() int {
	total := 0
	for _, v := range p.bets {
		total += v
	}
	return total
}

func (p *pot) total() int {
	return p.amount + p.live()
}

// collect banks the round's bets, keeping every player's eligibility.
func (p *pot) collect() {
	p.raised = 0
	for id, v := range p.bets {
		p.amount += v
		p.bets[id] = 0
	}
}

func (p *pot) remove(player int) {
	if v, ok := p.bets[player]; ok {
		p.amount += v
		delete(p.bets, player)
	}
}

// split caps the pot at level and returns a new pot holding every
// contribution above it, or nil when nothing exceeds the level.
func (p *pot) split(level int) *pot {
	if p.raised <= level {
		return nil
	}
	next := newPot()
	p.raised = level
	for id, v := range p.bets {
		if v > level {
			next.post(id, v-level)
			p.bets[id] = level
		}
	}
	return next
}

func (p *pot) clone() *pot {
	return &pot{amount: p.amount, raised: p.raised, bets: maps.Clone(p.bets)}
}

// PotView is a read-only snapshot of a pot.
type PotView struct {
	ID int
	// Amount excludes bets made in the current round.
	Amount int
	// Total includes bets made in the current round.
	Total  int
	Raised int
	// Players are the seats eligible to win the pot, ascending.
	Players []int
}

// Pots returns snapshots of every pot, main pot first.
func (g *Game) Pots() []PotView {
	views := make([]PotView, len(g.pots))
	for i, p := range g.pots {
		views[i] = PotView{
			ID:      i,
			Amount:  p.amount,
			Total:   p.total(),
			Raised:  p.raised,
			Players: p.players(),
		}
	}
	return views
}

func (g *Game) pot(id int) *pot {
	invariant(id >= 0 && id < len(g.pots), "pot %d does not exist (%d pots)", id, len(g.pots))
	return g.pots[id]
}

// GetPlayerAmount returns the player's live bet in the given pot.
func (g *Game) GetPlayerAmount(potID, playerID int) int {
	return g.pot(potID).bets[playerID]
}

// PlayerBetAmount returns the player's live bets across every pot.
func (g *Game) PlayerBetAmount(playerID int) int {
	total := 0
	for _, p := range g.pots {
		total += p.bets[playerID]
	}
	return total
}

// ChipsToCall returns what the player owes across the pots they are eligible
// for. It is not capped by the player's stack.
func (g *Game) ChipsToCall(playerID int) int {
	owed := 0
	for i := 0; i <= g.players[playerID].LastPot && i < len(g.pots); i++ {
		owed += g.pots[i].toCall(playerID)
	}
	return owed
}

// ChipsAtStake returns the total of every pot the player can win.
func (g *Game) ChipsAtStake(playerID int) int {
	total := 0
	for _, p := range g.pots {
		if p.has(playerID) {
			total += p.total()
		}
	}
	return total
}

// level is the largest live total any player has committed this round.
func (g *Game) level() int {
	top := 0
	for id := range g.players {
		if v := g.PlayerBetAmount(id); v > top {
			top = v
		}
	}
	return top
}

func (g *Game) totalPot() int {
	total := 0
	for _, p := range g.pots {
		total += p.total()
	}
	return total
}

// post moves chips from a player into the pots, calling every earlier pot
// and putting the remainder in their last pot. Contributions that diverge
// because of an all-in split off into a new pot.
func (g *Game) post(playerID, amount int) {
	pl := g.players[playerID]
	amount = min(amount, pl.Chips)
	invariant(amount >= 0, "negative post %d by player %d", amount, playerID)

	if amount == pl.Chips {
		pl.State = PlayerAllIn
	} else {
		pl.State = In
	}

	last := g.pot(pl.LastPot)
	owedInLast := last.toCall(playerID)

	remaining := amount
	for i := 0; i < pl.LastPot; i++ {
		p := g.pots[i]
		call := p.toCall(playerID)
		remaining -= call
		p.post(playerID, call)
	}
	invariant(remaining >= 0, "player %d posted %d but owed more in earlier pots", playerID, amount)
	last.post(playerID, remaining)
	pl.Chips -= amount

	if remaining > owedInLast {
		for _, other := range g.players {
			if other.State == In && g.ChipsToCall(other.ID) > 0 {
				other.State = ToCall
			}
		}
	}

	allInLevel := -1
	for id, v := range last.bets {
		if g.players[id].State == PlayerAllIn && (allInLevel < 0 || v < allInLevel) {
			allInLevel = v
		}
	}
	if allInLevel >= 0 {
		g.splitPot(pl.LastPot, allInLevel)
	}
}

func (g *Game) splitPot(potID, level int) {
	next := g.pot(potID).split(level)
	if next == nil {
		return
	}
	g.pots = slices.Insert(g.pots, potID+1, next)
	for _, pl := range g.players {
		if pl.CanAct() && pl.Chips > g.ChipsToCall(pl.ID) {
			pl.LastPot++
		}
	}
	g.logger.Debug().
		Int("pot", potID).
		Int("level", level).
		Int("pots", len(g.pots)).
		Msg("Split pot")
}
