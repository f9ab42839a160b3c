package game

import (
	"github.com/lox/holdem/poker"
)

// settle completes the board if a showdown is needed, awards every pot and
// ends the hand.
func (g *Game) settle() {
	g.phase = Settle
	record := &SettleHistory{}
	g.history.Settle = record
	g.current = g.nextActive(g.button + 1)

	before := g.totalPot()
	for _, pl := range g.players {
		before += pl.Chips
	}

	for id, p := range g.pots {
		players := p.players()
		total := p.total()
		if len(players) == 0 {
			invariant(total == 0, "pot %d holds %d chips but nobody is eligible", id, total)
			continue
		}
		if len(players) == 1 {
			g.players[players[0]].Chips += total
			record.PotWinners = append(record.PotWinners, PotWinner{PotID: id, Amount: total, BestRank: -1, Winners: players})
			continue
		}

		if missing := 5 - len(g.board); missing > 0 {
			cards, err := g.deck.Draw(missing)
			invariant(err == nil, "complete board: %v", err)
			record.NewCards = append(record.NewCards, cards...)
			g.board = append(g.board, cards...)
		}

		best := poker.MaxHighCard + 1
		var winners []int
		for _, pid := range players {
			rank, err := poker.Evaluate(g.hands[pid], g.board)
			invariant(err == nil, "evaluate player %d: %v", pid, err)
			switch {
			case rank < best:
				best = rank
				winners = []int{pid}
			case rank == best:
				winners = append(winners, pid)
			}
		}
		g.award(total, winners)
		record.PotWinners = append(record.PotWinners, PotWinner{PotID: id, Amount: total, BestRank: int(best), Winners: winners})
	}

	after := 0
	for _, pl := range g.players {
		after += pl.Chips
	}
	invariant(before == after, "chips not conserved: %d before settle, %d after", before, after)

	for _, w := range record.PotWinners {
		g.logger.Debug().
			Int("pot", w.PotID).
			Int("amount", w.Amount).
			Int("rank", w.BestRank).
			Ints("winners", w.Winners).
			Msg("Pot awarded")
	}

	g.phase = Prehand
	g.handRunning = false
}

// award splits a pot evenly. Odd chips go one at a time to the winners
// closest to the left of the button.
func (g *Game) award(total int, winners []int) {
	share := total / len(winners)
	odd := total % len(winners)
	isWinner := make(map[int]bool, len(winners))
	for _, id := range winners {
		g.players[id].Chips += share
		isWinner[id] = true
	}
	for id := range g.PlayerIter(g.button+1, false) {
		if odd == 0 {
			break
		}
		if isWinner[id] {
			g.players[id].Chips++
			odd--
		}
	}
}
