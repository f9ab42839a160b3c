package game

import (
	"fmt"
	"slices"
	"strings"
)

// MoveSet is the set of legal moves for the acting player. Raise bounds are
// "raise to" totals and only meaningful when Raise is present.
type MoveSet struct {
	Actions  []ActionType
	MinRaise int
	MaxRaise int
}

// Contains reports whether the action type is legal.
func (m MoveSet) Contains(a ActionType) bool {
	return slices.Contains(m.Actions, a)
}

// RaiseRange returns the inclusive raise-to bounds and whether raising is legal.
func (m MoveSet) RaiseRange() (lo, hi int, ok bool) {
	return m.MinRaise, m.MaxRaise, m.Contains(Raise)
}

func (m MoveSet) String() string {
	parts := make([]string, 0, len(m.Actions))
	for _, a := range m.Actions {
		if a == Raise {
			parts = append(parts, fmt.Sprintf("RAISE[%d-%d]", m.MinRaise, m.MaxRaise))
			continue
		}
		parts = append(parts, a.String())
	}
	return strings.Join(parts, " ")
}

// LastRaise is the increment of the last full raise this round, at least
// the big blind.
func (g *Game) LastRaise() int {
	return max(g.bigBlind, g.lastRaise)
}

// MinRaise is the smallest legal "raise to" total for a full raise.
func (g *Game) MinRaise() int {
	return g.level() + g.LastRaise()
}

// RaiseOption reports whether betting is open to the acting player. A
// player who already acted this round may only raise again once the bet has
// grown by a full raise since they acted; all-ins smaller than a full raise
// do not reopen the betting until together they add up to one.
func (g *Game) RaiseOption() bool {
	if !g.handRunning || g.current < 0 {
		return false
	}
	return g.raiseOption(g.current)
}

func (g *Game) raiseOption(playerID int) bool {
	acted := g.actedAt[playerID]
	if acted < 0 {
		return true
	}
	return g.level()-acted >= g.LastRaise()
}

// AvailableMoves returns the legal moves for the acting player.
func (g *Game) AvailableMoves() MoveSet {
	if !g.handRunning || g.current < 0 {
		return MoveSet{}
	}
	id := g.current
	pl := g.players[id]
	toCall := g.ChipsToCall(id)
	bet := g.PlayerBetAmount(id)
	maxTo := bet + pl.Chips

	moves := MoveSet{Actions: []ActionType{Fold}}
	switch pl.State {
	case In:
		moves.Actions = append(moves.Actions, Check)
	case ToCall:
		moves.Actions = append(moves.Actions, Call)
	}

	canRaise := g.raiseOption(id) && pl.Chips > toCall
	if canRaise {
		moves.Actions = append(moves.Actions, Raise)
		moves.MinRaise = min(g.MinRaise(), maxTo)
		moves.MaxRaise = maxTo
	}
	if pl.Chips > 0 && (pl.Chips <= toCall && pl.State == ToCall || canRaise) {
		moves.Actions = append(moves.Actions, AllIn)
	}
	return moves
}

// translateAllIn turns an all-in into the call or raise it amounts to.
func (g *Game) translateAllIn(playerID int) (ActionType, int) {
	pl := g.players[playerID]
	if pl.Chips <= g.ChipsToCall(playerID) {
		return Call, 0
	}
	return Raise, g.PlayerBetAmount(playerID) + pl.Chips
}

// ValidateMove checks whether the player may take the action now. Amount is
// the "raise to" total for Raise and ignored otherwise.
func (g *Game) ValidateMove(playerID int, action ActionType, amount int) error {
	if !g.handRunning {
		e := invalidAction(playerID, action, amount, "no hand is running")
		e.cause = ErrNoHandRunning
		return e
	}
	if playerID != g.current {
		return invalidAction(playerID, action, amount, "not their turn, player %d to act", g.current)
	}
	pl := g.players[playerID]

	switch action {
	case Fold:
		return nil
	case Check:
		if pl.State != In {
			return invalidAction(playerID, action, amount, "owes %d chips", g.ChipsToCall(playerID))
		}
		return nil
	case Call:
		if pl.State != ToCall {
			return invalidAction(playerID, action, amount, "nothing to call")
		}
		return nil
	case AllIn:
		if pl.Chips == 0 {
			return invalidAction(playerID, action, amount, "no chips")
		}
		translated, total := g.translateAllIn(playerID)
		if translated == Call {
			if pl.State != ToCall {
				return invalidAction(playerID, action, amount, "nothing to call")
			}
			return nil
		}
		if !g.raiseOption(playerID) {
			return invalidAction(playerID, action, total, "betting is not reopened")
		}
		return nil
	case Raise:
		toCall := g.ChipsToCall(playerID)
		maxTo := g.PlayerBetAmount(playerID) + pl.Chips
		switch {
		case !g.raiseOption(playerID):
			return invalidAction(playerID, action, amount, "betting is not reopened")
		case pl.Chips <= toCall:
			return invalidAction(playerID, action, amount, "cannot cover the %d to call", toCall)
		case amount > maxTo:
			return invalidAction(playerID, action, amount, "only %d chips available", maxTo)
		case amount < g.MinRaise() && amount != maxTo:
			return invalidAction(playerID, action, amount, "minimum raise is to %d", g.MinRaise())
		}
		return nil
	default:
		return invalidAction(playerID, action, amount, "unknown action")
	}
}
