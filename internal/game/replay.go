package game

import (
	"fmt"
	"iter"
	"slices"

	"github.com/lox/holdem/poker"
)

// Replay plays a recorded hand back. It yields a snapshot of the game
// before every recorded action and once more after settlement. Each range
// over the sequence starts from scratch. Actions go through TakeAction, so a
// history that breaks the rules stops the replay with an error.
func Replay(h *History) iter.Seq2[*Game, error] {
	return func(yield func(*Game, error) bool) {
		g, actions, err := replaySetup(h)
		if err != nil {
			yield(nil, err)
			return
		}

		for g.IsHandRunning() {
			if len(actions) == 0 {
				yield(nil, fmt.Errorf("replay: history ends during %s", g.HandPhase()))
				return
			}
			if !yield(g.clone(), nil) {
				return
			}
			a := actions[0]
			actions = actions[1:]
			if len(actions) == 0 && h.Settle == nil {
				yield(nil, fmt.Errorf("replay: history has no settle record"))
				return
			}
			if a.PlayerID != g.CurrentPlayer() {
				yield(nil, fmt.Errorf("replay: recorded action by player %d but player %d is to act", a.PlayerID, g.CurrentPlayer()))
				return
			}
			if err := g.TakeAction(a.Action, a.Value); err != nil {
				yield(nil, fmt.Errorf("replay: %w", err))
				return
			}
		}
		if len(actions) > 0 {
			yield(nil, fmt.Errorf("replay: %d actions left after the hand ended", len(actions)))
			return
		}
		if err := checkSettle(h.Settle, g.history.Settle); err != nil {
			yield(nil, err)
			return
		}
		yield(g.clone(), nil)
	}
}

func replaySetup(h *History) (*Game, []PlayerAction, error) {
	if h == nil {
		return nil, nil, fmt.Errorf("replay: nil history")
	}
	if err := h.Validate(); err != nil {
		return nil, nil, fmt.Errorf("replay: %w", err)
	}
	if h.Settle != nil && showdown(h.Settle) && len(h.Combined()) != 5 {
		return nil, nil, fmt.Errorf("replay: showdown recorded with %d board cards", len(h.Combined()))
	}
	pre := h.Prehand
	n := len(pre.PlayerChips)

	g, err := New(0, pre.BigBlind, pre.SmallBlind, n,
		WithChips(pre.PlayerChips),
		WithButton((pre.Button-1+n)%n),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("replay: %w", err)
	}

	var deck []poker.Card
	for id := range g.PlayerIter(pre.Button+1, false) {
		if pre.PlayerChips[id] > 0 {
			deck = append(deck, pre.PlayerCards[id]...)
		}
	}
	deck = append(deck, h.Combined()...)
	g.stackDeck = poker.NewStackedDeck(deck)

	var actions []PlayerAction
	for _, phase := range []HandPhase{Preflop, Flop, Turn, River} {
		if r := h.Round(phase); r != nil {
			actions = append(actions, r.Actions...)
		}
	}

	if err := g.StartHand(); err != nil {
		return nil, nil, fmt.Errorf("replay: %w", err)
	}
	return g, actions, nil
}

func showdown(s *SettleHistory) bool {
	for _, w := range s.PotWinners {
		if w.BestRank >= 0 {
			return true
		}
	}
	return false
}

func checkSettle(want, got *SettleHistory) error {
	if want == nil {
		return nil
	}
	if got == nil {
		return fmt.Errorf("replay: hand did not settle")
	}
	if len(want.PotWinners) != len(got.PotWinners) {
		return fmt.Errorf("replay: %d pots settled, history records %d", len(got.PotWinners), len(want.PotWinners))
	}
	for i, w := range want.PotWinners {
		g := got.PotWinners[i]
		if w.Amount != g.Amount || w.BestRank != g.BestRank || !slices.Equal(w.Winners, g.Winners) {
			return fmt.Errorf("replay: pot %d settled as %+v, history records %+v", i, g, w)
		}
	}
	return nil
}
