package game

import (
	"fmt"
	"slices"

	"github.com/lox/holdem/poker"
)

// History records everything needed to replay one hand.
type History struct {
	Prehand *PrehandHistory
	Preflop *BettingRoundHistory
	Flop    *BettingRoundHistory
	Turn    *BettingRoundHistory
	River   *BettingRoundHistory
	Settle  *SettleHistory
}

// PrehandHistory holds the table as the hand was dealt.
type PrehandHistory struct {
	Button     int
	BigBlind   int
	SmallBlind int
	// PlayerChips are the stacks before blinds, indexed by seat.
	PlayerChips []int
	// PlayerCards are the hole cards by seat, nil for seats not dealt in.
	PlayerCards [][]poker.Card
}

// BettingRoundHistory holds the cards revealed for a street and the actions
// taken on it in order.
type BettingRoundHistory struct {
	NewCards []poker.Card
	Actions  []PlayerAction
}

// PlayerAction is one recorded move. Value is the raise-to total for RAISE
// and for an ALL_IN that raised, and zero otherwise.
type PlayerAction struct {
	PlayerID int
	Action   ActionType
	Value    int
}

// SettleHistory holds showdown cards and the result of every pot.
type SettleHistory struct {
	NewCards   []poker.Card
	PotWinners []PotWinner
}

// PotWinner is the result of one pot. BestRank is -1 when the pot was
// awarded without a showdown.
type PotWinner struct {
	PotID    int
	Amount   int
	BestRank int
	Winners  []int
}

// Round returns the record for a betting round, or nil.
func (h *History) Round(phase HandPhase) *BettingRoundHistory {
	switch phase {
	case Preflop:
		return h.Preflop
	case Flop:
		return h.Flop
	case Turn:
		return h.Turn
	case River:
		return h.River
	default:
		return nil
	}
}

func (h *History) setRound(phase HandPhase, r *BettingRoundHistory) {
	switch phase {
	case Preflop:
		h.Preflop = r
	case Flop:
		h.Flop = r
	case Turn:
		h.Turn = r
	case River:
		h.River = r
	default:
		invariant(false, "%s is not a betting round", phase)
	}
}

// Get returns the record for any phase, or nil when the phase was not
// reached.
func (h *History) Get(phase HandPhase) any {
	switch phase {
	case Prehand:
		if h.Prehand != nil {
			return h.Prehand
		}
	case Settle:
		if h.Settle != nil {
			return h.Settle
		}
	default:
		if r := h.Round(phase); r != nil {
			return r
		}
	}
	return nil
}

// Combined returns every card dealt after the hole cards in deal order:
// each street's new cards followed by any settle cards.
func (h *History) Combined() []poker.Card {
	var cards []poker.Card
	for _, phase := range []HandPhase{Preflop, Flop, Turn, River} {
		if r := h.Round(phase); r != nil {
			cards = append(cards, r.NewCards...)
		}
	}
	if h.Settle != nil {
		cards = append(cards, h.Settle.NewCards...)
	}
	return cards
}

// Clone returns a deep copy.
func (h *History) Clone() *History {
	if h == nil {
		return nil
	}
	out := &History{}
	if h.Prehand != nil {
		pre := *h.Prehand
		pre.PlayerChips = slices.Clone(h.Prehand.PlayerChips)
		pre.PlayerCards = cloneHands(h.Prehand.PlayerCards)
		out.Prehand = &pre
	}
	for _, phase := range []HandPhase{Preflop, Flop, Turn, River} {
		if r := h.Round(phase); r != nil {
			out.setRound(phase, &BettingRoundHistory{
				NewCards: slices.Clone(r.NewCards),
				Actions:  slices.Clone(r.Actions),
			})
		}
	}
	if h.Settle != nil {
		s := &SettleHistory{NewCards: slices.Clone(h.Settle.NewCards)}
		for _, w := range h.Settle.PotWinners {
			w.Winners = slices.Clone(w.Winners)
			s.PotWinners = append(s.PotWinners, w)
		}
		out.Settle = s
	}
	return out
}

// Validate checks the history is internally consistent enough to replay.
func (h *History) Validate() error {
	if h.Prehand == nil {
		return fmt.Errorf("history has no prehand record")
	}
	pre := h.Prehand
	n := len(pre.PlayerChips)
	if n < 2 {
		return fmt.Errorf("history has %d players", n)
	}
	if len(pre.PlayerCards) != n {
		return fmt.Errorf("history has %d stacks but %d hands", n, len(pre.PlayerCards))
	}
	if pre.Button < 0 || pre.Button >= n || pre.PlayerChips[pre.Button] == 0 {
		return fmt.Errorf("button seat %d is not occupied", pre.Button)
	}
	for seat, chips := range pre.PlayerChips {
		dealt := len(pre.PlayerCards[seat])
		switch {
		case chips < 0:
			return fmt.Errorf("seat %d has negative stack %d", seat, chips)
		case chips > 0 && dealt != 2:
			return fmt.Errorf("seat %d has %d hole cards", seat, dealt)
		case chips == 0 && dealt != 0:
			return fmt.Errorf("empty seat %d has hole cards", seat)
		}
	}
	for phase := Preflop; phase <= River; phase++ {
		r := h.Round(phase)
		if r == nil {
			continue
		}
		if len(r.NewCards) != phase.NewCards() {
			return fmt.Errorf("%s has %d new cards, want %d", phase, len(r.NewCards), phase.NewCards())
		}
		for _, a := range r.Actions {
			if a.PlayerID < 0 || a.PlayerID >= n {
				return fmt.Errorf("%s action by unknown player %d", phase, a.PlayerID)
			}
		}
	}
	return nil
}

// Canonical returns a copy renumbered so the button is seat 0 and seats
// without chips are dropped. Exported history files use this form.
func (h *History) Canonical() *History {
	out := h.Clone()
	pre := out.Prehand
	n := len(pre.PlayerChips)

	remap := make(map[int]int, n)
	var chips []int
	var cards [][]poker.Card
	for i := range n {
		seat := (pre.Button + i) % n
		if pre.PlayerChips[seat] == 0 {
			continue
		}
		remap[seat] = len(chips)
		chips = append(chips, pre.PlayerChips[seat])
		cards = append(cards, pre.PlayerCards[seat])
	}
	pre.Button = 0
	pre.PlayerChips = chips
	pre.PlayerCards = cards

	for _, phase := range []HandPhase{Preflop, Flop, Turn, River} {
		if r := out.Round(phase); r != nil {
			for i := range r.Actions {
				r.Actions[i].PlayerID = remap[r.Actions[i].PlayerID]
			}
		}
	}
	if out.Settle != nil {
		for i := range out.Settle.PotWinners {
			w := out.Settle.PotWinners[i].Winners
			for j := range w {
				w[j] = remap[w[j]]
			}
			slices.Sort(w)
		}
	}
	return out
}

func cloneHands(hands [][]poker.Card) [][]poker.Card {
	out := make([][]poker.Card, len(hands))
	for i, h := range hands {
		out[i] = slices.Clone(h)
	}
	return out
}
