package phh

import (
	"fmt"
	"slices"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/holdem/internal/game"
)

// Variant is the PHH code for no-limit Texas hold'em.
const Variant = "NT"

// FromHistory converts a finished hand. Players are numbered in PHH
// position order, starting with the small blind; seats without chips are
// left out. The hand is replayed to work out finishing stacks and which
// players reached showdown, so a history that does not replay is an error.
func FromHistory(h *game.History, meta Meta) (*HandHistory, error) {
	if h == nil || h.Prehand == nil {
		return nil, fmt.Errorf("phh: history has no prehand record")
	}
	var final *game.Game
	for g, err := range game.Replay(h) {
		if err != nil {
			return nil, fmt.Errorf("phh: %w", err)
		}
		final = g
	}
	pre := h.Prehand
	if len(meta.Players) > 0 && len(meta.Players) != len(pre.PlayerChips) {
		return nil, fmt.Errorf("phh: %d player names for %d seats", len(meta.Players), len(pre.PlayerChips))
	}

	var order []int
	for seat := range final.PlayerIter(final.SmallBlindLoc(), false) {
		if pre.PlayerChips[seat] > 0 {
			order = append(order, seat)
		}
	}
	position := make(map[int]int, len(order))
	for pos, seat := range order {
		position[seat] = pos
	}

	if meta.HandID == "" {
		meta.HandID = uuid.NewString()
	}
	if meta.Clock == nil {
		meta.Clock = quartz.NewReal()
	}

	hist := &HandHistory{
		Variant:           Variant,
		Table:             meta.Table,
		SeatCount:         len(pre.PlayerChips),
		Seats:             make([]int, len(order)),
		Antes:             make([]int, len(order)),
		BlindsOrStraddles: make([]int, len(order)),
		MinBet:            pre.BigBlind,
		StartingStacks:    make([]int, len(order)),
		FinishingStacks:   make([]int, len(order)),
		Winnings:          make([]int, len(order)),
		HandID:            meta.HandID,
		Timestamp:         meta.Clock.Now(),
	}
	if len(meta.Players) > 0 {
		hist.Players = make([]string, len(order))
	}

	for pos, seat := range order {
		hist.Seats[pos] = seat + 1
		hist.StartingStacks[pos] = pre.PlayerChips[seat]
		hist.FinishingStacks[pos] = final.Player(seat).Chips
		hist.Winnings[pos] = max(0, hist.FinishingStacks[pos]-hist.StartingStacks[pos])
		if len(meta.Players) > 0 {
			hist.Players[pos] = meta.Players[seat]
		}

		cards := FormatCards(pre.PlayerCards[seat])
		if meta.HideHoleCards {
			cards = hiddenCards(len(pre.PlayerCards[seat]))
		}
		hist.Actions = append(hist.Actions, fmt.Sprintf("d dh p%d %s", pos+1, cards))
	}
	hist.BlindsOrStraddles[position[final.SmallBlindLoc()]] = pre.SmallBlind
	hist.BlindsOrStraddles[position[final.BigBlindLoc()]] = pre.BigBlind

	dealt := 0
	for _, phase := range []game.HandPhase{game.Preflop, game.Flop, game.Turn, game.River} {
		r := h.Round(phase)
		if r == nil {
			continue
		}
		if len(r.NewCards) > 0 {
			hist.Actions = append(hist.Actions, "d db "+FormatCards(r.NewCards))
			dealt += len(r.NewCards)
		}
		for _, a := range r.Actions {
			hist.Actions = append(hist.Actions, FormatAction(position[a.PlayerID], a))
		}
	}

	if h.Settle != nil {
		// run out the remaining streets one deal at a time
		rest := h.Settle.NewCards
		for len(rest) > 0 {
			n := 1
			if dealt < 3 {
				n = 3 - dealt
			}
			n = min(n, len(rest))
			hist.Actions = append(hist.Actions, "d db "+FormatCards(rest[:n]))
			dealt += n
			rest = rest[n:]
		}
		hist.Actions = append(hist.Actions, showdown(final, order, pre)...)
	}

	populateTimeFields(hist)
	return hist, nil
}

// showdown lists "sm" actions for every player still contesting a pot with
// more than one eligible player.
func showdown(final *game.Game, order []int, pre *game.PrehandHistory) []string {
	var shown []int
	for _, p := range final.Pots() {
		if len(p.Players) > 1 {
			shown = append(shown, p.Players...)
		}
	}
	var actions []string
	for pos, seat := range order {
		if slices.Contains(shown, seat) {
			actions = append(actions, fmt.Sprintf("p%d sm %s", pos+1, FormatCards(pre.PlayerCards[seat])))
		}
	}
	return actions
}

func populateTimeFields(hist *HandHistory) {
	t := hist.Timestamp
	if t.IsZero() {
		return
	}
	utc := t.UTC()
	hist.Time = utc.Format("15:04:05")
	hist.TimeZone = "UTC"
	hist.Day = utc.Day()
	hist.Month = int(utc.Month())
	hist.Year = utc.Year()
}
