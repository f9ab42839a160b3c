// Package pgn reads and writes hand histories in the plain-text PGN hand
// notation. Files always use the canonical seating: the button is player 0
// and seats without chips are left out.
package pgn

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/poker"
)

// FileExtension is the extension used for exported hands.
const FileExtension = "pgn"

const (
	keyBigBlind    = "Big Blind"
	keySmallBlind  = "Small Blind"
	keyPlayerChips = "Player Chips"
	keyPlayerCards = "Player Cards"
	keyNewCards    = "New Cards"
	keyWinners     = "Winners"
)

// Encode writes h in canonical form. Phases the hand never reached are
// omitted.
func Encode(w io.Writer, h *game.History) error {
	if h == nil || h.Prehand == nil {
		return fmt.Errorf("pgn: history has no prehand record")
	}
	c := h.Canonical()

	bw := bufio.NewWriter(w)
	sections := 0
	section := func(phase game.HandPhase) {
		if sections > 0 {
			bw.WriteString("\n")
		}
		sections++
		bw.WriteString(phase.String() + "\n")
	}

	section(game.Prehand)
	writePrehand(bw, c.Prehand)

	for _, phase := range []game.HandPhase{game.Preflop, game.Flop, game.Turn, game.River} {
		r := c.Round(phase)
		if r == nil {
			continue
		}
		section(phase)
		writeRound(bw, r)
	}

	if c.Settle != nil {
		section(game.Settle)
		fmt.Fprintf(bw, "%s: [%s]\n", keyNewCards, poker.FormatCards(c.Settle.NewCards, ","))
		winners := make([]string, len(c.Settle.PotWinners))
		for i, pw := range c.Settle.PotWinners {
			winners[i] = fmt.Sprintf("(Pot %d,%d,%d,[%s])", pw.PotID, pw.Amount, pw.BestRank, joinInts(pw.Winners, ","))
		}
		fmt.Fprintf(bw, "%s: %s\n", keyWinners, strings.Join(winners, ";"))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("pgn: write: %w", err)
	}
	return nil
}

// EncodeToString renders h as Encode would write it.
func EncodeToString(h *game.History) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, h); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writePrehand(w *bufio.Writer, pre *game.PrehandHistory) {
	hands := make([]string, len(pre.PlayerCards))
	for i, cards := range pre.PlayerCards {
		hands[i] = "[" + poker.FormatCards(cards, " ") + "]"
	}
	fmt.Fprintf(w, "%s: %d\n", keyBigBlind, pre.BigBlind)
	fmt.Fprintf(w, "%s: %d\n", keySmallBlind, pre.SmallBlind)
	fmt.Fprintf(w, "%s: %s\n", keyPlayerChips, joinInts(pre.PlayerChips, ","))
	fmt.Fprintf(w, "%s: %s\n", keyPlayerCards, strings.Join(hands, ","))
}

// writeRound groups actions into orbits. An action belongs to orbit N when
// N is the largest number of actions any one player has taken so far this
// round, counting the action itself.
func writeRound(w *bufio.Writer, r *game.BettingRoundHistory) {
	fmt.Fprintf(w, "%s: [%s]\n", keyNewCards, poker.FormatCards(r.NewCards, ","))

	counts := make(map[int]int)
	orbit, top := 0, 0
	var line []string
	flush := func() {
		if len(line) > 0 {
			fmt.Fprintf(w, "%d. %s\n", orbit, strings.Join(line, ";"))
			line = line[:0]
		}
	}
	for _, a := range r.Actions {
		counts[a.PlayerID]++
		top = max(top, counts[a.PlayerID])
		if top != orbit {
			flush()
			orbit = top
		}
		line = append(line, formatAction(a))
	}
	flush()
}

func formatAction(a game.PlayerAction) string {
	if a.Value > 0 {
		return fmt.Sprintf("(%d,%s,%d)", a.PlayerID, a.Action, a.Value)
	}
	return fmt.Sprintf("(%d,%s)", a.PlayerID, a.Action)
}

func joinInts(vals []int, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
