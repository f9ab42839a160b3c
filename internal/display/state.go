package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/poker"
)

// SeatName returns names[seat], or "seat N" when no name is known.
func SeatName(names []string, seat int) string {
	if seat >= 0 && seat < len(names) && names[seat] != "" {
		return names[seat]
	}
	return fmt.Sprintf("seat %d", seat)
}

// State renders a table snapshot: phase, board, pots and one row per seat.
// The player to act is marked with an arrow.
func (s *Styles) State(g *game.Game, names []string) string {
	var b strings.Builder

	b.WriteString(s.Header.Render(fmt.Sprintf("Hand %d · %s", g.NumHands(), g.HandPhase())))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", s.HandInfo.Render("Board:"), s.Cards(g.Board()))

	pots := g.Pots()
	parts := make([]string, len(pots))
	for i, p := range pots {
		label := "main"
		if i > 0 {
			label = fmt.Sprintf("side %d", i)
		}
		parts[i] = fmt.Sprintf("%s %d", label, p.Total)
	}
	fmt.Fprintf(&b, "%s %s\n", s.HandInfo.Render("Pots:"), strings.Join(parts, ", "))

	current := -1
	if g.IsHandRunning() {
		current = g.CurrentPlayer()
	}

	rows := make([][]string, 0, g.MaxPlayers())
	for _, p := range g.Players() {
		rows = append(rows, []string{
			marker(p.ID == current),
			strconv.Itoa(p.ID),
			SeatName(names, p.ID),
			position(g, p.ID),
			strconv.Itoa(p.Chips),
			strconv.Itoa(g.PlayerBetAmount(p.ID)),
			p.State.String(),
			s.Cards(g.Hand(p.ID)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.Border).
		Headers("", "SEAT", "PLAYER", "POS", "CHIPS", "BET", "STATE", "CARDS").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row != table.HeaderRow && row == current {
				return s.Actions
			}
			return lipgloss.NewStyle()
		})
	b.WriteString(t.String())
	b.WriteString("\n")

	if g.IsHandRunning() {
		fmt.Fprintf(&b, "%s %s to act: %s\n", s.Actions.Render("→"), SeatName(names, current), g.AvailableMoves())
	}
	return b.String()
}

func marker(current bool) string {
	if current {
		return "→"
	}
	return ""
}

func position(g *game.Game, seat int) string {
	var pos []string
	if seat == g.Button() {
		pos = append(pos, "D")
	}
	if seat == g.SmallBlindLoc() {
		pos = append(pos, "SB")
	}
	if seat == g.BigBlindLoc() {
		pos = append(pos, "BB")
	}
	return strings.Join(pos, "/")
}

// Action describes a recorded move, e.g. "bob raises to 40".
func Action(a game.PlayerAction, names []string) string {
	name := SeatName(names, a.PlayerID)
	switch a.Action {
	case game.Fold:
		return name + " folds"
	case game.Check:
		return name + " checks"
	case game.Call:
		return name + " calls"
	case game.Raise:
		return fmt.Sprintf("%s raises to %d", name, a.Value)
	case game.AllIn:
		return name + " goes all in"
	default:
		return fmt.Sprintf("%s %s %d", name, a.Action, a.Value)
	}
}

// Settlement lists who won each pot and with what.
func (s *Styles) Settlement(h *game.History, names []string) string {
	if h == nil || h.Settle == nil {
		return s.Warning.Render("hand not settled") + "\n"
	}
	board := h.Combined()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", s.HandInfo.Render("Final board:"), s.Cards(board))
	for _, w := range h.Settle.PotWinners {
		winners := make([]string, len(w.Winners))
		for i, id := range w.Winners {
			winners[i] = SeatName(names, id)
		}
		line := fmt.Sprintf("Pot %d: %d to %s", w.PotID, w.Amount, strings.Join(winners, ", "))
		if w.BestRank >= 0 && len(w.Winners) > 0 && h.Prehand != nil {
			hole := h.Prehand.PlayerCards[w.Winners[0]]
			cards := append(append([]poker.Card(nil), hole...), board...)
			line += fmt.Sprintf(" with %s", poker.HandRank(w.BestRank).Describe(cards))
		} else {
			line += " uncontested"
		}
		b.WriteString(s.Success.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
