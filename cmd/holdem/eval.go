package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/holdem/internal/display"
	"github.com/lox/holdem/poker"
)

// EvalCmd ranks two hole cards plus three to five board cards.
type EvalCmd struct {
	Cards []string `arg:"" name:"cards" help:"Hole cards then board, e.g. Ah Kh Qh Jh Th"`
}

func (cmd *EvalCmd) Run() error {
	return cmd.run(os.Stdout)
}

func (cmd *EvalCmd) run(w io.Writer) error {
	cards, err := poker.ParseCards(strings.Join(cmd.Cards, " "))
	if err != nil {
		return err
	}
	if len(cards) < 2 {
		return errors.New("eval: need two hole cards")
	}
	hole, board := cards[:2], cards[2:]

	styles := display.DefaultStyles()
	fmt.Fprintf(w, "%s %s\n", styles.HandInfo.Render("Hole: "), styles.Cards(hole))
	fmt.Fprintf(w, "%s %s\n", styles.HandInfo.Render("Board:"), styles.Cards(board))
	fmt.Fprintf(w, "Starting hand: %s\n", poker.ClassifyStartingHand(hole[0], hole[1]))

	rank, err := poker.Evaluate(hole, board)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Rank: %d of %d\n", rank, poker.MaxHighCard)
	fmt.Fprintf(w, "Class: %s\n", rank.Class())
	fmt.Fprintf(w, "Hand: %s\n", rank.Describe(cards))
	fmt.Fprintf(w, "Percentile: %.1f%%\n", poker.RankPercentage(rank)*100)
	return nil
}
