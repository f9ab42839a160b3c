package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/holdem/internal/display"
	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/pgn"
)

// ReplayCmd prints every intermediate state of a recorded hand.
type ReplayCmd struct {
	File  string   `arg:"" name:"file" help:"PGN hand history" type:"existingfile"`
	Names []string `help:"Player names in seat order" sep:","`
}

func (cmd *ReplayCmd) Run() error {
	return cmd.run(os.Stdout)
}

func (cmd *ReplayCmd) run(w io.Writer) error {
	h, err := pgn.Import(cmd.File)
	if err != nil {
		return err
	}

	var actions []game.PlayerAction
	for _, phase := range []game.HandPhase{game.Preflop, game.Flop, game.Turn, game.River} {
		if r := h.Round(phase); r != nil {
			actions = append(actions, r.Actions...)
		}
	}

	styles := display.DefaultStyles()
	step := 0
	for g, err := range game.Replay(h) {
		if err != nil {
			return err
		}
		fmt.Fprint(w, styles.State(g, cmd.Names))
		if step < len(actions) {
			fmt.Fprintf(w, "%s\n\n", styles.Actions.Render(display.Action(actions[step], cmd.Names)))
		}
		step++
	}
	fmt.Fprint(w, styles.Settlement(h, cmd.Names))
	return nil
}
