package main

import (
	"io"
	"os"

	"github.com/lox/holdem/internal/fileutil"
	"github.com/lox/holdem/internal/pgn"
	"github.com/lox/holdem/internal/phh"
)

// ConvertCmd rewrites a PGN hand history as PHH TOML.
type ConvertCmd struct {
	File          string   `arg:"" name:"file" help:"PGN hand history" type:"existingfile"`
	Out           string   `short:"o" help:"Output file (stdout when empty)" type:"path"`
	Table         string   `help:"Table name recorded in the output" default:"default"`
	HandID        string   `name:"hand-id" help:"Hand id recorded in the output (random when empty)"`
	Players       []string `help:"Player names in seat order" sep:","`
	HideHoleCards bool     `help:"Replace hole cards with ????"`
}

func (cmd *ConvertCmd) Run() error {
	return cmd.run(os.Stdout)
}

func (cmd *ConvertCmd) run(w io.Writer) error {
	h, err := pgn.Import(cmd.File)
	if err != nil {
		return err
	}

	hand, err := phh.FromHistory(h, phh.Meta{
		Table:         cmd.Table,
		HandID:        cmd.HandID,
		Players:       cmd.Players,
		HideHoleCards: cmd.HideHoleCards,
	})
	if err != nil {
		return err
	}

	data, err := phh.EncodeToBytes(hand)
	if err != nil {
		return err
	}
	if cmd.Out == "" {
		_, err = w.Write(data)
		return err
	}
	return fileutil.WriteFileAtomic(cmd.Out, data, 0o644)
}
