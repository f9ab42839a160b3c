package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/holdem/internal/config"
	"github.com/lox/holdem/internal/display"
	"github.com/lox/holdem/internal/simulator"
)

// PlayCmd runs a simulation described by an HCL config file.
type PlayCmd struct {
	Config        string `short:"c" help:"HCL config file (defaults apply when missing)" default:"holdem.hcl" type:"path"`
	Hands         int    `short:"n" help:"Hands per table, overriding max_hands"`
	Tables        int    `short:"t" help:"Copies of each configured table" default:"1"`
	Seed          int64  `short:"s" help:"Random seed (0 picks one from the clock)"`
	Out           string `short:"o" help:"Directory for hand histories" type:"path"`
	PHH           bool   `name:"phh" help:"Also write a PHH session file per table"`
	HideHoleCards bool   `help:"Hide hole cards in PHH output"`
	Concurrency   int    `help:"Tables played at once (0 = GOMAXPROCS)"`
}

func (cmd *PlayCmd) Run(globals *Globals) error {
	logger := globals.Logger()
	ctx, stop := signalContext(context.Background())
	defer stop()

	err := cmd.run(ctx, os.Stdout, logger, quartz.NewReal())
	if ctx.Err() != nil {
		logger.Info().Msg("Received signal, shutting down gracefully")
	}
	return err
}

func (cmd *PlayCmd) run(ctx context.Context, w io.Writer, logger zerolog.Logger, clock quartz.Clock) error {
	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return err
	}

	sim := simulator.Config{
		Config:        cfg,
		Tables:        cmd.Tables,
		Hands:         cmd.Hands,
		Seed:          cmd.Seed,
		OutDir:        cmd.Out,
		PHH:           cmd.PHH,
		HideHoleCards: cmd.HideHoleCards,
		Concurrency:   cmd.Concurrency,
		Logger:        logger,
		Clock:         clock,
	}
	if out := cfg.Output; out != nil {
		if sim.OutDir == "" {
			sim.OutDir = out.Dir
		}
		sim.PHH = sim.PHH || out.PHH
		sim.HideHoleCards = sim.HideHoleCards || out.HideHoleCards
	}
	if sim.Seed == 0 {
		sim.Seed = clock.Now().UnixNano()
	}

	logger.Debug().Int64("seed", sim.Seed).Str("config", cmd.Config).Msg("Starting simulation")
	results, err := simulator.Run(ctx, sim)
	if err != nil {
		return err
	}

	styles := display.DefaultStyles()
	for _, r := range results {
		fmt.Fprint(w, styles.Summary(r.Name, r.Stats.Summaries()))
		simulator.PrintSummary(w, r)
		fmt.Fprintln(w)
	}
	if len(results) > 0 && results[0].Dir != "" {
		logger.Info().Str("dir", results[0].Dir).Msg("Hand histories written")
	}
	fmt.Fprintf(w, "Seed: %d\n", sim.Seed)
	return nil
}
