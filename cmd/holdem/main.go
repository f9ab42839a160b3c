package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" help:"Simulate games between built-in agents"`
	Replay  ReplayCmd        `cmd:"" help:"Step through a PGN hand history"`
	Convert ConvertCmd       `cmd:"" help:"Convert a PGN hand history to PHH"`
	Eval    EvalCmd          `cmd:"" help:"Rank a poker hand"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Texas Hold'em engine, simulator and hand history tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
