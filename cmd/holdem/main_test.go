package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/internal/agent"
	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/pgn"
	"github.com/lox/holdem/internal/phh"
	"github.com/lox/holdem/internal/randutil"
	"github.com/lox/holdem/poker"
)

// exportHand plays one hand between call agents and writes it as PGN.
func exportHand(t *testing.T) string {
	t.Helper()
	g, err := game.New(100, 10, 5, 3, game.WithRNG(randutil.New(9)))
	require.NoError(t, err)
	require.NoError(t, g.StartHand())
	for g.IsHandRunning() {
		action, amount := agent.CallAgent{}.Act(g)
		require.NoError(t, g.TakeAction(action, amount))
	}
	file, err := pgn.Export(filepath.Join(t.TempDir(), "hand.pgn"), g.HandHistory())
	require.NoError(t, err)
	return file
}

func TestEval(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cmd := EvalCmd{Cards: []string{"Ah", "Kh", "Qh", "Jh", "Th"}}
	require.NoError(t, cmd.run(&buf))
	out := buf.String()
	assert.Contains(t, out, "Rank: 1 of 7462")
	assert.Contains(t, out, "Class: Straight Flush")
	assert.Contains(t, out, "Hand: Royal Flush")
	assert.Contains(t, out, "Starting hand: Premium")

	require.ErrorIs(t, (&EvalCmd{Cards: []string{"Ah", "Kh", "Qh"}}).run(&buf), poker.ErrInvalidHand)
	require.ErrorIs(t, (&EvalCmd{Cards: []string{"Zz"}}).run(&buf), poker.ErrParse)
	require.Error(t, (&EvalCmd{Cards: []string{"Ah"}}).run(&buf))
}

func TestReplay(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cmd := ReplayCmd{File: exportHand(t), Names: []string{"alice", "bob", "carol"}}
	require.NoError(t, cmd.run(&buf))
	out := buf.String()
	assert.Contains(t, out, "PREFLOP")
	assert.Contains(t, out, "calls")
	assert.Contains(t, out, "Final board:")
	assert.Contains(t, out, "Pot 0:")
}

func TestConvert(t *testing.T) {
	t.Parallel()

	src := exportHand(t)

	var buf bytes.Buffer
	cmd := ConvertCmd{File: src, Table: "main", HandID: "h1", Players: []string{"alice", "bob", "carol"}}
	require.NoError(t, cmd.run(&buf))
	var hand phh.HandHistory
	_, err := toml.Decode(buf.String(), &hand)
	require.NoError(t, err)
	assert.Equal(t, "NT", hand.Variant)
	assert.Equal(t, "main", hand.Table)
	assert.Equal(t, "h1", hand.HandID)
	assert.Len(t, hand.Players, 3)

	out := filepath.Join(t.TempDir(), "hand.toml")
	cmd.Out = out
	require.NoError(t, cmd.run(&buf))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `variant = "NT"`)
}

func TestPlay(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	config := filepath.Join(dir, "holdem.hcl")
	require.NoError(t, os.WriteFile(config, []byte(`
table "main" {
  max_players = 3
  big_blind   = 10
  max_hands   = 25
}
agent "alice" { strategy = "call" }
agent "bob" { strategy = "tight" }
output {
  dir = "`+filepath.ToSlash(filepath.Join(dir, "out"))+`"
  phh = true
}
`), 0o644))

	clock := quartz.NewMock(t)
	clock.Set(time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC))

	var buf bytes.Buffer
	cmd := PlayCmd{Config: config, Tables: 1}
	require.NoError(t, cmd.run(context.Background(), &buf, zerolog.Nop(), clock))
	out := buf.String()
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "alice#2")
	assert.Contains(t, out, "=== TABLE main ===")
	assert.Contains(t, out, "Seed: ")

	runs, err := os.ReadDir(filepath.Join(dir, "out"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	files, err := filepath.Glob(filepath.Join(dir, "out", runs[0].Name(), "main-*.pgn"))
	require.NoError(t, err)
	assert.NotEmpty(t, files)
	assert.FileExists(t, filepath.Join(dir, "out", runs[0].Name(), "main.phhs"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false, true)
	logger.Debug().Msg("hidden")
	logger.Info().Str("table", "main").Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"table":"main"`)

	buf.Reset()
	logger = newLogger(&buf, true, false)
	logger.Debug().Msg("debugging")
	assert.Contains(t, buf.String(), "debugging")
}

func TestSignalContext(t *testing.T) {
	ctx, stop := signalContext(context.Background())
	defer stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not cancelled by SIGTERM")
	}

	ctx, stop = signalContext(context.Background())
	stop()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
