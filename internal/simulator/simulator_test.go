package simulator

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/internal/config"
	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/pgn"
	"github.com/lox/holdem/internal/phh"
)

func testConfig(table config.TableConfig, strategies ...string) *config.Config {
	cfg := &config.Config{Tables: []config.TableConfig{table}}
	for i, s := range strategies {
		cfg.Agents = append(cfg.Agents, config.AgentConfig{Name: string(rune('a' + i)), Strategy: s})
	}
	cfg.ApplyDefaults()
	return cfg
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func TestRunConservesChips(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Config: testConfig(config.TableConfig{Name: "main", MaxPlayers: 6, Buyin: 200, BigBlind: 10, MaxHands: 200},
			"random", "call", "tight"),
		Tables: 3,
		Seed:   42,
		Logger: zerolog.Nop(),
	}
	results, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, "main-"+string(rune('1'+i)), r.Name)
		assert.Equal(t, 1200, sum(r.FinalChips), r.Name)
		assert.Equal(t, r.Hands, r.Stats.Hands)
		require.NoError(t, r.Stats.Validate())
		assert.Equal(t, []string{"a", "b", "c", "a#2", "b#2", "c#2"}, r.Seats)
		if !r.Stopped {
			assert.Equal(t, 200, r.Hands)
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Config: testConfig(config.TableConfig{Name: "main", MaxPlayers: 4, Buyin: 300, BigBlind: 10, MaxHands: 100},
			"random", "tight"),
		Tables:      2,
		Seed:        7,
		Concurrency: 2,
		Logger:      zerolog.Nop(),
	}
	first, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	second, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].FinalChips, second[i].FinalChips)
		assert.Equal(t, first[i].Stats.Seats[0].Results, second[i].Stats.Seats[0].Results)
	}
	assert.NotEqual(t, first[0].Stats.Seats[0].Results, first[1].Stats.Seats[0].Results,
		"tables draw from different streams")
}

func TestRunExportsHands(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	clock.Set(time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC))
	out := t.TempDir()

	results, err := Run(context.Background(), Config{
		Config: testConfig(config.TableConfig{Name: "t", MaxPlayers: 3, Buyin: 100, BigBlind: 10, MaxHands: 5, Rebuy: true},
			"call", "random"),
		Hands:  4,
		Seed:   1,
		OutDir: out,
		PHH:    true,
		Logger: zerolog.Nop(),
		Clock:  clock,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	r := results[0]
	require.False(t, r.Stopped)
	require.Equal(t, 4, r.Hands, "Hands overrides max_hands")
	require.Len(t, r.Files, 5)
	assert.Equal(t, out, filepath.Dir(r.Dir))

	for i, file := range r.Files[:4] {
		assert.Equal(t, filepath.Join(r.Dir, "t-0000"+string(rune('1'+i))+".pgn"), file)
		h, err := pgn.Import(file)
		require.NoError(t, err)
		for _, err := range game.Replay(h) {
			require.NoError(t, err)
		}
	}

	data, err := os.ReadFile(r.Files[4])
	require.NoError(t, err)
	var session map[string]phh.HandHistory
	_, err = toml.Decode(string(data), &session)
	require.NoError(t, err)
	require.Len(t, session, 4)
	assert.Equal(t, "t", session["1"].Table)
	assert.Equal(t, 2025, session["1"].Year)
}

func TestRunStopsWhenOnePlayerRemains(t *testing.T) {
	t.Parallel()

	results, err := Run(context.Background(), Config{
		Config: testConfig(config.TableConfig{Name: "hu", MaxPlayers: 2, Buyin: 20, BigBlind: 10, MaxHands: 10_000},
			"random"),
		Seed:   3,
		Logger: zerolog.Nop(),
	})
	require.NoError(t, err)
	r := results[0]
	assert.True(t, r.Stopped)
	assert.Less(t, r.Hands, 10_000)
	assert.ElementsMatch(t, []int{0, 40}, r.FinalChips)
}

func TestRunRebuy(t *testing.T) {
	t.Parallel()

	results, err := Run(context.Background(), Config{
		Config: testConfig(config.TableConfig{Name: "r", MaxPlayers: 3, Buyin: 20, BigBlind: 10, MaxHands: 300, Rebuy: true},
			"random"),
		Seed:   5,
		Logger: zerolog.Nop(),
	})
	require.NoError(t, err)
	r := results[0]
	assert.False(t, r.Stopped)
	assert.Equal(t, 300, r.Hands)
	assert.Positive(t, r.Rebuys)
	assert.Equal(t, 20*(3+r.Rebuys), sum(r.FinalChips))
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), Config{Logger: zerolog.Nop()})
	require.Error(t, err)

	bad := config.Default()
	bad.Agents[0].Strategy = "shark"
	_, err = Run(context.Background(), Config{Config: bad, Logger: zerolog.Nop()})
	require.ErrorContains(t, err, "invalid strategy")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, Config{Config: config.Default(), Logger: zerolog.Nop()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPrintSummary(t *testing.T) {
	t.Parallel()

	results, err := Run(context.Background(), Config{
		Config: testConfig(config.TableConfig{Name: "main", MaxPlayers: 3, Buyin: 500, BigBlind: 10, MaxHands: 20},
			"call", "tight"),
		Seed:   11,
		Logger: zerolog.Nop(),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintSummary(&buf, results[0])
	out := buf.String()
	assert.Contains(t, out, "=== TABLE main ===")
	assert.Contains(t, out, "Hands played: 20")
	assert.Contains(t, out, "PREFLOP")
	assert.Equal(t, 3, strings.Count(out, "P95="))
}
