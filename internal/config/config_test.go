package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holdem.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
table "main" {
  max_players = 4
  buyin       = 500
  big_blind   = 10
  small_blind = 5
  max_hands   = 50
  rebuy       = true
}

table "short" {
  big_blind = 20
}

agent "alice" { strategy = "call" }
agent "bob" { strategy = "random" }
agent "dave" {}

output {
  dir = "hands"
  phh = true
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Len(t, cfg.Tables, 2)
	assert.Equal(t, TableConfig{
		Name: "main", MaxPlayers: 4, Buyin: 500, BigBlind: 10, SmallBlind: 5, MaxHands: 50, Rebuy: true,
	}, cfg.Tables[0])

	short := cfg.Table("short")
	require.NotNil(t, short)
	assert.Equal(t, DefaultMaxPlayers, short.MaxPlayers)
	assert.Equal(t, 10, short.SmallBlind)
	assert.Equal(t, 2000, short.Buyin)
	assert.Equal(t, DefaultMaxHands, short.MaxHands)
	assert.Nil(t, cfg.Table("nope"))

	require.Len(t, cfg.Agents, 3)
	assert.Equal(t, DefaultStrategy, cfg.Agents[2].Strategy)

	require.NotNil(t, cfg.Output)
	assert.Equal(t, "hands", cfg.Output.Dir)
	assert.True(t, cfg.Output.PHH)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, `table "main" {`))
	require.ErrorContains(t, err, "failed to parse HCL")

	_, err = Load(writeConfig(t, `table "main" { seats = 3 }`))
	require.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"no tables", func(c *Config) { c.Tables = nil }, "at least one table"},
		{"duplicate table", func(c *Config) { c.Tables = append(c.Tables, c.Tables[0]) }, "more than once"},
		{"zero small blind", func(c *Config) { c.Tables[0].SmallBlind = 0 }, "small blind must be positive"},
		{"inverted blinds", func(c *Config) { c.Tables[0].BigBlind = 1 }, "at least the small blind"},
		{"one seat", func(c *Config) { c.Tables[0].MaxPlayers = 1 }, "max players"},
		{"too many seats", func(c *Config) { c.Tables[0].MaxPlayers = 24 }, "max players"},
		{"tiny buyin", func(c *Config) { c.Tables[0].Buyin = 1 }, "buy-in"},
		{"negative hands", func(c *Config) { c.Tables[0].MaxHands = -1 }, "max hands"},
		{"no agents", func(c *Config) { c.Agents = nil }, "at least one agent"},
		{"bad strategy", func(c *Config) { c.Agents[0].Strategy = "shark" }, "invalid strategy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			require.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}

func TestSeating(t *testing.T) {
	t.Parallel()

	cfg := Default()
	seats := cfg.Seating(TableConfig{MaxPlayers: 5})
	require.Len(t, seats, 5)
	names := make([]string, len(seats))
	for i, s := range seats {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"alice", "bob", "carol", "alice", "bob"}, names)
}
