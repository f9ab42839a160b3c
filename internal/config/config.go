// Package config loads table and agent settings from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem/internal/agent"
	"github.com/lox/holdem/internal/game"
)

// Defaults applied to fields left out of a config file.
const (
	DefaultMaxPlayers = 6
	DefaultBuyin      = 500
	DefaultBigBlind   = 5
	DefaultSmallBlind = 2
	DefaultMaxHands   = 1000
	DefaultStrategy   = agent.StrategyCall
)

// Config represents a complete simulation configuration
type Config struct {
	Tables []TableConfig `hcl:"table,block"`
	Agents []AgentConfig `hcl:"agent,block"`
	Output *OutputConfig `hcl:"output,block"`
}

// TableConfig defines one table. Every table runs with the same agents.
type TableConfig struct {
	Name       string `hcl:"name,label"`
	MaxPlayers int    `hcl:"max_players,optional"`
	Buyin      int    `hcl:"buyin,optional"`
	BigBlind   int    `hcl:"big_blind,optional"`
	SmallBlind int    `hcl:"small_blind,optional"`
	MaxHands   int    `hcl:"max_hands,optional"`
	// Rebuy tops busted players back up to the buy-in between hands.
	Rebuy bool `hcl:"rebuy,optional"`
}

// AgentConfig names an automated player and its strategy
type AgentConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
}

// OutputConfig controls where hand histories are written
type OutputConfig struct {
	Dir           string `hcl:"dir,optional"`
	PHH           bool   `hcl:"phh,optional"`
	HideHoleCards bool   `hcl:"hide_hole_cards,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Tables: []TableConfig{
			{
				Name:       "main",
				MaxPlayers: DefaultMaxPlayers,
				Buyin:      DefaultBuyin,
				BigBlind:   DefaultBigBlind,
				SmallBlind: DefaultSmallBlind,
				MaxHands:   DefaultMaxHands,
			},
		},
		Agents: []AgentConfig{
			{Name: "alice", Strategy: agent.StrategyCall},
			{Name: "bob", Strategy: agent.StrategyRandom},
			{Name: "carol", Strategy: agent.StrategyTight},
		},
	}
}

// Load reads an HCL config file. A missing file yields Default().
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if len(c.Tables) == 0 {
		c.Tables = Default().Tables
	}
	for i := range c.Tables {
		t := &c.Tables[i]
		if t.MaxPlayers == 0 {
			t.MaxPlayers = DefaultMaxPlayers
		}
		if t.BigBlind == 0 && t.SmallBlind == 0 {
			t.BigBlind, t.SmallBlind = DefaultBigBlind, DefaultSmallBlind
		}
		if t.SmallBlind == 0 {
			t.SmallBlind = max(1, t.BigBlind/2)
		}
		if t.Buyin == 0 {
			t.Buyin = t.BigBlind * 100
		}
		if t.MaxHands == 0 {
			t.MaxHands = DefaultMaxHands
		}
	}

	if len(c.Agents) == 0 {
		c.Agents = Default().Agents
	}
	for i := range c.Agents {
		if c.Agents[i].Strategy == "" {
			c.Agents[i].Strategy = DefaultStrategy
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.Tables) == 0 {
		return fmt.Errorf("at least one table must be configured")
	}

	names := make(map[string]bool, len(c.Tables))
	for _, table := range c.Tables {
		if names[table.Name] {
			return fmt.Errorf("table %s: defined more than once", table.Name)
		}
		names[table.Name] = true

		if table.SmallBlind <= 0 {
			return fmt.Errorf("table %s: small blind must be positive", table.Name)
		}
		if table.BigBlind < table.SmallBlind {
			return fmt.Errorf("table %s: big blind must be at least the small blind", table.Name)
		}
		if table.MaxPlayers < 2 || table.MaxPlayers > game.MaxSeats {
			return fmt.Errorf("table %s: max players must be between 2 and %d", table.Name, game.MaxSeats)
		}
		if table.Buyin < table.BigBlind {
			return fmt.Errorf("table %s: buy-in must cover the big blind", table.Name)
		}
		if table.MaxHands < 0 {
			return fmt.Errorf("table %s: max hands must not be negative", table.Name)
		}
	}

	if len(c.Agents) == 0 {
		return fmt.Errorf("at least one agent must be configured")
	}
	for _, a := range c.Agents {
		if !agent.ValidStrategy(a.Strategy) {
			return fmt.Errorf("agent %s: invalid strategy %s", a.Name, a.Strategy)
		}
	}

	return nil
}

// Table returns a table configuration by name
func (c *Config) Table(name string) *TableConfig {
	for i := range c.Tables {
		if c.Tables[i].Name == name {
			return &c.Tables[i]
		}
	}
	return nil
}

// Seating assigns agents to a table's seats, cycling through the agent
// list when the table has more seats than agents.
func (c *Config) Seating(table TableConfig) []AgentConfig {
	if len(c.Agents) == 0 {
		return nil
	}
	seats := make([]AgentConfig, table.MaxPlayers)
	for i := range seats {
		seats[i] = c.Agents[i%len(c.Agents)]
	}
	return seats
}
