// Package phh converts hand histories to the Poker Hand History (PHH) TOML
// format.
package phh

import (
	"time"

	"github.com/coder/quartz"
)

// HandHistory represents a single poker hand encoded in PHH format.
type HandHistory struct {
	Variant           string   `toml:"variant"`
	Table             string   `toml:"table,omitempty"`
	SeatCount         int      `toml:"seat_count,omitempty"`
	Seats             []int    `toml:"seats,omitempty"`
	Antes             []int    `toml:"antes"`
	BlindsOrStraddles []int    `toml:"blinds_or_straddles"`
	MinBet            int      `toml:"min_bet"`
	StartingStacks    []int    `toml:"starting_stacks"`
	FinishingStacks   []int    `toml:"finishing_stacks,omitempty"`
	Winnings          []int    `toml:"winnings,omitempty"`
	Actions           []string `toml:"actions"`
	Players           []string `toml:"players,omitempty"`
	HandID            string   `toml:"hand"`
	Time              string   `toml:"time,omitempty"`
	TimeZone          string   `toml:"time_zone,omitempty"`
	Day               int      `toml:"day,omitempty"`
	Month             int      `toml:"month,omitempty"`
	Year              int      `toml:"year,omitempty"`

	Timestamp time.Time `toml:"-"`
}

// Meta carries the details a game history does not record.
type Meta struct {
	// Table names the table; omitted when empty.
	Table string
	// HandID identifies the hand. A random UUID is used when empty.
	HandID string
	// Players names each seat, indexed like the history's stacks.
	Players []string
	// HideHoleCards writes ???? for every dealt hand.
	HideHoleCards bool
	// Clock stamps the time fields. Defaults to the wall clock.
	Clock quartz.Clock
}
