package game

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// Option configures a Game during creation.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	button int
	chips  []int
	logger zerolog.Logger
}

// WithRNG sets the random source used to shuffle every hand's deck.
func WithRNG(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithButton sets the seat that held the button before the first hand.
// StartHand moves the button to the next seat with chips.
func WithButton(seat int) Option {
	return func(c *config) {
		c.button = seat
	}
}

// WithChips sets individual starting stacks instead of the buy-in.
// A zero stack leaves the seat empty.
func WithChips(chips []int) Option {
	return func(c *config) {
		c.chips = append([]int(nil), chips...)
	}
}

// WithLogger sets the logger for hand progress. The default discards output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
