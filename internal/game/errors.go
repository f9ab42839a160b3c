package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAction is wrapped by every InvalidActionError.
	ErrInvalidAction = errors.New("invalid action")
	// ErrHandRunning is returned when a hand is started while one is in progress.
	ErrHandRunning = errors.New("hand already running")
	// ErrNoHandRunning is returned for actions taken between hands.
	ErrNoHandRunning = errors.New("no hand running")
	// ErrNotEnoughPlayers is returned when fewer than two seats have chips.
	ErrNotEnoughPlayers = errors.New("not enough players with chips")
	// ErrTableFull is returned when a table cannot seat the requested players.
	ErrTableFull = errors.New("table full")
)

// InvalidActionError describes a rejected move. The game state is unchanged
// when it is returned.
type InvalidActionError struct {
	Player int
	Action ActionType
	Amount int
	Reason string

	cause error
}

func (e *InvalidActionError) Error() string {
	if e.Action == Raise {
		return fmt.Sprintf("player %d cannot %s to %d: %s", e.Player, e.Action, e.Amount, e.Reason)
	}
	return fmt.Sprintf("player %d cannot %s: %s", e.Player, e.Action, e.Reason)
}

func (e *InvalidActionError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrInvalidAction, e.cause}
	}
	return []error{ErrInvalidAction}
}

func invalidAction(player int, action ActionType, amount int, format string, args ...any) *InvalidActionError {
	return &InvalidActionError{
		Player: player,
		Action: action,
		Amount: amount,
		Reason: fmt.Sprintf(format, args...),
	}
}

// invariant aborts on internal bookkeeping errors. These indicate a bug in
// the engine rather than bad input.
func invariant(ok bool, format string, args ...any) {
	if !ok {
		panic("invariant violation: " + fmt.Sprintf(format, args...))
	}
}
