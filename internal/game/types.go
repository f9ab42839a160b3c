package game

import (
	"fmt"
	"strings"
)

// PlayerState is a seat's standing in the current hand.
type PlayerState int

const (
	// Out has folded this hand.
	Out PlayerState = iota
	// Skip has no chips and is not dealt in.
	Skip
	// ToCall owes chips before the betting round can end.
	ToCall
	// In has matched the current bet.
	In
	// PlayerAllIn has committed every chip and takes no further actions.
	PlayerAllIn
)

func (s PlayerState) String() string {
	switch s {
	case Out:
		return "OUT"
	case Skip:
		return "SKIP"
	case ToCall:
		return "TO_CALL"
	case In:
		return "IN"
	case PlayerAllIn:
		return "ALL_IN"
	default:
		return fmt.Sprintf("PlayerState(%d)", int(s))
	}
}

// HandPhase is a stage of a single hand. Phases cycle
// PREHAND, PREFLOP, FLOP, TURN, RIVER, SETTLE, PREHAND.
type HandPhase int

const (
	Prehand HandPhase = iota
	Preflop
	Flop
	Turn
	River
	Settle
)

var phaseNames = [...]string{"PREHAND", "PREFLOP", "FLOP", "TURN", "RIVER", "SETTLE"}

// HandPhases lists every phase in play order.
var HandPhases = [...]HandPhase{Prehand, Preflop, Flop, Turn, River, Settle}

func (p HandPhase) String() string {
	if p < Prehand || p > Settle {
		return fmt.Sprintf("HandPhase(%d)", int(p))
	}
	return phaseNames[p]
}

// NewCards is the number of community cards revealed when the phase starts.
func (p HandPhase) NewCards() int {
	switch p {
	case Flop:
		return 3
	case Turn, River:
		return 1
	default:
		return 0
	}
}

// Next returns the phase that follows p.
func (p HandPhase) Next() HandPhase {
	if p == Settle {
		return Prehand
	}
	return p + 1
}

// IsBettingRound reports whether players act during p.
func (p HandPhase) IsBettingRound() bool {
	return p >= Preflop && p <= River
}

// ParseHandPhase accepts the upper-case phase names used in history files.
func ParseHandPhase(s string) (HandPhase, error) {
	for i, name := range phaseNames {
		if s == name {
			return HandPhase(i), nil
		}
	}
	return 0, fmt.Errorf("unknown hand phase %q", s)
}

// ActionType is a move a player can make on their turn.
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Raise
	AllIn
)

var actionNames = [...]string{"FOLD", "CHECK", "CALL", "RAISE", "ALL_IN"}

func (a ActionType) String() string {
	if a < Fold || a > AllIn {
		return fmt.Sprintf("ActionType(%d)", int(a))
	}
	return actionNames[a]
}

// ParseActionType accepts FOLD, CHECK, CALL, RAISE and ALL_IN in any case.
func ParseActionType(s string) (ActionType, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range actionNames {
		if up == name {
			return ActionType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// RaiseByToTotal converts a "raise by" amount into the "raise to" total
// used by TakeAction, given the largest bet this round.
func RaiseByToTotal(level, raiseBy int) int {
	return level + raiseBy
}

// TotalToRaiseBy is the inverse of RaiseByToTotal.
func TotalToRaiseBy(level, total int) int {
	return total - level
}
