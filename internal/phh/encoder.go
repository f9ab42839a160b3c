package phh

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/lox/holdem/internal/game"
)

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeSession writes hands as a .phhs file: each hand is a TOML table
// headed by its 1-based section number, separated by blank lines.
func EncodeSession(w io.Writer, hands []*HandHistory) error {
	for i, hand := range hands {
		if _, err := fmt.Fprintf(w, "[%d]\n", i+1); err != nil {
			return err
		}
		if err := Encode(w, hand); err != nil {
			return err
		}
		if i < len(hands)-1 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatAction converts a recorded move to a PHH action string for the
// player at 0-based PHH index. All-ins that only call are written as calls.
func FormatAction(index int, a game.PlayerAction) string {
	player := fmt.Sprintf("p%d", index+1)
	switch a.Action {
	case game.Fold:
		return player + " f"
	case game.Check, game.Call:
		return player + " cc"
	case game.Raise:
		return fmt.Sprintf("%s cbr %d", player, a.Value)
	case game.AllIn:
		if a.Value > 0 {
			return fmt.Sprintf("%s cbr %d", player, a.Value)
		}
		return player + " cc"
	default:
		return fmt.Sprintf("# %s %s %d", player, a.Action, a.Value)
	}
}
