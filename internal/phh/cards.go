package phh

import (
	"strings"

	"github.com/lox/holdem/poker"
)

const hiddenCard = "??"

// FormatCards writes cards back to back as PHH expects, e.g. "AhKh".
func FormatCards(cards []poker.Card) string {
	var sb strings.Builder
	for _, c := range cards {
		sb.WriteString(c.String())
	}
	return sb.String()
}

func hiddenCards(n int) string {
	return strings.Repeat(hiddenCard, n)
}
