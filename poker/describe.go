package poker

import (
	"fmt"
	"slices"
)

var rankNames = [13]string{"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace"}

var rankPlurals = [13]string{"Twos", "Threes", "Fours", "Fives", "Sixes", "Sevens", "Eights", "Nines", "Tens", "Jacks", "Queens", "Kings", "Aces"}

// Describe returns a long-form description such as "Flush, King High" or
// "Full House, Kings over Twos". cards must be the 5-7 cards hr was
// evaluated from; otherwise only the class name is returned.
func (hr HandRank) Describe(cards []Card) string {
	var best []Card
	if validateHand(cards) == nil {
		forEachFive(cards, func(five [5]Card) {
			if best == nil && EvaluateFive(five) == hr {
				best = five[:]
			}
		})
	}
	if best == nil {
		return hr.String()
	}

	// groups of equal rank ordered by size, then rank, both descending
	counts := make(map[uint8]int, 5)
	for _, c := range best {
		counts[c.Rank()]++
	}
	ranks := make([]uint8, 0, len(counts))
	for r := range counts {
		ranks = append(ranks, r)
	}
	slices.SortFunc(ranks, func(a, b uint8) int {
		if counts[a] != counts[b] {
			return counts[b] - counts[a]
		}
		return int(b) - int(a)
	})

	switch hr.Class() {
	case StraightFlush:
		if hr == 1 {
			return "Royal Flush"
		}
		return fmt.Sprintf("Straight Flush, %s High", rankNames[straightHigh(ranks)])
	case Straight:
		return fmt.Sprintf("Straight, %s High", rankNames[straightHigh(ranks)])
	case FourOfAKind:
		return "Four of a Kind, " + rankPlurals[ranks[0]]
	case FullHouse:
		return fmt.Sprintf("Full House, %s over %s", rankPlurals[ranks[0]], rankPlurals[ranks[1]])
	case Flush:
		return fmt.Sprintf("Flush, %s High", rankNames[ranks[0]])
	case ThreeOfAKind:
		return "Three of a Kind, " + rankPlurals[ranks[0]]
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", rankPlurals[ranks[0]], rankPlurals[ranks[1]])
	case Pair:
		return "Pair of " + rankPlurals[ranks[0]]
	default:
		return fmt.Sprintf("High Card, %s", rankNames[ranks[0]])
	}
}

// straightHigh takes distinct ranks sorted descending.
func straightHigh(ranks []uint8) uint8 {
	if ranks[0] == Ace && ranks[1] == Five {
		return Five
	}
	return ranks[0]
}
