package poker

import (
	"errors"
	"fmt"
	"sort"
)

// HandRank is the strength of a poker hand, from 1 (royal flush) to 7462
// (seven-five high). Lower values are stronger.
type HandRank uint16

// HandClass enumerates the nine hand categories, strongest first.
type HandClass uint8

const (
	StraightFlush HandClass = iota + 1
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	Pair
	HighCard
)

var classBounds = [...]HandRank{
	MaxStraightFlush,
	MaxFourOfAKind,
	MaxFullHouse,
	MaxFlush,
	MaxStraight,
	MaxThreeOfAKind,
	MaxTwoPair,
	MaxPair,
	MaxHighCard,
}

var classNames = [...]string{
	StraightFlush: "Straight Flush",
	FourOfAKind:   "Four of a Kind",
	FullHouse:     "Full House",
	Flush:         "Flush",
	Straight:      "Straight",
	ThreeOfAKind:  "Three of a Kind",
	TwoPair:       "Two Pair",
	Pair:          "Pair",
	HighCard:      "High Card",
}

func (c HandClass) String() string {
	if c < StraightFlush || c > HighCard {
		return "Unknown"
	}
	return classNames[c]
}

// ErrInvalidHand is wrapped by every InvalidHandError.
var ErrInvalidHand = errors.New("invalid hand")

// InvalidHandError reports a card set that cannot be evaluated.
type InvalidHandError struct {
	Cards  int
	Reason string
}

func (e *InvalidHandError) Error() string {
	return fmt.Sprintf("invalid hand of %d cards: %s", e.Cards, e.Reason)
}

func (e *InvalidHandError) Unwrap() error { return ErrInvalidHand }

// Class returns the category of the rank, found by binary search over the
// class upper bounds.
func (hr HandRank) Class() HandClass {
	i := sort.Search(len(classBounds), func(i int) bool { return hr <= classBounds[i] })
	return HandClass(i + 1)
}

// String returns "Royal Flush" for rank 1 and the class name otherwise.
func (hr HandRank) String() string {
	return RankToString(hr)
}

// RankToString maps a rank to its class name.
func RankToString(hr HandRank) string {
	if hr == 1 {
		return "Royal Flush"
	}
	if hr < 1 || hr > MaxHighCard {
		return "Unknown"
	}
	return hr.Class().String()
}

// RankPercentage returns 1 - rank/7462: 1 is close to the best hand, 0 the worst.
func RankPercentage(hr HandRank) float64 {
	return 1 - float64(hr)/float64(MaxHighCard)
}

// CompareHands returns 1 if a beats b, -1 if b beats a and 0 for a tie.
func CompareHands(a, b HandRank) int {
	switch {
	case a < b:
		return 1
	case a > b:
		return -1
	default:
		return 0
	}
}

// EvaluateFive ranks exactly five valid, distinct cards.
func EvaluateFive(cards [5]Card) HandRank {
	t := lookup()
	c0, c1, c2, c3, c4 := cards[0], cards[1], cards[2], cards[3], cards[4]
	if c0&c1&c2&c3&c4&0xF000 != 0 {
		bits := uint16((c0 | c1 | c2 | c3 | c4) >> 16)
		return t.flush[PrimeProductFromRankBits(bits)]
	}
	return t.unsuited[PrimeProduct(cards[:])]
}

// Evaluate ranks the best five-card hand that can be made from hole and
// board together. Between five and seven cards must be supplied.
func Evaluate(hole, board []Card) (HandRank, error) {
	cards := make([]Card, 0, len(hole)+len(board))
	cards = append(cards, hole...)
	cards = append(cards, board...)
	if err := validateHand(cards); err != nil {
		return 0, err
	}

	best := MaxHighCard
	forEachFive(cards, func(five [5]Card) {
		if r := EvaluateFive(five); r < best {
			best = r
		}
	})
	return best, nil
}

func validateHand(cards []Card) error {
	if len(cards) < 5 || len(cards) > 7 {
		return &InvalidHandError{Cards: len(cards), Reason: "need between 5 and 7 cards"}
	}
	seen := make(map[Card]bool, len(cards))
	for _, c := range cards {
		if !c.IsValid() {
			return &InvalidHandError{Cards: len(cards), Reason: fmt.Sprintf("malformed card %#x", uint32(c))}
		}
		if seen[c] {
			return &InvalidHandError{Cards: len(cards), Reason: "duplicate card " + c.String()}
		}
		seen[c] = true
	}
	return nil
}

// forEachFive calls fn with every five-card subset of cards.
func forEachFive(cards []Card, fn func([5]Card)) {
	n := len(cards)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						fn([5]Card{cards[a], cards[b], cards[c], cards[d], cards[e]})
					}
				}
			}
		}
	}
}
