package poker

import (
	"errors"
	"fmt"
	"strings"
)

// Card is a playing card packed into 32 bits:
//
//	xxxbbbbb bbbbbbbb cdhsrrrr xxpppppp
//
// p is the prime of the rank (deuce=2 ... ace=41), r the rank (deuce=0 ... ace=12),
// cdhs a one-hot suit nibble and b a one-hot rank bit. The zero Card is invalid.
type Card uint32

// Ranks
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suits are one-hot so that ANDing suit nibbles detects flushes.
const (
	Spades   uint8 = 1
	Hearts   uint8 = 2
	Diamonds uint8 = 4
	Clubs    uint8 = 8
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "shdc"
)

// Primes holds the prime assigned to each rank. Products of up to five of
// them identify a multiset of ranks uniquely.
var Primes = [13]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// AllSuits lists suits in deck order.
var AllSuits = [4]uint8{Spades, Hearts, Diamonds, Clubs}

var (
	// ErrParse is returned (wrapped) for unparseable card or history text.
	ErrParse = errors.New("parse error")
	// ErrInvalidCard is returned for integers that are not a card encoding.
	ErrInvalidCard = errors.New("invalid card encoding")
)

// ParseError describes text that could not be parsed as a card.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse card %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// NewCard builds a card from a rank (0-12) and a one-hot suit.
func NewCard(rank, suit uint8) Card {
	prime := Primes[rank]
	bitRank := uint32(1) << rank << 16
	return Card(bitRank | uint32(suit)<<12 | uint32(rank)<<8 | prime)
}

// ParseCard parses two-character notation such as "As", "Td" or "2c".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, &ParseError{Input: s, Reason: "expected two characters"}
	}
	rank := strings.IndexByte(rankChars, s[0])
	if rank < 0 {
		return 0, &ParseError{Input: s, Reason: fmt.Sprintf("unknown rank %q", s[0])}
	}
	suitIdx := strings.IndexByte(suitChars, s[1])
	if suitIdx < 0 {
		return 0, &ParseError{Input: s, Reason: fmt.Sprintf("unknown suit %q", s[1])}
	}
	return NewCard(uint8(rank), AllSuits[suitIdx]), nil
}

// MustParseCard is ParseCard for literals known to be valid.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses whitespace or comma separated cards ("As Kd,7c").
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// NewCardFromInt restores a card from its integer encoding.
func NewCardFromInt(v uint32) (Card, error) {
	c := Card(v)
	if c.Rank() > Ace {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCard, v)
	}
	if c != NewCard(c.Rank(), c.Suit()) || !validSuit(c.Suit()) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCard, v)
	}
	return c, nil
}

func validSuit(s uint8) bool {
	return s == Spades || s == Hearts || s == Diamonds || s == Clubs
}

// Rank returns 0 (deuce) through 12 (ace).
func (c Card) Rank() uint8 { return uint8(c>>8) & 0xF }

// Suit returns the one-hot suit nibble.
func (c Card) Suit() uint8 { return uint8(c>>12) & 0xF }

// BitRank returns 1 << Rank().
func (c Card) BitRank() uint16 { return uint16(c>>16) & 0x1FFF }

// Prime returns the prime assigned to the card's rank.
func (c Card) Prime() uint32 { return uint32(c) & 0x3F }

// IsValid reports whether c is one of the 52 card encodings.
func (c Card) IsValid() bool {
	_, err := NewCardFromInt(uint32(c))
	return err == nil
}

func (c Card) String() string {
	if !c.IsValid() {
		return "??"
	}
	return string([]byte{rankChars[c.Rank()], suitChar(c.Suit())})
}

// PrettyString renders the card with a suit symbol, e.g. "K♦".
func (c Card) PrettyString() string {
	if !c.IsValid() {
		return "??"
	}
	var sym string
	switch c.Suit() {
	case Spades:
		sym = "♠"
	case Hearts:
		sym = "♥"
	case Diamonds:
		sym = "♦"
	default:
		sym = "♣"
	}
	return string(rankChars[c.Rank()]) + sym
}

func suitChar(s uint8) byte {
	switch s {
	case Spades:
		return 's'
	case Hearts:
		return 'h'
	case Diamonds:
		return 'd'
	default:
		return 'c'
	}
}

// PrimeProduct multiplies the rank primes of cards.
func PrimeProduct(cards []Card) uint32 {
	product := uint32(1)
	for _, c := range cards {
		product *= c.Prime()
	}
	return product
}

// PrimeProductFromRankBits multiplies the primes of every rank bit set in
// bits. Only meaningful for hands whose ranks are all distinct.
func PrimeProductFromRankBits(bits uint16) uint32 {
	product := uint32(1)
	for r := range uint8(13) {
		if bits&(1<<r) != 0 {
			product *= Primes[r]
		}
	}
	return product
}

// FormatCards joins cards with sep.
func FormatCards(cards []Card, sep string) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, sep)
}
