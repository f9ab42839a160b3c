package poker

import (
	"errors"
	"math/rand/v2"
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/internal/randutil"
)

func testRNG(seed int64) *rand.Rand {
	return randutil.New(seed)
}

func mustCards(t *testing.T, s string) []Card {
	t.Helper()
	cards, err := ParseCards(s)
	require.NoError(t, err)
	return cards
}

func TestLookupTablesAreComplete(t *testing.T) {
	t.Parallel()

	tbl := lookup()
	assert.Len(t, tbl.flush, 1287)
	assert.Len(t, tbl.unsuited, 6175)

	seen := make(map[HandRank]bool, int(MaxHighCard))
	for _, r := range tbl.flush {
		seen[r] = true
	}
	for _, r := range tbl.unsuited {
		assert.False(t, seen[r], "rank %d assigned twice", r)
		seen[r] = true
	}
	for r := HandRank(1); r <= MaxHighCard; r++ {
		assert.True(t, seen[r], "rank %d missing", r)
	}
}

func TestEvaluateFiveKnownHands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cards string
		want  HandRank
		class HandClass
	}{
		{"As Ks Qs Js Ts", 1, StraightFlush},
		{"Kh Qh Jh Th 9h", 2, StraightFlush},
		{"5d 4d 3d 2d Ad", 10, StraightFlush},
		{"Ac Ad Ah As Kd", 11, FourOfAKind},
		{"2c 2d 2h 2s 3d", 166, FourOfAKind},
		{"Ac Ad Ah Ks Kd", 167, FullHouse},
		{"2c 2d 2h 3s 3d", 322, FullHouse},
		{"Ah Kh Qh Jh 9h", 323, Flush},
		{"7c 5c 4c 3c 2c", 1599, Flush},
		{"Ah Kd Qh Jc Ts", 1600, Straight},
		{"5h 4d 3h 2c As", 1609, Straight},
		{"Ah Ad Ac Kc Qs", 1610, ThreeOfAKind},
		{"Ah Ad Kc Kh Qs", 2468, TwoPair},
		{"Ah Ad Kc Qh Js", 3326, Pair},
		{"Ah Kd Qc Jh 9s", 6186, HighCard},
		{"7h 5d 4c 3h 2s", 7462, HighCard},
	}
	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			t.Parallel()
			cards := mustCards(t, tt.cards)
			got := EvaluateFive([5]Card(cards))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.class, got.Class())
		})
	}
}

func TestRankToString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Royal Flush", RankToString(1))
	assert.Equal(t, "Straight Flush", RankToString(2))
	assert.Equal(t, "Straight Flush", RankToString(10))
	assert.Equal(t, "Four of a Kind", RankToString(11))
	assert.Equal(t, "Full House", RankToString(322))
	assert.Equal(t, "Flush", RankToString(323))
	assert.Equal(t, "Straight", RankToString(1609))
	assert.Equal(t, "Three of a Kind", RankToString(1610))
	assert.Equal(t, "Two Pair", RankToString(3325))
	assert.Equal(t, "Pair", RankToString(3326))
	assert.Equal(t, "High Card", RankToString(7462))
	assert.Equal(t, "Unknown", RankToString(0))
	assert.Equal(t, "Unknown", RankToString(7463))
}

func TestRankPercentage(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1-1.0/7462, RankPercentage(1), 1e-12)
	assert.InDelta(t, 0, RankPercentage(7462), 1e-12)
}

func TestEvaluateSevenCards(t *testing.T) {
	t.Parallel()

	rank, err := Evaluate(mustCards(t, "As Ks"), mustCards(t, "Qs Js Ts 2d 3c"))
	require.NoError(t, err)
	assert.Equal(t, HandRank(1), rank)

	// board plays: the hole cards do not improve a board straight
	rank, err = Evaluate(mustCards(t, "2c 2d"), mustCards(t, "9h Td Jc Qs Kh"))
	require.NoError(t, err)
	assert.Equal(t, HandRank(1601), rank)

	rank, err = Evaluate(mustCards(t, "Ah Ad"), mustCards(t, "Ac Kd Ks 7h"))
	require.NoError(t, err)
	assert.Equal(t, FullHouse, rank.Class())
}

func TestEvaluateInvalid(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		hole, board string
	}{
		"too few":   {"As Kd", "2c 3c"},
		"too many":  {"As Kd", "2c 3c 4c 5c 6c 7c"},
		"duplicate": {"As As", "2c 3c 4c"},
	}
	for name, tt := range tests {
		_, err := Evaluate(mustCards(t, tt.hole), mustCards(t, tt.board))
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrInvalidHand), name)
		var ihe *InvalidHandError
		assert.ErrorAs(t, err, &ihe, name)
	}

	_, err := Evaluate([]Card{0, 1, 2, 3, 4}, nil)
	assert.ErrorIs(t, err, ErrInvalidHand)
}

// Every stronger class beats every weaker class across all 5-card
// combinations of a sampled deck.
func TestClassMonotonicity(t *testing.T) {
	t.Parallel()

	rng := testRNG(3)
	for range 2000 {
		cards := NewDeck(rng).Cards()[:5]
		r := EvaluateFive([5]Card(cards))
		require.GreaterOrEqual(t, int(r), 1)
		require.LessOrEqual(t, r, MaxHighCard)
		c := r.Class()
		if c > StraightFlush {
			assert.Greater(t, r, classBounds[c-2])
		}
		assert.LessOrEqual(t, r, classBounds[c-1])
	}
}

func toOracle(t *testing.T, c Card) ph.Card {
	t.Helper()
	var s ph.Suit
	switch c.Suit() {
	case Spades:
		s = ph.Spade
	case Hearts:
		s = ph.Heart
	case Diamonds:
		s = ph.Diamond
	default:
		s = ph.Club
	}
	r := ph.Rank(c.Rank() + 2)
	if c.Rank() == Ace {
		r = ph.Rank(1)
	}
	pc, err := ph.MakeCard(s, r)
	require.NoError(t, err)
	return pc
}

// The ordering of random 7-card hands must agree with an independent
// evaluator, which scores stronger hands higher.
func TestEvaluateAgreesWithOracle(t *testing.T) {
	t.Parallel()

	rng := testRNG(11)
	type sample struct {
		ours   HandRank
		oracle int16
	}
	samples := make([]sample, 0, 400)
	for range 400 {
		cards := NewDeck(rng).Cards()[:7]
		ours, err := Evaluate(cards[:2], cards[2:])
		require.NoError(t, err)

		var seven [7]ph.Card
		for i, c := range cards {
			seven[i] = toOracle(t, c)
		}
		samples = append(samples, sample{ours: ours, oracle: ph.Eval7(&seven)})
	}

	for i := 1; i < len(samples); i++ {
		a, b := samples[i-1], samples[i]
		switch {
		case a.ours < b.ours:
			assert.Greater(t, a.oracle, b.oracle)
		case a.ours > b.ours:
			assert.Less(t, a.oracle, b.oracle)
		default:
			assert.Equal(t, a.oracle, b.oracle)
		}
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cards string
		want  string
	}{
		{"As Ks Qs Js Ts 2d 3c", "Royal Flush"},
		{"9h 8h 7h 6h 5h", "Straight Flush, Nine High"},
		{"5d 4d 3d 2d Ad", "Straight Flush, Five High"},
		{"Kc Kd Kh Ks 2d", "Four of a Kind, Kings"},
		{"Kc Kd Kh 2s 2d", "Full House, Kings over Twos"},
		{"Kh 9h 7h 4h 2h Ac", "Flush, King High"},
		{"5h 4d 3h 2c As", "Straight, Five High"},
		{"7c 7d 7h Ks 2d", "Three of a Kind, Sevens"},
		{"Ac Ad 9h 9s 2d", "Two Pair, Aces and Nines"},
		{"Tc Td 9h 4s 2d", "Pair of Tens"},
		{"Ac Jd 9h 4s 2d", "High Card, Ace"},
	}
	for _, tt := range tests {
		cards := mustCards(t, tt.cards)
		rank, err := Evaluate(cards, nil)
		require.NoError(t, err)
		assert.Equal(t, tt.want, rank.Describe(cards), tt.cards)
	}

	assert.Equal(t, "Pair", HandRank(4000).Describe(nil))
}

func TestCompareHands(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, CompareHands(1, 2))
	assert.Equal(t, -1, CompareHands(7462, 11))
	assert.Equal(t, 0, CompareHands(300, 300))
}
