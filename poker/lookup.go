package poker

import "sync"

// Upper bounds (inclusive) of each hand class in the 1..7462 rank space.
const (
	MaxStraightFlush HandRank = 10
	MaxFourOfAKind   HandRank = 166
	MaxFullHouse     HandRank = 322
	MaxFlush         HandRank = 1599
	MaxStraight      HandRank = 1609
	MaxThreeOfAKind  HandRank = 2467
	MaxTwoPair       HandRank = 3325
	MaxPair          HandRank = 6185
	MaxHighCard      HandRank = 7462
)

// straightPatterns lists the ten straights as rank bit patterns, ace high first
// and the wheel (A-2-3-4-5) last.
var straightPatterns = [10]uint16{
	0b1111100000000,
	0b0111110000000,
	0b0011111000000,
	0b0001111100000,
	0b0000111110000,
	0b0000011111000,
	0b0000001111100,
	0b0000000111110,
	0b0000000011111,
	0b1000000001111,
}

type lookupTables struct {
	flush    map[uint32]HandRank
	unsuited map[uint32]HandRank
}

var (
	tablesOnce sync.Once
	tables     *lookupTables
)

func lookup() *lookupTables {
	tablesOnce.Do(func() {
		t := &lookupTables{
			flush:    make(map[uint32]HandRank, 1287),
			unsuited: make(map[uint32]HandRank, 6175),
		}
		t.buildFlushes()
		t.buildMultiples()
		tables = t
	})
	return tables
}

// nextBitPermutation returns the lexicographically next integer with the
// same number of set bits.
func nextBitPermutation(v uint32) uint32 {
	t := (v | (v - 1)) + 1
	return t | ((((t & -t) / (v & -v)) >> 1) - 1)
}

// buildFlushes fills the straight flush, flush, straight and high card
// ranges. Every 5-of-13 rank pattern that is not a straight is a flush when
// suited and a high card otherwise; both rank by pattern magnitude.
func (t *lookupTables) buildFlushes() {
	isStraight := make(map[uint16]bool, len(straightPatterns))
	for _, p := range straightPatterns {
		isStraight[p] = true
	}

	patterns := make([]uint16, 0, 1277)
	v := uint32(0b11111)
	for v < 1<<13 {
		if !isStraight[uint16(v)] {
			patterns = append(patterns, uint16(v))
		}
		v = nextBitPermutation(v)
	}

	for i, p := range straightPatterns {
		key := PrimeProductFromRankBits(p)
		t.flush[key] = HandRank(1 + i)
		t.unsuited[key] = MaxFlush + 1 + HandRank(i)
	}

	for i := range patterns {
		p := patterns[len(patterns)-1-i]
		key := PrimeProductFromRankBits(p)
		t.flush[key] = MaxFullHouse + 1 + HandRank(i)
		t.unsuited[key] = MaxPair + 1 + HandRank(i)
	}
}

// buildMultiples fills the ranges for hands with repeated ranks, strongest
// first within each class.
func (t *lookupTables) buildMultiples() {
	ranks := make([]int, 0, 13)
	for r := 12; r >= 0; r-- {
		ranks = append(ranks, r)
	}
	p := Primes

	rank := MaxStraightFlush + 1
	for _, quad := range ranks {
		for _, k := range without(ranks, quad) {
			t.unsuited[p[quad]*p[quad]*p[quad]*p[quad]*p[k]] = rank
			rank++
		}
	}

	rank = MaxFourOfAKind + 1
	for _, trip := range ranks {
		for _, pair := range without(ranks, trip) {
			t.unsuited[p[trip]*p[trip]*p[trip]*p[pair]*p[pair]] = rank
			rank++
		}
	}

	rank = MaxStraight + 1
	for _, trip := range ranks {
		for _, ks := range combinations(without(ranks, trip), 2) {
			t.unsuited[p[trip]*p[trip]*p[trip]*p[ks[0]]*p[ks[1]]] = rank
			rank++
		}
	}

	rank = MaxThreeOfAKind + 1
	for _, pairs := range combinations(ranks, 2) {
		hi, lo := pairs[0], pairs[1]
		for _, k := range without(ranks, hi, lo) {
			t.unsuited[p[hi]*p[hi]*p[lo]*p[lo]*p[k]] = rank
			rank++
		}
	}

	rank = MaxTwoPair + 1
	for _, pair := range ranks {
		for _, ks := range combinations(without(ranks, pair), 3) {
			t.unsuited[p[pair]*p[pair]*p[ks[0]]*p[ks[1]]*p[ks[2]]] = rank
			rank++
		}
	}
}

func without(ranks []int, exclude ...int) []int {
	out := make([]int, 0, len(ranks))
outer:
	for _, r := range ranks {
		for _, e := range exclude {
			if r == e {
				continue outer
			}
		}
		out = append(out, r)
	}
	return out
}

// combinations returns the k-element combinations of items, preserving the
// order of items within and across combinations.
func combinations(items []int, k int) [][]int {
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for k <= len(items) {
		combo := make([]int, k)
		for i, j := range idx {
			combo[i] = items[j]
		}
		out = append(out, combo)

		i := k - 1
		for i >= 0 && idx[i] == len(items)-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}
