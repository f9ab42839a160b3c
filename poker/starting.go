package poker

// StartingHand is a coarse preflop strength bucket for two hole cards.
type StartingHand uint8

const (
	Trash StartingHand = iota
	Weak
	Medium
	Strong
	Premium
)

func (s StartingHand) String() string {
	switch s {
	case Premium:
		return "Premium"
	case Strong:
		return "Strong"
	case Medium:
		return "Medium"
	case Weak:
		return "Weak"
	default:
		return "Trash"
	}
}

// ClassifyStartingHand buckets hole cards:
//
//	Premium  JJ+, AK
//	Strong   TT, AQ, AJ
//	Medium   77-99, suited broadway
//	Weak     22-66, suited cards at most two ranks apart
//	Trash    everything else
func ClassifyStartingHand(a, b Card) StartingHand {
	hi, lo := a.Rank(), b.Rank()
	if lo > hi {
		hi, lo = lo, hi
	}
	pair := hi == lo
	suited := a.Suit() == b.Suit()

	switch {
	case pair && lo >= Jack, hi == Ace && lo == King:
		return Premium
	case pair && lo == Ten, hi == Ace && (lo == Queen || lo == Jack):
		return Strong
	case pair && lo >= Seven, suited && lo >= Ten:
		return Medium
	case pair, suited && hi-lo <= 2:
		return Weak
	default:
		return Trash
	}
}
