// Package statistics aggregates simulation results per seat.
package statistics

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/lox/holdem/internal/game"
)

// HandResult is the outcome of one hand at one table.
type HandResult struct {
	BigBlind int
	// Net chips won or lost by each seat.
	Net []int
	// Showdown is true when at least one pot was decided by comparing hands.
	Showdown bool
	// Pot is the total of every pot awarded.
	Pot int
	// Street is the last betting round dealt.
	Street game.HandPhase
}

// ResultFromHistory builds a result from a settled hand and the stacks
// after it.
func ResultFromHistory(h *game.History, finalChips []int) (HandResult, error) {
	if h == nil || h.Prehand == nil || h.Settle == nil {
		return HandResult{}, fmt.Errorf("statistics: hand is not settled")
	}
	start := h.Prehand.PlayerChips
	if len(start) != len(finalChips) {
		return HandResult{}, fmt.Errorf("statistics: %d final stacks for %d seats", len(finalChips), len(start))
	}
	r := HandResult{BigBlind: h.Prehand.BigBlind, Net: make([]int, len(start)), Street: game.Preflop}
	for seat := range start {
		r.Net[seat] = finalChips[seat] - start[seat]
	}
	for _, w := range h.Settle.PotWinners {
		r.Pot += w.Amount
		if w.BestRank >= 0 {
			r.Showdown = true
		}
	}
	for _, phase := range []game.HandPhase{game.Flop, game.Turn, game.River} {
		if h.Round(phase) != nil {
			r.Street = phase
		}
	}
	return r, nil
}

// Series is a sample of per-hand results in big blinds.
type Series []float64

// Mean returns the arithmetic mean of all results in big blinds per hand
func (s Series) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	return stat.Mean(s, nil)
}

// StdDev returns the sample standard deviation
func (s Series) StdDev() float64 {
	if len(s) < 2 {
		return 0
	}
	return stat.StdDev(s, nil)
}

// StdError returns the standard error of the mean
func (s Series) StdError() float64 {
	if len(s) == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(len(s)))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s Series) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Percentile returns the empirical quantile at p (0.0 to 1.0): the
// smallest sample with at least that fraction of samples at or below it.
func (s Series) Percentile(p float64) float64 {
	if len(s) == 0 {
		return 0
	}
	sorted := slices.Clone(s)
	slices.Sort(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Median returns the 50th percentile.
func (s Series) Median() float64 {
	return s.Percentile(0.5)
}

// SeatStats tracks one seat across hands.
type SeatStats struct {
	Seat            int
	Name            string
	Hands           int
	NetChips        int
	ShowdownWins    int
	NonShowdownWins int
	Results         Series
}

// Statistics aggregates results for every seat of a table layout.
type Statistics struct {
	Hands     int
	Showdowns int
	MaxPot    int
	Seats     []*SeatStats
	// Streets counts hands by the last betting round dealt.
	Streets map[game.HandPhase]int
}

// New tracks len(names) seats.
func New(names []string) *Statistics {
	s := &Statistics{Streets: make(map[game.HandPhase]int)}
	for i, name := range names {
		s.Seats = append(s.Seats, &SeatStats{Seat: i, Name: name})
	}
	return s
}

// Add incorporates a new hand result into the statistics
func (s *Statistics) Add(r HandResult) error {
	if len(r.Net) != len(s.Seats) {
		return fmt.Errorf("statistics: result has %d seats, tracking %d", len(r.Net), len(s.Seats))
	}
	if r.BigBlind <= 0 {
		return fmt.Errorf("statistics: big blind must be positive")
	}
	s.Hands++
	s.Streets[r.Street]++
	if r.Showdown {
		s.Showdowns++
	}
	s.MaxPot = max(s.MaxPot, r.Pot)

	for seat, net := range r.Net {
		st := s.Seats[seat]
		st.Hands++
		st.NetChips += net
		st.Results = append(st.Results, float64(net)/float64(r.BigBlind))
		if net > 0 {
			if r.Showdown {
				st.ShowdownWins++
			} else {
				st.NonShowdownWins++
			}
		}
	}
	return nil
}

// Merge folds another table's statistics into s. Both must track the same
// number of seats.
func (s *Statistics) Merge(o *Statistics) error {
	if len(o.Seats) != len(s.Seats) {
		return fmt.Errorf("statistics: cannot merge %d seats into %d", len(o.Seats), len(s.Seats))
	}
	s.Hands += o.Hands
	s.Showdowns += o.Showdowns
	s.MaxPot = max(s.MaxPot, o.MaxPot)
	for phase, n := range o.Streets {
		s.Streets[phase] += n
	}
	for i, st := range o.Seats {
		dst := s.Seats[i]
		dst.Hands += st.Hands
		dst.NetChips += st.NetChips
		dst.ShowdownWins += st.ShowdownWins
		dst.NonShowdownWins += st.NonShowdownWins
		dst.Results = append(dst.Results, st.Results...)
	}
	return nil
}

// Validate checks the books balance: chips are only moved between seats.
func (s *Statistics) Validate() error {
	net := 0
	for _, st := range s.Seats {
		net += st.NetChips
		if st.Hands != s.Hands {
			return fmt.Errorf("seat %d recorded %d hands of %d", st.Seat, st.Hands, s.Hands)
		}
		if len(st.Results) != st.Hands {
			return fmt.Errorf("seat %d has %d results for %d hands", st.Seat, len(st.Results), st.Hands)
		}
	}
	if net != 0 {
		return fmt.Errorf("ledger mismatch: seats net %d chips", net)
	}
	return nil
}

// Summary is a printable digest of one seat.
type Summary struct {
	Seat     int
	Name     string
	Hands    int
	NetChips int
	MeanBB   float64
	StdDevBB float64
	CILow    float64
	CIHigh   float64
	MedianBB float64
}

// Summaries digests every seat.
func (s *Statistics) Summaries() []Summary {
	out := make([]Summary, len(s.Seats))
	for i, st := range s.Seats {
		lo, hi := st.Results.ConfidenceInterval95()
		out[i] = Summary{
			Seat:     st.Seat,
			Name:     st.Name,
			Hands:    st.Hands,
			NetChips: st.NetChips,
			MeanBB:   st.Results.Mean(),
			StdDevBB: st.Results.StdDev(),
			CILow:    lo,
			CIHigh:   hi,
			MedianBB: st.Results.Median(),
		}
	}
	return out
}
