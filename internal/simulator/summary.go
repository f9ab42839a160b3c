package simulator

import (
	"fmt"
	"io"

	"github.com/lox/holdem/internal/game"
)

// PrintSummary writes a plain text report of one table.
func PrintSummary(w io.Writer, r TableResult) {
	s := r.Stats
	fmt.Fprintf(w, "\n=== TABLE %s ===\n", r.Name)
	fmt.Fprintf(w, "Hands played: %d (blinds %d/%d, buy-in %d)\n", r.Hands, r.Config.SmallBlind, r.Config.BigBlind, r.Config.Buyin)
	if r.Rebuys > 0 {
		fmt.Fprintf(w, "Rebuys: %d\n", r.Rebuys)
	}
	if r.Stopped {
		fmt.Fprintf(w, "Game over: one player holds every chip\n")
	}
	if s == nil || s.Hands == 0 {
		return
	}

	fmt.Fprintf(w, "\n=== STREETS ===\n")
	for _, phase := range []game.HandPhase{game.Preflop, game.Flop, game.Turn, game.River} {
		n := s.Streets[phase]
		fmt.Fprintf(w, "%-8s %6d hands (%.1f%%)\n", phase, n, float64(n)/float64(s.Hands)*100)
	}
	fmt.Fprintf(w, "Showdowns: %d (%.1f%%)\n", s.Showdowns, float64(s.Showdowns)/float64(s.Hands)*100)

	fmt.Fprintf(w, "\n=== POT SIZE ANALYSIS ===\n")
	fmt.Fprintf(w, "Max pot observed: %d chips (%.1f bb)\n", s.MaxPot, float64(s.MaxPot)/float64(r.Config.BigBlind))

	fmt.Fprintf(w, "\n=== PERCENTILES (bb/hand) ===\n")
	for _, st := range s.Seats {
		fmt.Fprintf(w, "%-10s P5=%.2f P25=%.2f P50=%.2f P75=%.2f P95=%.2f\n", st.Name,
			st.Results.Percentile(0.05), st.Results.Percentile(0.25), st.Results.Median(),
			st.Results.Percentile(0.75), st.Results.Percentile(0.95))
	}
}
