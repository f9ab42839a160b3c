// Package simulator plays whole games between agents, hand after hand,
// across any number of independent tables.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem/internal/agent"
	"github.com/lox/holdem/internal/config"
	"github.com/lox/holdem/internal/fileutil"
	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/pgn"
	"github.com/lox/holdem/internal/phh"
	"github.com/lox/holdem/internal/randutil"
	"github.com/lox/holdem/internal/statistics"
)

// MaxActions bounds a single hand. Reaching it means an agent and the
// engine disagree about when betting ends.
const MaxActions = 10_000

// Config holds configuration for running simulations
type Config struct {
	Config *config.Config
	// Tables is how many copies of every configured table to run. Zero
	// runs one of each.
	Tables int
	// Hands overrides each table's max_hands when positive.
	Hands int
	Seed  int64
	// OutDir receives one PGN file per hand under a fresh run directory.
	// Nothing is written when empty.
	OutDir        string
	PHH           bool
	HideHoleCards bool
	// Concurrency limits tables played at once. Zero uses GOMAXPROCS.
	Concurrency int
	Logger      zerolog.Logger
	Clock       quartz.Clock
}

// TableResult is the outcome of one table.
type TableResult struct {
	Name   string
	Config config.TableConfig
	Seats  []string
	Hands  int
	Rebuys int
	// Stopped is true when the game ended because fewer than two seats
	// had chips.
	Stopped    bool
	FinalChips []int
	Stats      *statistics.Statistics
	// Dir holds the table's exported hands, if any.
	Dir   string
	Files []string
}

type job struct {
	index int
	name  string
	table config.TableConfig
}

// Run plays every table to completion. Tables run concurrently and share
// nothing but the evaluator's lookup tables. The first table error cancels
// the rest.
func Run(ctx context.Context, cfg Config) ([]TableResult, error) {
	if cfg.Config == nil {
		return nil, errors.New("simulator: no configuration")
	}
	if err := cfg.Config.Validate(); err != nil {
		return nil, fmt.Errorf("simulator: %w", err)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}

	copies := max(cfg.Tables, 1)
	var jobs []job
	for _, t := range cfg.Config.Tables {
		if cfg.Hands > 0 {
			t.MaxHands = cfg.Hands
		}
		for i := range copies {
			name := t.Name
			if copies > 1 {
				name = fmt.Sprintf("%s-%d", t.Name, i+1)
			}
			jobs = append(jobs, job{index: len(jobs), name: name, table: t})
		}
	}

	runID := uuid.New()
	dir := ""
	if cfg.OutDir != "" {
		dir = filepath.Join(cfg.OutDir, runID.String())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("simulator: create output dir: %w", err)
		}
	}

	cfg.Logger.Info().
		Str("run", runID.String()).
		Int("tables", len(jobs)).
		Int64("seed", cfg.Seed).
		Msg("Simulation started")

	results := make([]TableResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	limit := cfg.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)

	for _, j := range jobs {
		g.Go(func() error {
			r, err := playTable(ctx, cfg, runID, dir, j)
			if err != nil {
				return fmt.Errorf("table %s: %w", j.name, err)
			}
			results[j.index] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func playTable(ctx context.Context, cfg Config, runID uuid.UUID, dir string, j job) (TableResult, error) {
	start := cfg.Clock.Now()
	t := j.table
	logger := cfg.Logger.With().Str("table", j.name).Logger()

	// Each table owns a block of streams: the deck first, then one per seat.
	base := uint64(j.index) * (game.MaxSeats + 1)
	g, err := game.New(t.Buyin, t.BigBlind, t.SmallBlind, t.MaxPlayers,
		game.WithRNG(randutil.Stream(cfg.Seed, base)),
		game.WithLogger(logger))
	if err != nil {
		return TableResult{}, err
	}

	seating := cfg.Config.Seating(t)
	agents := make([]agent.Agent, len(seating))
	for i, s := range seating {
		a, err := agent.New(s.Strategy, randutil.Stream(cfg.Seed, base+uint64(i)+1))
		if err != nil {
			return TableResult{}, fmt.Errorf("seat %d: %w", i, err)
		}
		agents[i] = a
	}

	res := TableResult{
		Name:   j.name,
		Config: t,
		Seats:  seatNames(seating),
		Dir:    dir,
	}
	res.Stats = statistics.New(res.Seats)

	var session []*phh.HandHistory
	chips := t.Buyin * t.MaxPlayers

	for hand := 1; hand <= t.MaxHands; hand++ {
		if err := ctx.Err(); err != nil {
			return TableResult{}, err
		}
		if t.Rebuy {
			for _, p := range g.Players() {
				if p.Chips > 0 {
					continue
				}
				if err := g.Rebuy(p.ID, t.Buyin); err != nil {
					return TableResult{}, err
				}
				chips += t.Buyin
				res.Rebuys++
			}
		}

		if err := g.StartHand(); errors.Is(err, game.ErrNotEnoughPlayers) {
			res.Stopped = true
			break
		} else if err != nil {
			return TableResult{}, fmt.Errorf("hand %d: %w", hand, err)
		}
		if err := playHand(g, agents); err != nil {
			return TableResult{}, fmt.Errorf("hand %d: %w", hand, err)
		}
		res.Hands++

		if total := g.TotalChips(); total != chips {
			return TableResult{}, fmt.Errorf("hand %d: %d chips on the table, expected %d", hand, total, chips)
		}

		h := g.HandHistory()
		r, err := statistics.ResultFromHistory(h, stacks(g))
		if err != nil {
			return TableResult{}, fmt.Errorf("hand %d: %w", hand, err)
		}
		if err := res.Stats.Add(r); err != nil {
			return TableResult{}, fmt.Errorf("hand %d: %w", hand, err)
		}

		if dir == "" {
			continue
		}
		id := uuid.NewSHA1(runID, fmt.Appendf(nil, "%s/%d", j.name, hand))
		file, err := pgn.Export(filepath.Join(dir, fmt.Sprintf("%s-%05d.%s", j.name, hand, pgn.FileExtension)), h,
			pgn.WithHandID(id), pgn.WithClock(cfg.Clock))
		if err != nil {
			return TableResult{}, err
		}
		res.Files = append(res.Files, file)

		if cfg.PHH {
			ph, err := phh.FromHistory(h, phh.Meta{
				Table:         j.name,
				HandID:        id.String(),
				Players:       res.Seats,
				HideHoleCards: cfg.HideHoleCards,
				Clock:         cfg.Clock,
			})
			if err != nil {
				return TableResult{}, fmt.Errorf("hand %d: %w", hand, err)
			}
			session = append(session, ph)
		}
	}

	if len(session) > 0 {
		file := filepath.Join(dir, j.name+".phhs")
		err := fileutil.WriteAtomic(file, 0o644, func(w io.Writer) error {
			return phh.EncodeSession(w, session)
		})
		if err != nil {
			return TableResult{}, fmt.Errorf("write %s: %w", file, err)
		}
		res.Files = append(res.Files, file)
	}

	res.FinalChips = stacks(g)
	if err := res.Stats.Validate(); err != nil {
		return TableResult{}, err
	}

	logger.Info().
		Int("hands", res.Hands).
		Int("rebuys", res.Rebuys).
		Bool("stopped", res.Stopped).
		Dur("duration", cfg.Clock.Since(start)).
		Msg("Table finished")
	return res, nil
}

// playHand asks agents for moves until the hand settles.
func playHand(g *game.Game, agents []agent.Agent) error {
	for n := 0; g.IsHandRunning(); n++ {
		if n == MaxActions {
			return fmt.Errorf("hand did not settle after %d actions", MaxActions)
		}
		seat := g.CurrentPlayer()
		action, amount := agents[seat].Act(g)
		if err := g.TakeAction(action, amount); err != nil {
			return fmt.Errorf("%s agent in seat %d: %w", agents[seat].Name(), seat, err)
		}
	}
	return nil
}

func stacks(g *game.Game) []int {
	players := g.Players()
	out := make([]int, len(players))
	for i, p := range players {
		out[i] = p.Chips
	}
	return out
}

// seatNames numbers repeated agent names so every seat is distinct.
func seatNames(seating []config.AgentConfig) []string {
	seen := make(map[string]int, len(seating))
	names := make([]string, len(seating))
	for i, s := range seating {
		seen[s.Name]++
		names[i] = s.Name
		if n := seen[s.Name]; n > 1 {
			names[i] = fmt.Sprintf("%s#%d", s.Name, n)
		}
	}
	return names
}
