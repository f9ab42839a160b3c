package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/lox/holdem/poker"
)

// MaxSeats is the most players a single deck can deal a full hand to.
const MaxSeats = 23

// Game is a tournament-style Texas Hold'em table. It is not safe for
// concurrent use; every method runs to completion before returning.
type Game struct {
	buyin      int
	bigBlind   int
	smallBlind int
	maxPlayers int

	players []*Player
	pots    []*pot
	deck    *poker.Deck
	board   []poker.Card
	hands   [][]poker.Card

	rng       *rand.Rand
	logger    zerolog.Logger
	stackDeck *poker.Deck // dealt instead of a shuffled deck for the next hand

	phase       HandPhase
	handRunning bool
	gameRunning bool
	numHands    int

	button  int
	sbLoc   int
	bbLoc   int
	current int

	// betting round cursor: seats left to visit and where to look next
	cursor    int
	remaining int
	lastRaise int
	actedAt   []int // level when each player last acted this round, -1 if not yet

	history *History
}

// New seats maxPlayers players with buyin chips each.
func New(buyin, bigBlind, smallBlind, maxPlayers int, opts ...Option) (*Game, error) {
	cfg := config{button: -1, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case maxPlayers < 2:
		return nil, fmt.Errorf("%w: need at least 2 seats, got %d", ErrNotEnoughPlayers, maxPlayers)
	case maxPlayers > MaxSeats:
		return nil, fmt.Errorf("%w: at most %d seats, got %d", ErrTableFull, MaxSeats, maxPlayers)
	case bigBlind <= 0 || smallBlind <= 0:
		return nil, fmt.Errorf("blinds must be positive, got %d/%d", smallBlind, bigBlind)
	case smallBlind > bigBlind:
		return nil, fmt.Errorf("small blind %d exceeds big blind %d", smallBlind, bigBlind)
	case cfg.chips == nil && buyin <= 0:
		return nil, fmt.Errorf("buy-in must be positive, got %d", buyin)
	case cfg.chips != nil && len(cfg.chips) != maxPlayers:
		return nil, fmt.Errorf("got %d stacks for %d seats", len(cfg.chips), maxPlayers)
	case cfg.button >= maxPlayers:
		return nil, fmt.Errorf("button seat %d out of range", cfg.button)
	}

	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.button < 0 {
		cfg.button = cfg.rng.IntN(maxPlayers)
	}

	g := &Game{
		buyin:       buyin,
		bigBlind:    bigBlind,
		smallBlind:  smallBlind,
		maxPlayers:  maxPlayers,
		rng:         cfg.rng,
		logger:      cfg.logger,
		phase:       Prehand,
		gameRunning: true,
		button:      cfg.button,
		sbLoc:       -1,
		bbLoc:       -1,
		current:     -1,
		actedAt:     make([]int, maxPlayers),
		hands:       make([][]poker.Card, maxPlayers),
	}
	g.players = make([]*Player, maxPlayers)
	for i := range g.players {
		chips := buyin
		if cfg.chips != nil {
			chips = cfg.chips[i]
			if chips < 0 {
				return nil, fmt.Errorf("seat %d has negative stack %d", i, chips)
			}
		}
		g.players[i] = &Player{ID: i, Chips: chips, State: In}
	}
	return g, nil
}

// StartHand rotates the button, posts blinds, deals and opens preflop
// betting. It returns ErrNotEnoughPlayers, and stops the game, when fewer
// than two seats have chips.
func (g *Game) StartHand() error {
	if g.handRunning {
		return ErrHandRunning
	}
	g.phase = Prehand

	for _, pl := range g.players {
		pl.LastPot = 0
		if pl.Chips == 0 {
			pl.State = Skip
		} else {
			pl.State = ToCall
		}
	}

	var active []int
	for id := range g.ActiveIter(g.button+1, false) {
		active = append(active, id)
	}
	if len(active) < 2 {
		g.gameRunning = false
		g.stackDeck = nil
		return ErrNotEnoughPlayers
	}
	g.gameRunning = true

	g.button = active[0]
	g.sbLoc = active[1]
	if len(active) == 2 {
		g.sbLoc = g.button
	}
	g.bbLoc = g.nextActive(g.sbLoc + 1)

	g.pots = []*pot{newPot()}
	if g.stackDeck != nil {
		g.deck, g.stackDeck = g.stackDeck, nil
	} else {
		g.deck = poker.NewDeck(g.rng)
	}
	g.board = nil

	startChips := make([]int, g.maxPlayers)
	for i, pl := range g.players {
		startChips[i] = pl.Chips
	}
	g.hands = make([][]poker.Card, g.maxPlayers)
	for id := range g.ActiveIter(g.button+1, false) {
		cards, err := g.deck.Draw(2)
		if err != nil {
			return fmt.Errorf("deal hole cards: %w", err)
		}
		g.hands[id] = cards
	}

	g.history = &History{
		Prehand: &PrehandHistory{
			Button:      g.button,
			BigBlind:    g.bigBlind,
			SmallBlind:  g.smallBlind,
			PlayerChips: startChips,
			PlayerCards: cloneHands(g.hands),
		},
	}

	g.handRunning = true
	g.numHands++
	g.resetRound()
	g.post(g.sbLoc, g.smallBlind)
	g.post(g.bbLoc, g.bigBlind)
	g.current = g.nextActive(g.bbLoc + 1)

	g.logger.Debug().
		Int("hand", g.numHands).
		Int("button", g.button).
		Int("small_blind", g.sbLoc).
		Int("big_blind", g.bbLoc).
		Int("players", len(active)).
		Msg("Hand started")

	g.phase = Preflop
	g.advance(true)
	return nil
}

// TakeAction applies a move for the acting player. For Raise, amount is the
// total the player will have committed this round. Any round completions,
// phase changes and settlement triggered by the move happen before it
// returns.
func (g *Game) TakeAction(action ActionType, amount int) error {
	if err := g.ValidateMove(g.current, action, amount); err != nil {
		return err
	}
	id := g.current
	pl := g.players[id]

	effective, total := action, amount
	if action == AllIn {
		effective, total = g.translateAllIn(id)
	}

	levelBefore := g.level()
	switch effective {
	case Call:
		g.post(id, g.ChipsToCall(id))
	case Raise:
		g.post(id, total-g.PlayerBetAmount(id))
	case Fold:
		pl.State = Out
		for _, p := range g.pots {
			p.remove(id)
		}
	case Check:
	}

	recorded := PlayerAction{PlayerID: id, Action: action}
	switch action {
	case Raise:
		recorded.Value = amount
	case AllIn:
		if effective == Raise {
			recorded.Value = total
		}
	}
	round := g.history.Round(g.phase)
	round.Actions = append(round.Actions, recorded)

	levelAfter := g.level()
	if effective == Raise {
		if inc := levelAfter - levelBefore; inc >= g.LastRaise() {
			g.lastRaise = inc
		}
		// everyone after the raiser gets another turn
		g.cursor = id + 1
		g.remaining = g.maxPlayers - 1
	}
	g.actedAt[id] = levelAfter

	g.logger.Debug().
		Int("player", id).
		Stringer("action", action).
		Int("amount", recorded.Value).
		Int("chips", pl.Chips).
		Stringer("phase", g.phase).
		Msg("Action")

	g.advance(false)
	return nil
}

// advance finds the next player to act, running round completions, later
// streets and settlement until someone must act or the hand ends.
func (g *Game) advance(newRound bool) {
	for g.handRunning {
		if !newRound {
			if !g.isHandOver() && g.nextActor() {
				return
			}
			for _, p := range g.pots {
				p.collect()
			}
			g.phase = g.phase.Next()
		}
		newRound = false

		if g.isHandOver() {
			g.phase = Settle
		}
		if g.phase == Settle {
			g.settle()
			return
		}
		g.startRound()
	}
}

// startRound reveals the street's cards and positions the cursor.
func (g *Game) startRound() {
	cards, err := g.deck.Draw(g.phase.NewCards())
	invariant(err == nil, "deal %s: %v", g.phase, err)
	g.board = append(g.board, cards...)
	g.history.setRound(g.phase, &BettingRoundHistory{NewCards: cards})

	if g.phase != Preflop {
		g.current = g.nextActive(g.button + 1)
		g.resetRound()
		g.logger.Debug().
			Stringer("phase", g.phase).
			Str("board", poker.FormatCards(g.board, " ")).
			Msg("Betting round started")
	}
	g.cursor = g.current
	g.remaining = g.maxPlayers
}

func (g *Game) resetRound() {
	g.lastRaise = g.bigBlind
	for i := range g.actedAt {
		g.actedAt[i] = -1
	}
}

// nextActor moves the cursor to the next seat that can act this round.
func (g *Game) nextActor() bool {
	for g.remaining > 0 {
		seat := g.cursor % g.maxPlayers
		g.cursor = seat + 1
		g.remaining--
		if g.players[seat].CanAct() {
			g.current = seat
			return true
		}
	}
	return false
}

// isHandOver reports whether no further betting is possible: nobody owes
// chips and at most one player can still act.
func (g *Game) isHandOver() bool {
	in := 0
	for _, pl := range g.players {
		switch pl.State {
		case ToCall:
			return false
		case In:
			in++
			if in > 1 {
				return false
			}
		}
	}
	return true
}

func (g *Game) nextActive(loc int) int {
	for id := range g.ActiveIter(loc, false) {
		return id
	}
	invariant(false, "no active player after seat %d", loc)
	return -1
}

// Rebuy gives a busted player a new stack between hands.
func (g *Game) Rebuy(playerID, chips int) error {
	if g.handRunning {
		return ErrHandRunning
	}
	if playerID < 0 || playerID >= g.maxPlayers {
		return fmt.Errorf("rebuy: no seat %d", playerID)
	}
	if chips <= 0 {
		return fmt.Errorf("rebuy: chips must be positive, got %d", chips)
	}
	pl := g.players[playerID]
	if pl.Chips != 0 {
		return fmt.Errorf("rebuy: player %d still has %d chips", playerID, pl.Chips)
	}
	pl.Chips = chips
	pl.State = In
	g.logger.Debug().Int("player", playerID).Int("chips", chips).Msg("Rebuy")
	return nil
}
