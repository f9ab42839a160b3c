package pgn

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/poker"
)

// ParseError reports malformed history text. It matches poker.ErrParse with
// errors.Is.
type ParseError struct {
	Line   int
	Text   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("pgn: line %d: %s", e.Line, e.Reason)
	if e.Text != "" {
		msg += fmt.Sprintf(" in %q", e.Text)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{poker.ErrParse, e.Err}
	}
	return []error{poker.ErrParse}
}

type line struct {
	num  int
	text string
}

type section struct {
	header line
	body   []line
}

// Decode reads one hand written by Encode. Comments run from '#' to the end
// of the line; lines holding only a comment are skipped entirely.
func Decode(r io.Reader) (*game.History, error) {
	sections, err := readSections(r)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, &ParseError{Line: 1, Reason: "empty history"}
	}

	h := &game.History{}
	last := game.HandPhase(-1)
	for _, s := range sections {
		phase, err := game.ParseHandPhase(s.header.text)
		if err != nil {
			return nil, errAt(s.header, "unknown section header", nil)
		}
		if phase <= last {
			return nil, errAt(s.header, "section out of order", nil)
		}
		if last < 0 && phase != game.Prehand {
			return nil, errAt(s.header, "history must start with PREHAND", nil)
		}
		last = phase

		switch phase {
		case game.Prehand:
			h.Prehand, err = parsePrehand(s)
		case game.Settle:
			h.Settle, err = parseSettle(s)
		default:
			var round *game.BettingRoundHistory
			round, err = parseRound(s)
			switch phase {
			case game.Preflop:
				h.Preflop = round
			case game.Flop:
				h.Flop = round
			case game.Turn:
				h.Turn = round
			case game.River:
				h.River = round
			}
		}
		if err != nil {
			return nil, err
		}
	}

	if err := h.Validate(); err != nil {
		return nil, errAt(sections[0].header, "inconsistent history", err)
	}
	return h, nil
}

// DecodeString is Decode over a string.
func DecodeString(s string) (*game.History, error) {
	return Decode(strings.NewReader(s))
}

func readSections(r io.Reader) ([]section, error) {
	var (
		sections []section
		current  *section
	)
	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++
		text := scanner.Text()
		if before, _, found := strings.Cut(text, "#"); found {
			if strings.TrimSpace(before) == "" {
				continue
			}
			text = before
		}
		text = strings.TrimSpace(text)

		if text == "" {
			current = nil
			continue
		}
		if current == nil {
			sections = append(sections, section{header: line{num, text}})
			current = &sections[len(sections)-1]
			continue
		}
		current.body = append(current.body, line{num, text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pgn: read: %w", err)
	}
	return sections, nil
}

func errAt(l line, reason string, err error) *ParseError {
	return &ParseError{Line: l.num, Text: l.text, Reason: reason, Err: err}
}

// field splits "Key: value" and checks the key.
func field(l line, key string) (string, error) {
	k, v, ok := strings.Cut(l.text, ":")
	if !ok || strings.TrimSpace(k) != key {
		return "", errAt(l, fmt.Sprintf("expected %q", key+":"), nil)
	}
	return strings.TrimSpace(v), nil
}

func intField(l line, key string) (int, error) {
	v, err := field(l, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errAt(l, "bad number", err)
	}
	return n, nil
}

func parseInts(l line, s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errAt(l, "bad number", err)
		}
		out[i] = n
	}
	return out, nil
}

// bracketed strips the surrounding [ and ].
func bracketed(l line, s string) (string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return "", errAt(l, "expected a bracketed list", nil)
	}
	return s[1 : len(s)-1], nil
}

func parseCardList(l line, s string) ([]poker.Card, error) {
	inner, err := bracketed(l, s)
	if err != nil {
		return nil, err
	}
	cards, err := poker.ParseCards(inner)
	if err != nil {
		return nil, errAt(l, "bad card", err)
	}
	if len(cards) == 0 {
		return nil, nil
	}
	return cards, nil
}

func parsePrehand(s section) (*game.PrehandHistory, error) {
	if len(s.body) != 4 {
		return nil, errAt(s.header, fmt.Sprintf("PREHAND needs 4 lines, got %d", len(s.body)), nil)
	}
	pre := &game.PrehandHistory{}

	var err error
	if pre.BigBlind, err = intField(s.body[0], keyBigBlind); err != nil {
		return nil, err
	}
	if pre.SmallBlind, err = intField(s.body[1], keySmallBlind); err != nil {
		return nil, err
	}

	chips, err := field(s.body[2], keyPlayerChips)
	if err != nil {
		return nil, err
	}
	if pre.PlayerChips, err = parseInts(s.body[2], chips); err != nil {
		return nil, err
	}

	hands, err := field(s.body[3], keyPlayerCards)
	if err != nil {
		return nil, err
	}
	for _, hand := range strings.Split(hands, ",") {
		cards, err := parseCardList(s.body[3], hand)
		if err != nil {
			return nil, err
		}
		pre.PlayerCards = append(pre.PlayerCards, cards)
	}
	if len(pre.PlayerCards) != len(pre.PlayerChips) {
		return nil, errAt(s.body[3], fmt.Sprintf("%d hands for %d players", len(pre.PlayerCards), len(pre.PlayerChips)), nil)
	}
	return pre, nil
}

func parseRound(s section) (*game.BettingRoundHistory, error) {
	if len(s.body) == 0 {
		return nil, errAt(s.header, "missing New Cards line", nil)
	}
	v, err := field(s.body[0], keyNewCards)
	if err != nil {
		return nil, err
	}
	cards, err := parseCardList(s.body[0], v)
	if err != nil {
		return nil, err
	}
	round := &game.BettingRoundHistory{NewCards: cards}

	prev := 0
	for _, l := range s.body[1:] {
		num, rest, ok := strings.Cut(l.text, ". ")
		if !ok {
			return nil, errAt(l, "expected an orbit line", nil)
		}
		orbit, err := strconv.Atoi(num)
		if err != nil || orbit <= prev {
			return nil, errAt(l, "bad orbit number", err)
		}
		prev = orbit
		for _, raw := range strings.Split(rest, ";") {
			a, err := parseAction(l, raw)
			if err != nil {
				return nil, err
			}
			round.Actions = append(round.Actions, a)
		}
	}
	return round, nil
}

func parseAction(l line, raw string) (game.PlayerAction, error) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "(") || !strings.HasSuffix(raw, ")") {
		return game.PlayerAction{}, errAt(l, "expected (player,ACTION[,amount])", nil)
	}
	parts := strings.Split(raw[1:len(raw)-1], ",")
	if len(parts) < 2 || len(parts) > 3 {
		return game.PlayerAction{}, errAt(l, "expected (player,ACTION[,amount])", nil)
	}

	var a game.PlayerAction
	var err error
	if a.PlayerID, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return a, errAt(l, "bad player id", err)
	}
	if a.Action, err = game.ParseActionType(parts[1]); err != nil {
		return a, errAt(l, "bad action", err)
	}
	if len(parts) == 3 {
		if a.Value, err = strconv.Atoi(strings.TrimSpace(parts[2])); err != nil {
			return a, errAt(l, "bad amount", err)
		}
	}
	return a, nil
}

func parseSettle(s section) (*game.SettleHistory, error) {
	if len(s.body) != 2 {
		return nil, errAt(s.header, fmt.Sprintf("SETTLE needs 2 lines, got %d", len(s.body)), nil)
	}
	v, err := field(s.body[0], keyNewCards)
	if err != nil {
		return nil, err
	}
	cards, err := parseCardList(s.body[0], v)
	if err != nil {
		return nil, err
	}
	settle := &game.SettleHistory{NewCards: cards}

	l := s.body[1]
	winners, err := field(l, keyWinners)
	if err != nil {
		return nil, err
	}
	if winners == "" {
		return settle, nil
	}
	for _, raw := range strings.Split(winners, ";") {
		pw, err := parsePotWinner(l, strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		settle.PotWinners = append(settle.PotWinners, pw)
	}
	return settle, nil
}

// parsePotWinner reads "(Pot 0,320,1609,[2,3])".
func parsePotWinner(l line, raw string) (game.PotWinner, error) {
	var pw game.PotWinner
	bad := func(err error) (game.PotWinner, error) {
		return pw, errAt(l, "expected (Pot N,amount,rank,[winners])", err)
	}
	if !strings.HasPrefix(raw, "(Pot ") || !strings.HasSuffix(raw, ")") {
		return bad(nil)
	}
	head, ids, ok := strings.Cut(raw[len("(Pot "):len(raw)-1], ",[")
	if !ok || !strings.HasSuffix(ids, "]") {
		return bad(nil)
	}
	nums, err := parseInts(l, head)
	if err != nil || len(nums) != 3 {
		return bad(err)
	}
	pw.PotID, pw.Amount, pw.BestRank = nums[0], nums[1], nums[2]
	if pw.Winners, err = parseInts(l, strings.TrimSuffix(ids, "]")); err != nil {
		return bad(err)
	}
	return pw, nil
}
