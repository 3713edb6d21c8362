package baccarat

import (
	"baccarat-server/internal/rng"
	"baccarat-server/pkg/deck"
)

// Phase is the current state of the round cycle
type Phase int

// phase constants
const (
	// PhaseCountdown is the betting window before the next deal
	PhaseCountdown Phase = iota

	// PhaseDealing means cards are on the table and wagers are frozen
	PhaseDealing

	// PhasePause is the gap between settlement and the next countdown
	PhasePause
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseDealing:
		return "dealing"
	case PhasePause:
		return "pause"
	}

	return "unknown"
}

// Side identifies which hand a card was dealt to
type Side string

// side constants
const (
	SideBanker Side = "banker"
	SidePlayer Side = "player"
)

// thirdCardUnder is the score below which a side draws its third card.
// Simplified rule set: there are no natural-8/9 early stands.
const thirdCardUnder = 6

// Deal describes a single dealt card along with the side's recomputed running score
type Deal struct {
	Card  *deck.Card `json:"card"`
	Side  Side       `json:"deal_type"`
	Index int        `json:"index"`
	Score int        `json:"score"`
}

// RoundRecord is a completed round as retained in history
type RoundRecord struct {
	Banker []*deck.Card `json:"banker"`
	Player []*deck.Card `json:"player"`
	Winner Outcome      `json:"winner"`
}

// Options configure a game
type Options struct {
	// HistorySize bounds how many completed rounds are retained
	HistorySize int
}

// DefaultOptions returns the default game options
func DefaultOptions() Options {
	return Options{
		HistorySize: 9,
	}
}

// Game holds the table state for the repeating round cycle: the shoe, the
// two hands, the phase, and the bounded history of completed rounds. A Game
// performs no I/O and is not safe for concurrent use; the caller is
// responsible for serializing access.
type Game struct {
	opts    Options
	deck    *deck.Deck
	phase   Phase
	banker  []*deck.Card
	player  []*deck.Card
	history []*RoundRecord
}

// NewGame returns a game with a freshly shuffled shoe, in the countdown phase
func NewGame(gen rng.Generator, opts Options) *Game {
	if opts.HistorySize <= 0 {
		opts.HistorySize = DefaultOptions().HistorySize
	}

	return &Game{
		opts:  opts,
		deck:  deck.New(gen),
		phase: PhaseCountdown,
	}
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// BankerHand returns a copy of the banker's cards
func (g *Game) BankerHand() []*deck.Card {
	return copyHand(g.banker)
}

// PlayerHand returns a copy of the player's cards
func (g *Game) PlayerHand() []*deck.Card {
	return copyHand(g.player)
}

// BankerScore returns the banker hand's current score
func (g *Game) BankerScore() int {
	return Score(g.banker)
}

// PlayerScore returns the player hand's current score
func (g *Game) PlayerScore() int {
	return Score(g.player)
}

// History returns a copy of the retained round records, oldest first
func (g *Game) History() []*RoundRecord {
	history := make([]*RoundRecord, len(g.history))
	copy(history, g.history)
	return history
}

// StartRound clears both hands and freezes wagers by moving to the dealing phase
func (g *Game) StartRound() {
	g.banker = nil
	g.player = nil
	g.phase = PhaseDealing
}

// DealNext deals the next card in the fixed order: banker 0, player 0,
// banker 1, player 1, then the player's third card if the player score is
// under the drawing threshold, then the banker's third card under the same
// rule for the banker. It returns nil once the round is complete. A draw
// from an exhausted shoe returns deck.ErrEndOfDeck.
func (g *Game) DealNext() (*Deal, error) {
	side, index, ok := g.nextSlot()
	if !ok {
		return nil, nil
	}

	card, err := g.deck.Draw()
	if err != nil {
		return nil, err
	}

	hand := &g.banker
	if side == SidePlayer {
		hand = &g.player
	}
	*hand = append(*hand, card)

	return &Deal{
		Card:  card,
		Side:  side,
		Index: index,
		Score: Score(*hand),
	}, nil
}

func (g *Game) nextSlot() (Side, int, bool) {
	switch {
	case len(g.banker) == 0:
		return SideBanker, 0, true
	case len(g.player) == 0:
		return SidePlayer, 0, true
	case len(g.banker) == 1:
		return SideBanker, 1, true
	case len(g.player) == 1:
		return SidePlayer, 1, true
	case len(g.player) == 2 && Score(g.player) < thirdCardUnder:
		return SidePlayer, 2, true
	case len(g.banker) == 2 && Score(g.banker) < thirdCardUnder:
		return SideBanker, 2, true
	}

	return "", 0, false
}

// FinishRound resolves the outcome, appends the round to history (evicting
// the oldest beyond the retention bound), replaces the shoe with a fresh
// shuffle, and moves to the pause phase
func (g *Game) FinishRound() *RoundRecord {
	record := &RoundRecord{
		Banker: copyHand(g.banker),
		Player: copyHand(g.player),
		Winner: Resolve(g.banker, g.player),
	}

	g.history = append(g.history, record)
	if len(g.history) > g.opts.HistorySize {
		g.history = g.history[1:]
	}

	g.deck.Shuffle()
	g.phase = PhasePause

	return record
}

// AbortRound discards the current hands, reshuffles, and returns to the
// countdown phase without recording a result
func (g *Game) AbortRound() {
	g.banker = nil
	g.player = nil
	g.deck.Shuffle()
	g.phase = PhaseCountdown
}

// StartCountdown opens the betting window for the next round
func (g *Game) StartCountdown() {
	g.phase = PhaseCountdown
}

// StackDeck replaces the shoe contents with the cards given, in deal order.
// Intended for tests.
func (g *Game) StackDeck(cards []*deck.Card) {
	g.deck.Stack(cards)
}

func copyHand(hand []*deck.Card) []*deck.Card {
	cards := make([]*deck.Card, len(hand))
	copy(cards, hand)
	return cards
}
