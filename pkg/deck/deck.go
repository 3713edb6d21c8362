package deck

import (
	"errors"

	"baccarat-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck is an ordered sequence of the 52 distinct playing cards
type Deck struct {
	Cards []*Card `json:"cards"`
	gen   rng.Generator
}

// New returns a fresh 52-card deck shuffled with the provided generator
func New(gen rng.Generator) *Deck {
	d := &Deck{gen: gen}
	d.Shuffle()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range []Suit{Hearts, Diamonds, Clubs, Spades} {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle discards whatever is left and rebuilds a full, freshly shuffled 52-card deck
func (d *Deck) Shuffle() {
	d.buildDeck()

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Stack replaces the deck contents with the cards specified, in order.
// The next Draw() returns the first card given. Intended for tests.
func (d *Deck) Stack(cards []*Card) {
	stacked := make([]*Card, len(cards))
	copy(stacked, cards)
	d.Cards = stacked
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) == 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
