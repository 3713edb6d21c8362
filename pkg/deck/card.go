package deck

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Card is an individual playing card
type Card struct {
	Rank int
	Suit Suit
}

// String returns the card in its wire format, e.g. "7_of_hearts" or "ace_of_spades"
func (c *Card) String() string {
	return fmt.Sprintf("%s_of_%s", rankName(c.Rank), c.Suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// MarshalJSON sends the card over the wire in its string form
func (c *Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON parses a card from its wire string form
func (c *Card) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	card, err := parseCard(s)
	if err != nil {
		return err
	}

	*c = *card
	return nil
}

func rankName(rank int) string {
	switch rank {
	case Jack:
		return "jack"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Ace:
		return "ace"
	default:
		return strconv.Itoa(rank)
	}
}

func rankFromName(name string) (int, error) {
	switch name {
	case "jack":
		return Jack, nil
	case "queen":
		return Queen, nil
	case "king":
		return King, nil
	case "ace":
		return Ace, nil
	}

	rank, err := strconv.Atoi(name)
	if err != nil || rank < 2 || rank > 10 {
		return 0, fmt.Errorf("unknown rank: %s", name)
	}

	return rank, nil
}

func parseCard(s string) (*Card, error) {
	name, suitName, found := strings.Cut(s, "_of_")
	if !found {
		return nil, fmt.Errorf("could not parse card: %s", s)
	}

	rank, err := rankFromName(name)
	if err != nil {
		return nil, err
	}

	switch suit := Suit(suitName); suit {
	case Hearts, Clubs, Diamonds, Spades:
		return &Card{Rank: rank, Suit: suit}, nil
	}

	return nil, fmt.Errorf("unknown suit: %s", suitName)
}

// CardFromString returns a Card from a string like "ace_of_spades".
// It panics on bad input and is intended for tests and fixtures.
func CardFromString(s string) *Card {
	card, err := parseCard(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString returns a slice of cards from a comma-separated string
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of 2_of_clubs,jack_of_hearts,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}
