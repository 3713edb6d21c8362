package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	card := CardFromString("ace_of_spades")
	a.Equal(Ace, card.Rank)
	a.Equal(Spades, card.Suit)

	card = CardFromString("7_of_hearts")
	a.Equal(7, card.Rank)
	a.Equal(Hearts, card.Suit)

	card = CardFromString("10_of_diamonds")
	a.Equal(10, card.Rank)
	a.Equal(Diamonds, card.Suit)

	a.Panics(func() { CardFromString("11_of_clubs") })
	a.Panics(func() { CardFromString("jack_of_stars") })
	a.Panics(func() { CardFromString("jack") })
	a.Panics(func() { CardFromString("") })
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("2_of_clubs", (&Card{Rank: 2, Suit: Clubs}).String())
	a.Equal("jack_of_hearts", (&Card{Rank: Jack, Suit: Hearts}).String())
	a.Equal("queen_of_diamonds", (&Card{Rank: Queen, Suit: Diamonds}).String())
	a.Equal("king_of_spades", (&Card{Rank: King, Suit: Spades}).String())
	a.Equal("ace_of_clubs", (&Card{Rank: Ace, Suit: Clubs}).String())

	// round trip
	for _, s := range []string{"2_of_clubs", "10_of_spades", "king_of_hearts"} {
		a.Equal(s, CardFromString(s).String())
	}
}

func TestCard_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(&Card{Rank: 5, Suit: Hearts})
	a.NoError(err)
	a.Equal(`"5_of_hearts"`, string(b))

	var card Card
	a.NoError(json.Unmarshal([]byte(`"queen_of_clubs"`), &card))
	a.Equal(Queen, card.Rank)
	a.Equal(Clubs, card.Suit)

	a.Error(json.Unmarshal([]byte(`"nope"`), &card))
	a.Error(json.Unmarshal([]byte(`42`), &card))
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("5_of_hearts,5_of_clubs,ace_of_spades")
	a.Equal(3, len(cards))
	a.Equal(5, cards[0].Rank)
	a.Equal(Clubs, cards[1].Suit)
	a.Equal(Ace, cards[2].Rank)

	a.Equal("5_of_hearts,5_of_clubs,ace_of_spades", CardsToString(cards))
	a.Equal(0, len(CardsFromString("")))
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)

	a.True(CardFromString("5_of_hearts").Equal(CardFromString("5_of_hearts")))
	a.False(CardFromString("5_of_hearts").Equal(CardFromString("5_of_clubs")))
	a.False(CardFromString("5_of_hearts").Equal(CardFromString("6_of_hearts")))
}
