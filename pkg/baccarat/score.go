package baccarat

import "baccarat-server/pkg/deck"

// Score returns the baccarat point value of a hand: the sum of the card
// values modulo 10. Aces count one, 2–9 count face value, and tens and
// face cards count zero. The result is always in [0, 9].
func Score(cards []*deck.Card) int {
	sum := 0
	for _, card := range cards {
		sum += cardValue(card)
	}

	return sum % 10
}

func cardValue(card *deck.Card) int {
	switch {
	case card.Rank == deck.Ace:
		return 1
	case card.Rank >= 10:
		return 0
	}

	return card.Rank
}
