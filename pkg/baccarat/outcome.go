package baccarat

import (
	"fmt"

	"baccarat-server/pkg/deck"
)

// Outcome is a round result, and also the target of a wager
type Outcome string

// outcome constants
const (
	OutcomePlayer     Outcome = "player"
	OutcomeBanker     Outcome = "banker"
	OutcomeTie        Outcome = "tie"
	OutcomePlayerPair Outcome = "player_pair"
	OutcomeBankerPair Outcome = "banker_pair"
)

// OutcomeFromString validates a wire bet target
func OutcomeFromString(s string) (Outcome, error) {
	switch o := Outcome(s); o {
	case OutcomePlayer, OutcomeBanker, OutcomeTie, OutcomePlayerPair, OutcomeBankerPair:
		return o, nil
	}

	return "", fmt.Errorf("unknown bet target: %q", s)
}

// Resolve determines the outcome for the two hands. Pair outcomes take
// precedence over the score comparison and require the side's hand to hold
// exactly two cards of matching rank: a third card dealt to the other side
// never invalidates a pair.
func Resolve(banker, player []*deck.Card) Outcome {
	switch {
	case isPair(player):
		return OutcomePlayerPair
	case isPair(banker):
		return OutcomeBankerPair
	}

	playerScore, bankerScore := Score(player), Score(banker)
	switch {
	case playerScore > bankerScore:
		return OutcomePlayer
	case bankerScore > playerScore:
		return OutcomeBanker
	}

	return OutcomeTie
}

func isPair(hand []*deck.Card) bool {
	return len(hand) == 2 && hand[0].Rank == hand[1].Rank
}
