package baccarat

import (
	"testing"

	"baccarat-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeFromString(t *testing.T) {
	a := assert.New(t)

	for _, s := range []string{"player", "banker", "tie", "player_pair", "banker_pair"} {
		outcome, err := OutcomeFromString(s)
		a.NoError(err)
		a.Equal(Outcome(s), outcome)
	}

	_, err := OutcomeFromString("red")
	a.EqualError(err, `unknown bet target: "red"`)

	_, err = OutcomeFromString("")
	a.Error(err)
}

func TestResolve(t *testing.T) {
	a := assert.New(t)

	resolve := func(banker, player string) Outcome {
		return Resolve(deck.CardsFromString(banker), deck.CardsFromString(player))
	}

	// straight score comparisons
	a.Equal(OutcomeBanker, resolve("4_of_hearts,5_of_clubs", "2_of_hearts,4_of_clubs"))
	a.Equal(OutcomePlayer, resolve("2_of_hearts,4_of_clubs", "4_of_hearts,5_of_clubs"))
	a.Equal(OutcomeTie, resolve("3_of_hearts,4_of_clubs", "2_of_spades,5_of_diamonds"))

	// a two-card rank match is a pair outcome regardless of scores
	a.Equal(OutcomePlayerPair, resolve("9_of_hearts,8_of_clubs", "5_of_hearts,5_of_clubs"))
	a.Equal(OutcomeBankerPair, resolve("king_of_hearts,king_of_clubs", "9_of_hearts,8_of_clubs"))

	// player pair takes precedence over banker pair
	a.Equal(OutcomePlayerPair, resolve("king_of_hearts,king_of_clubs", "5_of_hearts,5_of_clubs"))

	// a third card on the side breaks that side's pair
	a.Equal(OutcomeBanker, resolve("9_of_hearts,8_of_clubs", "2_of_hearts,2_of_clubs,3_of_spades"))

	// a third card on the other side does not break a two-card pair
	a.Equal(OutcomePlayerPair, resolve("2_of_hearts,2_of_clubs,3_of_spades", "5_of_hearts,5_of_clubs"))
}
