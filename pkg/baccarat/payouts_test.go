package baccarat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayouts(t *testing.T) {
	a := assert.New(t)

	p := DefaultPayouts()
	a.Equal(200, p.Payout(OutcomePlayer, 100))
	a.Equal(190, p.Payout(OutcomeBanker, 100))
	a.Equal(800, p.Payout(OutcomeTie, 100))
	a.Equal(1000, p.Payout(OutcomePlayerPair, 100))
	a.Equal(1000, p.Payout(OutcomeBankerPair, 100))

	// banker commission rounds to the nearest unit
	a.Equal(48, p.Payout(OutcomeBanker, 25))
	a.Equal(2, p.Payout(OutcomeBanker, 1))

	a.Equal(float64(0), p.For(Outcome("bogus")))
	a.Equal(0, p.Payout(Outcome("bogus"), 100))
}
