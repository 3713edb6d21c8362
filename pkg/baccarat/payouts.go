package baccarat

import "math"

// Payouts maps each outcome to its payout multiplier. The multiplier is
// applied to the original wager amount on a win; the banker multiplier is
// slightly below double to reflect a commission-style edge.
type Payouts struct {
	Player     float64
	Banker     float64
	Tie        float64
	PlayerPair float64
	BankerPair float64
}

// DefaultPayouts returns the standard payout table
func DefaultPayouts() Payouts {
	return Payouts{
		Player:     2.0,
		Banker:     1.9,
		Tie:        8,
		PlayerPair: 10,
		BankerPair: 10,
	}
}

// For returns the multiplier for the given outcome
func (p Payouts) For(outcome Outcome) float64 {
	switch outcome {
	case OutcomePlayer:
		return p.Player
	case OutcomeBanker:
		return p.Banker
	case OutcomeTie:
		return p.Tie
	case OutcomePlayerPair:
		return p.PlayerPair
	case OutcomeBankerPair:
		return p.BankerPair
	}

	return 0
}

// Payout returns the credit owed for a winning wager of the given amount
func (p Payouts) Payout(outcome Outcome, amount int) int {
	return int(math.Round(p.For(outcome) * float64(amount)))
}
