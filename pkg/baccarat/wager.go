package baccarat

// Wager is a staked amount on an outcome for the current round
type Wager struct {
	Target Outcome `json:"bet"`
	Amount int     `json:"amount"`
}
