package baccarat

import "errors"

// ErrInsufficientFunds is returned when a wager exceeds the participant's balance
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvalidWager is returned when a wager amount is zero or negative
var ErrInvalidWager = errors.New("wager amount must be positive")

// ErrRoundActive is returned when a wager intent arrives after dealing has started
var ErrRoundActive = errors.New("round is active")

// ErrUnknownParticipant is returned when a wager intent arrives before a name was registered
var ErrUnknownParticipant = errors.New("unknown participant")
