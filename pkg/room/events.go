package room

import (
	"baccarat-server/pkg/baccarat"
	"baccarat-server/pkg/deck"
)

// Events mirror the original wire protocol: flat JSON objects tagged with
// a "type" field. The table is the only emitter, so per-connection ordering
// follows emission order.

type timeEvent struct {
	Type      string `json:"type"`
	Remaining int    `json:"time"`
}

func newTimeEvent(remaining int) *timeEvent {
	return &timeEvent{Type: "time", Remaining: remaining}
}

type startEvent struct {
	Type string `json:"type"`
}

func newStartEvent() *startEvent {
	return &startEvent{Type: "start"}
}

type dealEvent struct {
	Type string `json:"type"`
	*baccarat.Deal
}

func newDealEvent(deal *baccarat.Deal) *dealEvent {
	return &dealEvent{Type: "deal", Deal: deal}
}

type resultEvent struct {
	Type   string           `json:"type"`
	Banker []*deck.Card     `json:"banker"`
	Player []*deck.Card     `json:"player"`
	Winner baccarat.Outcome `json:"winner"`
}

func newResultEvent(record *baccarat.RoundRecord) *resultEvent {
	return &resultEvent{
		Type:   "result",
		Banker: record.Banker,
		Player: record.Player,
		Winner: record.Winner,
	}
}

type clearEvent struct {
	Type string `json:"type"`
}

func newClearEvent() *clearEvent {
	return &clearEvent{Type: "clear"}
}

type historyEvent struct {
	Type    string                  `json:"type"`
	History []*baccarat.RoundRecord `json:"history"`
}

func newHistoryEvent(history []*baccarat.RoundRecord) *historyEvent {
	return &historyEvent{Type: "history", History: history}
}

type balanceEvent struct {
	Type      string `json:"type"`
	Balance   int    `json:"balance"`
	Delta     int    `json:"delta"`
	Direction string `json:"direction"`
}

// newBalanceEvent reports a balance change. The delta is reported as a
// magnitude with an explicit credit/debit direction.
func newBalanceEvent(balance, delta int) *balanceEvent {
	direction := "credit"
	if delta < 0 {
		direction = "debit"
		delta = -delta
	}

	return &balanceEvent{
		Type:      "balance",
		Balance:   balance,
		Delta:     delta,
		Direction: direction,
	}
}

type handState struct {
	Cards []*deck.Card `json:"cards"`
	Score int          `json:"score"`
}

// gameEvent resynchronizes a client that (re)joins mid-round
type gameEvent struct {
	Type   string    `json:"type"`
	Banker handState `json:"banker"`
	Player handState `json:"player"`
}

func newGameEvent(banker, player []*deck.Card) *gameEvent {
	return &gameEvent{
		Type:   "game",
		Banker: handState{Cards: banker, Score: baccarat.Score(banker)},
		Player: handState{Cards: player, Score: baccarat.Score(player)},
	}
}

// betEvent acknowledges a successful wager placement
type betEvent struct {
	Type   string           `json:"type"`
	Bet    baccarat.Outcome `json:"bet"`
	Amount int              `json:"amount"`
}

func newBetEvent(wager baccarat.Wager) *betEvent {
	return &betEvent{Type: "bet", Bet: wager.Target, Amount: wager.Amount}
}

type errorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func newErrorEvent(err error) *errorEvent {
	return &errorEvent{Type: "error", Message: err.Error()}
}
