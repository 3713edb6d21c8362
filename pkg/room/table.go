package room

import (
	"context"
	"fmt"
	"sync"
	"time"

	"baccarat-server/internal/rng"
	"baccarat-server/internal/util"
	"baccarat-server/pkg/baccarat"

	"github.com/sirupsen/logrus"
)

// Options configure the table's round cycle
type Options struct {
	// Countdown is the number of ticks in the betting window
	Countdown int

	// TickInterval is the wall-clock length of one countdown tick
	TickInterval time.Duration

	// DealDelay is the pacing between dealt cards
	DealDelay time.Duration

	// SettleDelay is the gap between settlement and the next countdown
	SettleDelay time.Duration

	// StartingBalance is the stake a new participant begins with
	StartingBalance int

	// HistorySize bounds the retained round history
	HistorySize int

	// Payouts is the multiplier table applied to winning wagers
	Payouts baccarat.Payouts
}

// DefaultOptions returns the standard table configuration
func DefaultOptions() Options {
	return Options{
		Countdown:       10,
		TickInterval:    time.Second,
		DealDelay:       time.Second,
		SettleDelay:     5 * time.Second,
		StartingBalance: 1000,
		HistorySize:     9,
		Payouts:         baccarat.DefaultPayouts(),
	}
}

// Table runs the authoritative round cycle for every connected participant.
// The Run loop is the single writer of game state; wager intents arrive on
// connection goroutines and serialize through the table mutex, gated by the
// game phase so they can never interleave with dealing or settlement.
type Table struct {
	opts     Options
	logger   logrus.FieldLogger
	registry *Registry
	clock    Clock

	mu   sync.Mutex
	game *baccarat.Game
}

// NewTable returns a table with a fresh game and an empty registry
func NewTable(logger logrus.FieldLogger, opts Options) *Table {
	defaults := DefaultOptions()
	if opts.Countdown <= 0 {
		opts.Countdown = defaults.Countdown
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = defaults.TickInterval
	}
	if opts.DealDelay <= 0 {
		opts.DealDelay = defaults.DealDelay
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = defaults.SettleDelay
	}
	if opts.StartingBalance <= 0 {
		opts.StartingBalance = defaults.StartingBalance
	}
	if opts.Payouts == (baccarat.Payouts{}) {
		opts.Payouts = defaults.Payouts
	}

	return &Table{
		opts:     opts,
		logger:   logger,
		registry: NewRegistry(logger, opts.StartingBalance),
		clock:    realClock{},
		game:     baccarat.NewGame(rng.Crypto{}, baccarat.Options{HistorySize: opts.HistorySize}),
	}
}

// Registry returns the table's participant registry
func (t *Table) Registry() *Registry {
	return t.registry
}

// Start launches the run loop in its own goroutine
func (t *Table) Start(ctx context.Context) {
	go func() {
		if err := t.Run(ctx); err != nil {
			t.logger.WithError(err).Info("table run loop stopped")
		}
	}()
}

// Run drives the round cycle until the context is canceled. No participant
// failure ever propagates out of this loop.
func (t *Table) Run(ctx context.Context) error {
	t.logger.Debug("starting table run loop")

	for {
		if err := t.runRound(ctx); err != nil {
			return err
		}
	}
}

// runRound performs one full countdown → deal → settle → pause cycle.
// The only returned errors are context cancellations from the clock.
func (t *Table) runRound(ctx context.Context) error {
	// betting window
	for remaining := t.opts.Countdown; remaining > 0; remaining-- {
		t.registry.Broadcast(newTimeEvent(remaining))
		if err := t.clock.Sleep(ctx, t.opts.TickInterval); err != nil {
			return err
		}
	}

	// freeze wagers before any money moves
	t.mu.Lock()
	t.game.StartRound()
	t.mu.Unlock()

	t.registry.Broadcast(newStartEvent())
	staked := t.escrowWagers()

	for {
		t.mu.Lock()
		deal, err := t.game.DealNext()
		t.mu.Unlock()

		if err != nil {
			// the fixed six-card schedule cannot exhaust a 52-card shoe;
			// if it somehow happens, the round is lost but the table is not
			t.logger.WithError(err).Error("aborting round: shoe exhausted")
			t.abortRound(staked)
			return nil
		}

		if deal == nil {
			break
		}

		t.registry.Broadcast(newDealEvent(deal))
		if err := t.clock.Sleep(ctx, t.opts.DealDelay); err != nil {
			return err
		}
	}

	t.mu.Lock()
	record := t.game.FinishRound()
	t.mu.Unlock()

	t.registry.Broadcast(newResultEvent(record))
	t.settleWagers(record.Winner)

	if err := t.clock.Sleep(ctx, t.opts.SettleDelay); err != nil {
		return err
	}

	t.registry.Broadcast(newClearEvent())

	t.mu.Lock()
	t.game.StartCountdown()
	t.mu.Unlock()

	return nil
}

// escrowWagers debits every live wager up front, before the outcome is
// known. Settlement then reduces to credit-on-win, which keeps a mid-round
// disconnect from owing the table anything.
func (t *Table) escrowWagers() []*Participant {
	staked := make([]*Participant, 0)
	for _, p := range t.registry.Participants() {
		wager, balance, ok := p.EscrowWager()
		if !ok {
			// the admin surface can lower a balance after placement;
			// such a wager is voided rather than debited below zero
			if wager.Amount > 0 {
				t.logger.WithFields(logrus.Fields{
					"participant": p.Name(),
					"amount":      wager.Amount,
					"balance":     balance,
				}).Warn("dropping uncovered wager")
				p.Send(newErrorEvent(baccarat.ErrInsufficientFunds))
			}
			continue
		}

		staked = append(staked, p)

		t.logger.WithFields(logrus.Fields{
			"participant": p.Name(),
			"target":      wager.Target,
			"amount":      wager.Amount,
		}).Debug("escrowed wager")

		p.Send(newBalanceEvent(balance, -wager.Amount))
	}

	return staked
}

// settleWagers credits each winning wager by its payout multiplier and
// clears every wager regardless of outcome. A winner who detached and
// never came back forfeits the credit; that is dropped silently rather
// than treated as an error.
func (t *Table) settleWagers(winner baccarat.Outcome) {
	for _, p := range t.registry.Participants() {
		wager, ok := p.TakeWager()
		if !ok {
			continue
		}

		if wager.Target != winner {
			continue
		}

		if p.Client() == nil {
			t.logger.WithField("participant", p.Name()).Debug("dropping credit for detached participant")
			continue
		}

		credit := t.opts.Payouts.Payout(winner, wager.Amount)
		balance := p.Credit(credit)

		t.logger.WithFields(logrus.Fields{
			"participant": p.Name(),
			"credit":      credit,
		}).Debug("settled winning wager")

		p.Send(newBalanceEvent(balance, credit))
	}
}

// abortRound refunds escrowed wagers and resets the shoe after a failed
// deal
func (t *Table) abortRound(staked []*Participant) {
	for _, p := range staked {
		wager, ok := p.TakeWager()
		if !ok {
			continue
		}

		balance := p.Credit(wager.Amount)
		p.Send(newBalanceEvent(balance, wager.Amount))
	}

	t.mu.Lock()
	t.game.AbortRound()
	t.mu.Unlock()

	t.registry.Broadcast(newClearEvent())
}

// ClientConnected attaches a new connection to the table
func (t *Table) ClientConnected(c *Client) {
	c.table = t
	t.logger.WithField("client", c.String()).Debug("client connected")
}

// ClientDisconnected detaches the connection from its participant, if it
// registered one. The participant record stays behind for a reconnect.
func (t *Table) ClientDisconnected(c *Client) {
	t.logger.WithField("client", c.String()).Debug("client disconnected")

	if p := c.Participant(); p != nil {
		t.registry.Leave(p, c)
	}
}

// ReceivedIntent dispatches a decoded client intent. Unknown intents and
// rejected wagers are answered with an error event on that connection only.
func (t *Table) ReceivedIntent(c *Client, intent *Intent) {
	switch intent.Type {
	case "name":
		t.register(c, intent.Name)
	case "bet":
		target, err := baccarat.OutcomeFromString(intent.Value)
		if err != nil {
			c.Send(newErrorEvent(err))
			return
		}

		t.placeWager(c, target, intent.Amount)
	case "cancel":
		t.cancelWager(c)
	default:
		c.Send(newErrorEvent(fmt.Errorf("unknown message type: %q", intent.Type)))
	}
}

// register joins the connection under the given name, or a generated one
// if the client did not pick a name. The reply briefs the client with the
// round history and its balance, plus the live hands if a deal is running.
func (t *Table) register(c *Client, name string) {
	if name == "" {
		name = util.GetRandomName()
	}

	p := t.registry.Join(name, c)
	c.setParticipant(p)

	t.mu.Lock()
	history := t.game.History()
	var resync *gameEvent
	if t.game.Phase() == baccarat.PhaseDealing {
		resync = newGameEvent(t.game.BankerHand(), t.game.PlayerHand())
	}
	t.mu.Unlock()

	p.Send(newHistoryEvent(history))
	p.Send(newBalanceEvent(p.Balance(), 0))
	if resync != nil {
		p.Send(resync)
	}
}

// placeWager validates and stores a wager for the current round. Wagers
// are only accepted during the countdown; the phase is checked under the
// table mutex so a wager can never slip in after escrow has started.
func (t *Table) placeWager(c *Client, target baccarat.Outcome, amount int) {
	p := c.Participant()
	if p == nil {
		c.Send(newErrorEvent(baccarat.ErrUnknownParticipant))
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.game.Phase() != baccarat.PhaseCountdown {
		p.Send(newErrorEvent(baccarat.ErrRoundActive))
		return
	}

	if err := p.PlaceWager(target, amount); err != nil {
		p.Send(newErrorEvent(err))
		return
	}

	t.logger.WithFields(logrus.Fields{
		"participant": p.Name(),
		"target":      target,
		"amount":      amount,
	}).Debug("wager placed")

	p.Send(newBetEvent(baccarat.Wager{Target: target, Amount: amount}))
}

// cancelWager clears the participant's wager, under the same phase gate as
// placement
func (t *Table) cancelWager(c *Client) {
	p := c.Participant()
	if p == nil {
		c.Send(newErrorEvent(baccarat.ErrUnknownParticipant))
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.game.Phase() != baccarat.PhaseCountdown {
		p.Send(newErrorEvent(baccarat.ErrRoundActive))
		return
	}

	p.CancelWager()
}

// SetBalance overwrites a participant's balance on behalf of the admin
// surface and notifies the participant with the same balance event any
// other credit or debit produces. A live wager the new balance no longer
// covers is canceled.
func (t *Table) SetBalance(name string, balance int) error {
	p, found := t.registry.Get(name)
	if !found {
		return baccarat.ErrUnknownParticipant
	}

	old := p.SetBalance(balance)
	t.logger.WithFields(logrus.Fields{
		"participant": name,
		"balance":     balance,
	}).Info("balance set by admin")

	p.Send(newBalanceEvent(balance, balance-old))

	if wager, ok := p.Wager(); ok && wager.Amount > balance {
		p.CancelWager()
		t.logger.WithFields(logrus.Fields{
			"participant": name,
			"amount":      wager.Amount,
		}).Info("canceled wager no longer covered by balance")
		p.Send(newErrorEvent(baccarat.ErrInsufficientFunds))
	}

	return nil
}
