package room

import (
	"sync"

	"baccarat-server/pkg/baccarat"
)

// Participant is a player known to the table: a stable name, a balance, at
// most one live wager, and the currently attached connection (nil while
// detached). The record outlives the connection so a reconnect under the
// same name resumes the same balance.
type Participant struct {
	name string

	mu      sync.Mutex
	balance int
	wager   *baccarat.Wager
	client  *Client
}

func newParticipant(name string, balance int) *Participant {
	return &Participant{
		name:    name,
		balance: balance,
	}
}

// Name returns the participant's identity
func (p *Participant) Name() string {
	return p.name
}

// Balance returns the current balance
func (p *Participant) Balance() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.balance
}

// PlaceWager stakes amount on target, replacing any existing wager.
// The amount must be positive and covered by the current balance.
func (p *Participant) PlaceWager(target baccarat.Outcome, amount int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if amount <= 0 {
		return baccarat.ErrInvalidWager
	}

	if amount > p.balance {
		return baccarat.ErrInsufficientFunds
	}

	p.wager = &baccarat.Wager{
		Target: target,
		Amount: amount,
	}

	return nil
}

// CancelWager clears the current wager, if any
func (p *Participant) CancelWager() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.wager = nil
}

// Wager returns the current wager
func (p *Participant) Wager() (baccarat.Wager, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.wager == nil {
		return baccarat.Wager{}, false
	}

	return *p.wager, true
}

// EscrowWager debits the stake of the live wager and returns it with the
// new balance. The wager stays staked for settlement. A stake the balance
// no longer covers is dropped and reported with ok false instead of
// driving the balance negative.
func (p *Participant) EscrowWager() (wager baccarat.Wager, balance int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.wager == nil {
		return baccarat.Wager{}, p.balance, false
	}

	wager = *p.wager
	if wager.Amount > p.balance {
		p.wager = nil
		return wager, p.balance, false
	}

	p.balance -= wager.Amount
	return wager, p.balance, true
}

// TakeWager clears and returns the current wager
func (p *Participant) TakeWager() (baccarat.Wager, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.wager == nil {
		return baccarat.Wager{}, false
	}

	wager := *p.wager
	p.wager = nil

	return wager, true
}

// Credit adds amount to the balance and returns the new balance
func (p *Participant) Credit(amount int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.balance += amount
	return p.balance
}

// Debit removes amount from the balance and returns the new balance
func (p *Participant) Debit(amount int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.balance -= amount
	return p.balance
}

// SetBalance overwrites the balance and returns the previous value
func (p *Participant) SetBalance(balance int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	old := p.balance
	p.balance = balance

	return old
}

// Client returns the currently attached connection, or nil while detached
func (p *Participant) Client() *Client {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.client
}

// Send queues a message on the attached connection. It returns false if
// the participant is detached or the connection's buffer is full.
func (p *Participant) Send(msg interface{}) bool {
	client := p.Client()
	if client == nil {
		return false
	}

	return client.Send(msg)
}

// attach replaces the current connection, returning the one it displaced
func (p *Participant) attach(c *Client) *Client {
	p.mu.Lock()
	defer p.mu.Unlock()

	replaced := p.client
	p.client = c

	return replaced
}

// detach removes the connection if it is still the attached one. A stale
// disconnect must not detach a newer connection under the same name.
func (p *Participant) detach(c *Client) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != c {
		return false
	}

	p.client = nil
	return true
}
