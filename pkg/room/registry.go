package room

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Registry owns the name to participant mapping. Identity is a bare name
// with no authentication: any connection claiming a name takes over its
// record.
type Registry struct {
	logger          logrus.FieldLogger
	startingBalance int

	mu           sync.RWMutex
	participants map[string]*Participant
}

// NewRegistry returns an empty registry. New participants start with the
// given balance.
func NewRegistry(logger logrus.FieldLogger, startingBalance int) *Registry {
	return &Registry{
		logger:          logger,
		startingBalance: startingBalance,
		participants:    make(map[string]*Participant),
	}
}

// Join registers the connection under name, creating the participant on
// first sight or reattaching to the existing record on a reconnect. A
// connection already attached under the name is displaced and told to
// close.
func (r *Registry) Join(name string, c *Client) *Participant {
	r.mu.Lock()
	p, found := r.participants[name]
	if !found {
		p = newParticipant(name, r.startingBalance)
		r.participants[name] = p
	}
	r.mu.Unlock()

	replaced := p.attach(c)
	if replaced != nil && replaced != c {
		r.logger.WithField("participant", name).Debug("displacing previous connection")
		select {
		case replaced.Close <- "signed in from another connection":
		default:
		}
	}

	if found {
		r.logger.WithField("participant", name).Debug("participant reattached")
	} else {
		r.logger.WithField("participant", name).Debug("participant created")
	}

	return p
}

// Leave detaches the connection from its participant. The record and its
// balance stay in memory so the name can reconnect later.
func (r *Registry) Leave(p *Participant, c *Client) bool {
	if !p.detach(c) {
		return false
	}

	r.logger.WithField("participant", p.Name()).Debug("participant detached")
	return true
}

// Get returns the participant registered under name
func (r *Registry) Get(name string) (*Participant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, found := r.participants[name]
	return p, found
}

// Participants returns a snapshot of every known participant, attached or not
func (r *Registry) Participants() []*Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	participants := make([]*Participant, 0, len(r.participants))
	for _, p := range r.participants {
		participants = append(participants, p)
	}

	return participants
}

// Broadcast queues the message for every attached participant. A failed
// send detaches that participant so one dead or slow connection never
// blocks delivery to the rest.
func (r *Registry) Broadcast(msg interface{}) {
	for _, p := range r.Participants() {
		client := p.Client()
		if client == nil {
			continue
		}

		if !client.Send(msg) {
			r.logger.WithField("participant", p.Name()).Warn("send failed, detaching participant")
			p.detach(client)

			select {
			case client.Close <- "connection too slow":
			default:
			}
		}
	}
}
