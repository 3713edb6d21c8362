package room

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// sendBufferSize bounds the per-connection outbound queue. A client that
// falls this far behind is detached rather than allowed to stall the table.
const sendBufferSize = 256

// Client is a single websocket connection to the table
type Client struct {
	// ID uniquely identifies this connection, not the participant behind it
	ID uuid.UUID

	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// Close carries a reason for closing the client. It is buffered so a
	// close signal sent while the write loop is mid-write is not lost.
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	send chan interface{}

	table *Table

	// participant is set once the connection registers a name. The read
	// goroutine writes it and the write loop reads it through String().
	mu          sync.Mutex
	participant *Participant
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		ID:    uuid.New(),
		Conn:  conn,
		Close: make(chan string, 1),
		send:  make(chan interface{}, sendBufferSize),
	}
}

// Send queues a message for the client without blocking.
// It returns false if the client's buffer is full.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of queued outbound messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// Participant returns the participant this connection registered, if any
func (c *Client) Participant() *Participant {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.participant
}

func (c *Client) setParticipant(p *Participant) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.participant = p
}

// String returns a traceable identifier for the connection
func (c *Client) String() string {
	if p := c.Participant(); p != nil {
		return fmt.Sprintf("%s:%s", p.Name(), c.ID)
	}

	return c.ID.String()
}

// ReceivedIntent is called when the server receives a decoded intent from this connection
func (c *Client) ReceivedIntent(intent *Intent) {
	if c.table == nil {
		logrus.WithField("intent", intent).Warn("received intent, but client is not attached to a table")
		return
	}

	c.table.ReceivedIntent(c, intent)
}
