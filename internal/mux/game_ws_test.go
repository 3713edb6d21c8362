package mux

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"baccarat-server/pkg/room"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func wsURL(ts *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + path
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var event map[string]interface{}
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("could not read event: %v", err)
	}

	return event
}

func TestGameWebSocket(t *testing.T) {
	a := assert.New(t)

	m := testMux("v0.0.1")
	ts := httptest.NewServer(m)
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts, "/game"), nil)
	a.NoError(err)
	defer conn.Close()

	// registering a name is answered with a history brief and the balance
	a.NoError(conn.WriteJSON(room.Intent{Type: "name", Name: "alice"}))

	event := readEvent(t, conn)
	a.Equal("history", event["type"])

	event = readEvent(t, conn)
	a.Equal("balance", event["type"])
	a.Equal(float64(1000), event["balance"])

	// a wager is acknowledged
	a.NoError(conn.WriteJSON(room.Intent{Type: "bet", Value: "player", Amount: 100}))
	event = readEvent(t, conn)
	a.Equal("bet", event["type"])
	a.Equal("player", event["bet"])
	a.Equal(float64(100), event["amount"])

	// an invalid wager produces an error event, not a dropped connection
	a.NoError(conn.WriteJSON(room.Intent{Type: "bet", Value: "player", Amount: 100000}))
	event = readEvent(t, conn)
	a.Equal("error", event["type"])
	a.Equal("insufficient funds", event["message"])

	// the registry saw the participant
	p, found := m.table.Registry().Get("alice")
	a.True(found)
	wager, ok := p.Wager()
	a.True(ok)
	a.Equal(100, wager.Amount)
}

func TestGameWebSocket_reconnect(t *testing.T) {
	a := assert.New(t)

	m := testMux("v0.0.1")
	ts := httptest.NewServer(m)
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts, "/game"), nil)
	a.NoError(err)

	a.NoError(conn.WriteJSON(room.Intent{Type: "name", Name: "bob"}))
	readEvent(t, conn) // history
	readEvent(t, conn) // balance

	p, found := m.table.Registry().Get("bob")
	a.True(found)
	p.SetBalance(777)

	_ = conn.Close()

	// reconnecting under the same name resumes the same record
	conn2, _, err := websocket.DefaultDialer.Dial(wsURL(ts, "/game"), nil)
	a.NoError(err)
	defer conn2.Close()

	a.NoError(conn2.WriteJSON(room.Intent{Type: "name", Name: "bob"}))
	readEvent(t, conn2) // history

	event := readEvent(t, conn2)
	a.Equal("balance", event["type"])
	a.Equal(float64(777), event["balance"])
}
