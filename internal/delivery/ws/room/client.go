package ws_room

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kinoduet/core/internal/model"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 1024
	sendBufferSize = 32
)

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan Event

	// done signals the pumps to stop. The send channel itself is never
	// closed: the read pump may still be pushing error frames through
	// trySend, and a send on a closed channel would take the process
	// down.
	done     chan struct{}
	stopOnce sync.Once

	roomCode string
	slot     model.Slot
}

func newClient(hub *Hub, conn *websocket.Conn, roomCode string, slot model.Slot) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		send:     make(chan Event, sendBufferSize),
		done:     make(chan struct{}),
		roomCode: roomCode,
		slot:     slot,
	}
}

// shutdown is safe to call from any goroutine, any number of times.
func (c *Client) shutdown() {
	c.stopOnce.Do(func() { close(c.done) })
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var msg InboundMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.trySend(Event{Type: EventError, Payload: ErrorPayload{Message: "malformed event"}})
			continue
		}

		switch msg.Type {
		case EventSwipe:
			if msg.MovieID <= 0 || !model.IsValidAction(msg.Action) {
				c.trySend(Event{Type: EventError, Payload: ErrorPayload{Message: "invalid swipe payload"}})
				continue
			}
			c.hub.HandleSwipe(c, msg.MovieID, msg.Action)

		case EventLeaveRoom:
			return

		case EventJoinRoom:
			// The join already happened during the upgrade handshake;
			// a repeated join_room is harmless.

		default:
			c.trySend(Event{Type: EventError, Payload: ErrorPayload{Message: "unknown event type"}})
		}
	}
}

// trySend drops the event when the client is shut down or the buffer
// is full; a slow client is cleaned up by the hub on the next emit.
func (c *Client) trySend(event Event) {
	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.send <- event:
	default:
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case event := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
