// Package realtime is the client side of the room channel: one
// explicit connection manager per room session instead of a shared
// process-wide socket, so reconnects and multi-room test setups stay
// tractable.
package realtime

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	ws_room "github.com/kinoduet/core/internal/delivery/ws/room"
	"github.com/kinoduet/core/internal/model"
)

var (
	ErrNotConnected     = errors.New("not connected")
	ErrAlreadyConnected = errors.New("already connected")
)

// EventHandler receives every server event in arrival order.
type EventHandler func(event ws_room.Event)

type Manager struct {
	baseURL string
	handler EventHandler

	mu       sync.Mutex
	conn     *websocket.Conn
	roomCode string
	slot     model.Slot
	done     chan struct{}
}

func New(baseURL string, handler EventHandler) *Manager {
	return &Manager{
		baseURL: baseURL,
		handler: handler,
	}
}

// Connect dials the room channel and starts the read loop. The slot
// comes from the earlier HTTP join; connecting again after a drop
// reuses it and never re-runs join side effects.
func (m *Manager) Connect(roomCode string, slot model.Slot, pin string, viaLink bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn != nil {
		return ErrAlreadyConnected
	}

	u, err := url.Parse(m.baseURL)
	if err != nil {
		return fmt.Errorf("bad base url: %w", err)
	}
	u.Path = fmt.Sprintf("/api/v1/ws/rooms/%s", roomCode)
	q := u.Query()
	q.Set("slot", slot)
	if viaLink {
		q.Set("via_link", "true")
	} else {
		q.Set("pin", pin)
	}
	u.RawQuery = q.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		return fmt.Errorf("dial room channel: %w", err)
	}

	m.conn = conn
	m.roomCode = roomCode
	m.slot = slot
	m.done = make(chan struct{})

	go m.readLoop(conn, m.done)

	return m.sendLocked(ws_room.InboundMessage{
		Type:     ws_room.EventJoinRoom,
		RoomCode: roomCode,
		Slot:     slot,
	})
}

// Swipe reports a local swipe to the server. The server stays the
// authority on matches; the caller may update its own progress UI
// eagerly but must not declare a match until match_found arrives.
func (m *Manager) Swipe(movieID int64, action model.SwipeAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn == nil {
		return ErrNotConnected
	}

	return m.sendLocked(ws_room.InboundMessage{
		Type:     ws_room.EventSwipe,
		RoomCode: m.roomCode,
		Slot:     m.slot,
		MovieID:  movieID,
		Action:   action,
	})
}

func (m *Manager) Disconnect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn == nil {
		return nil
	}

	_ = m.sendLocked(ws_room.InboundMessage{
		Type:     ws_room.EventLeaveRoom,
		RoomCode: m.roomCode,
		Slot:     m.slot,
	})

	err := m.conn.Close()
	m.conn = nil
	close(m.done)
	return err
}

func (m *Manager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conn != nil
}

func (m *Manager) Slot() model.Slot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slot
}

func (m *Manager) sendLocked(msg ws_room.InboundMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return m.conn.WriteMessage(websocket.TextMessage, payload)
}

func (m *Manager) readLoop(conn *websocket.Conn, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		default:
		}

		_, raw, err := conn.ReadMessage()
		if err != nil {
			m.mu.Lock()
			if m.conn == conn {
				m.conn = nil
			}
			m.mu.Unlock()
			return
		}

		var event ws_room.Event
		if err := json.Unmarshal(raw, &event); err != nil {
			continue
		}
		if m.handler != nil {
			m.handler(event)
		}
	}
}
