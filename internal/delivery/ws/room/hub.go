package ws_room

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/kinoduet/core/internal/metrics"
	"github.com/kinoduet/core/internal/model"
	usecase_room "github.com/kinoduet/core/internal/usecase/room"
	usecase_swipe "github.com/kinoduet/core/internal/usecase/swipe"
)

type roomEvent struct {
	roomCode string
	// target limits delivery to one slot; empty means both.
	target model.Slot
	event  Event
}

// Hub multiplexes swipe, presence and match events between exactly the
// two participants of each room. All emission goes through the single
// Run loop, so events for one room reach its clients in the order the
// server produced them.
type Hub struct {
	roomUC  *usecase_room.Usecase
	swipeUC *usecase_swipe.Usecase
	logger  *slog.Logger

	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan roomEvent

	// activation times for match duration metrics
	activatedAt map[string]time.Time

	mu sync.RWMutex
}

func NewHub(roomUC *usecase_room.Usecase, swipeUC *usecase_swipe.Usecase) *Hub {
	return &Hub{
		roomUC:      roomUC,
		swipeUC:     swipeUC,
		logger:      slog.Default(),
		rooms:       make(map[string]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		broadcast:   make(chan roomEvent, 64),
		activatedAt: make(map[string]time.Time),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case ev := <-h.broadcast:
			h.emit(ev)
		}
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()

	if _, exists := h.rooms[client.roomCode]; !exists {
		h.rooms[client.roomCode] = make(map[*Client]bool)
	}

	// A reconnect for a slot displaces the stale connection. Only the
	// displaced client's done channel is touched; its pumps still own
	// the send channel and drain out on their own.
	for other := range h.rooms[client.roomCode] {
		if other.slot == client.slot {
			delete(h.rooms[client.roomCode], other)
			other.shutdown()
		}
	}
	h.rooms[client.roomCode][client] = true
	h.mu.Unlock()

	metrics.ConnectedClients.Inc()
	h.logger.Info("client registered",
		"room", client.roomCode,
		"slot", client.slot)

	ctx := context.Background()
	if err := h.roomUC.SetSlotConnected(ctx, client.roomCode, client.slot, true); err != nil {
		h.logger.Error("failed to set presence", "error", err, "room", client.roomCode)
	}

	h.emit(roomEvent{
		roomCode: client.roomCode,
		target:   model.OtherSlot(client.slot),
		event:    Event{Type: EventUserJoined, Payload: SlotPayload{Slot: client.slot}},
	})

	room, err := h.roomUC.Room(ctx, client.roomCode)
	if err != nil {
		if errors.Is(err, usecase_room.ErrRoomExpired) {
			h.emit(roomEvent{
				roomCode: client.roomCode,
				event:    Event{Type: EventRoomExpired},
			})
		}
		return
	}

	if room.SlotAConnected && room.SlotBConnected {
		h.mu.Lock()
		if _, seen := h.activatedAt[client.roomCode]; !seen {
			h.activatedAt[client.roomCode] = time.Now()
		}
		h.mu.Unlock()
		h.emit(roomEvent{
			roomCode: client.roomCode,
			event:    Event{Type: EventRoomReady},
		})
	}

	h.sendPartnerLikes(ctx, client)
}

// sendPartnerLikes replays the partner's recorded likes to a client
// that just (re)connected, so injections lost to a transport drop are
// recovered.
func (h *Hub) sendPartnerLikes(ctx context.Context, client *Client) {
	likes, err := h.swipeUC.PartnerLikes(ctx, client.roomCode, client.slot)
	if err != nil {
		h.logger.Error("failed to load partner likes", "error", err, "room", client.roomCode)
		return
	}

	for _, mm := range likes {
		h.emit(roomEvent{
			roomCode: client.roomCode,
			target:   client.slot,
			event: Event{
				Type:    EventPartnerLiked,
				Payload: PartnerLikedPayload{Movie: moviePayload(mm)},
			},
		})
	}
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	removed := false
	emptied := false
	if roomClients, exists := h.rooms[client.roomCode]; exists {
		if _, ok := roomClients[client]; ok {
			delete(roomClients, client)
			client.shutdown()
			removed = true
		}
		if len(roomClients) == 0 {
			delete(h.rooms, client.roomCode)
			delete(h.activatedAt, client.roomCode)
			emptied = true
		}
	}
	h.mu.Unlock()

	if !removed {
		return
	}

	metrics.ConnectedClients.Dec()
	h.logger.Info("client unregistered",
		"room", client.roomCode,
		"slot", client.slot)

	if err := h.roomUC.SetSlotConnected(context.Background(), client.roomCode, client.slot, false); err != nil &&
		!errors.Is(err, usecase_room.ErrRoomNotFound) {
		h.logger.Error("failed to clear presence", "error", err, "room", client.roomCode)
	}

	h.emit(roomEvent{
		roomCode: client.roomCode,
		target:   model.OtherSlot(client.slot),
		event:    Event{Type: EventUserLeft, Payload: SlotPayload{Slot: client.slot}},
	})

	if emptied {
		h.freeIfMatched(client.roomCode)
	}
}

// freeIfMatched tears a room down once the last client has left it and
// the match is already delivered. Codes are single-use, so a matched
// room with nobody connected has served its purpose.
func (h *Hub) freeIfMatched(code string) {
	ctx := context.Background()

	room, err := h.roomUC.Room(ctx, code)
	if err != nil {
		if !errors.Is(err, usecase_room.ErrRoomNotFound) && !errors.Is(err, usecase_room.ErrRoomExpired) {
			h.logger.Error("failed to load room for teardown", "error", err, "room", code)
		}
		return
	}
	if room.Status != model.StatusMatched {
		return
	}

	if err := h.roomUC.Free(ctx, code); err != nil {
		h.logger.Error("failed to free matched room", "error", err, "room", code)
		return
	}
	h.logger.Info("matched room freed", "room", code)
}

// HandleSwipe runs the match detection engine for one inbound swipe
// and fans the outcome out to the room. Called from client read pumps;
// ordering per room is restored by the broadcast channel.
func (h *Hub) HandleSwipe(client *Client, movieID int64, action model.SwipeAction) {
	ctx := context.Background()

	outcome, err := h.swipeUC.Swipe(ctx, client.roomCode, movieID, client.slot, action)
	if err != nil {
		h.handleSwipeError(client, err)
		return
	}

	switch outcome.Kind {
	case usecase_swipe.OutcomeDuplicate, usecase_swipe.OutcomeAlreadyMatched:
		// Idempotent no-ops: nothing new to tell anyone.
		return

	case usecase_swipe.OutcomeRecorded:
		metrics.SwipesTotal.WithLabelValues(action).Inc()

	case usecase_swipe.OutcomePartnerNotified:
		metrics.SwipesTotal.WithLabelValues(action).Inc()
		mm := outcome.Movie
		if mm == nil {
			mm = &model.MovieMeta{TmdbID: movieID}
		}
		h.broadcast <- roomEvent{
			roomCode: client.roomCode,
			target:   model.OtherSlot(client.slot),
			event: Event{
				Type:    EventPartnerLiked,
				Payload: PartnerLikedPayload{Movie: moviePayload(mm)},
			},
		}

	case usecase_swipe.OutcomeMatched:
		metrics.SwipesTotal.WithLabelValues(action).Inc()
		metrics.RoomsMatched.Inc()
		h.observeMatchDuration(client.roomCode)
		h.broadcast <- roomEvent{
			roomCode: client.roomCode,
			event: Event{
				Type:    EventMatchFound,
				Payload: MatchFoundPayload{MovieID: movieID},
			},
		}
		return
	}

	h.broadcast <- roomEvent{
		roomCode: client.roomCode,
		event: Event{
			Type: EventSwipeProgress,
			Payload: SwipeProgressPayload{
				Slot:        client.slot,
				TotalSwiped: outcome.TotalSwiped,
			},
		},
	}
}

func (h *Hub) handleSwipeError(client *Client, err error) {
	switch {
	case errors.Is(err, usecase_swipe.ErrRoomExpired):
		metrics.RoomsExpired.Inc()
		h.broadcast <- roomEvent{
			roomCode: client.roomCode,
			event:    Event{Type: EventRoomExpired},
		}
	case errors.Is(err, usecase_swipe.ErrMatchConflict):
		h.broadcast <- roomEvent{
			roomCode: client.roomCode,
			target:   client.slot,
			event: Event{
				Type:    EventError,
				Payload: ErrorPayload{Message: "room matched on a different movie, refetch"},
			},
		}
	default:
		h.logger.Error("swipe failed", "error", err, "room", client.roomCode)
		h.broadcast <- roomEvent{
			roomCode: client.roomCode,
			target:   client.slot,
			event: Event{
				Type:    EventError,
				Payload: ErrorPayload{Message: "swipe failed"},
			},
		}
	}
}

func (h *Hub) observeMatchDuration(roomCode string) {
	h.mu.RLock()
	activated, ok := h.activatedAt[roomCode]
	h.mu.RUnlock()
	if ok {
		metrics.MatchDuration.Observe(time.Since(activated).Seconds())
	}
}

func (h *Hub) emit(ev roomEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	roomClients, exists := h.rooms[ev.roomCode]
	if !exists {
		return
	}

	for client := range roomClients {
		if ev.target != "" && client.slot != ev.target {
			continue
		}
		select {
		case client.send <- ev.event:
		default:
			// Slow client: drop it rather than stall the room. shutdown
			// only signals done; the pumps tear the connection down.
			client.shutdown()
			delete(roomClients, client)
		}
	}
}

func moviePayload(mm *model.MovieMeta) MoviePayload {
	return MoviePayload{
		TmdbID:     mm.TmdbID,
		MediaType:  mm.MediaType,
		Title:      mm.Title,
		Year:       mm.Year,
		Rating:     mm.Rating,
		Genres:     mm.Genres,
		Overview:   mm.Overview,
		PosterLink: mm.PosterLink,
	}
}
