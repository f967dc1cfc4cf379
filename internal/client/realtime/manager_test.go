package realtime

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	ws_room "github.com/kinoduet/core/internal/delivery/ws/room"
	"github.com/kinoduet/core/internal/model"
	usecase_room "github.com/kinoduet/core/internal/usecase/room"
	room_repo_mocks "github.com/kinoduet/core/internal/usecase/room/mocks/repository"
	usecase_swipe "github.com/kinoduet/core/internal/usecase/swipe"
	movielookup_mocks "github.com/kinoduet/core/internal/usecase/swipe/mocks/movielookup"
	swipe_repo_mocks "github.com/kinoduet/core/internal/usecase/swipe/mocks/repository"
	roomstore_mocks "github.com/kinoduet/core/internal/usecase/swipe/mocks/roomstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	channelRoomCode = "K7KQ2M"
	channelRoomPIN  = "123456"
)

// channelHarness runs the real upgrade path end to end: gin router,
// controller authorization, hub, pumps. Only the repositories are
// mocked.
type channelHarness struct {
	baseURL   string
	roomRepo  *room_repo_mocks.RoomRepository
	swipeRepo *swipe_repo_mocks.SwipeRepository
	roomStore *roomstore_mocks.RoomStore
	movies    *movielookup_mocks.MovieLookup
	events    chan ws_room.Event
}

func newChannelHarness(t *testing.T) *channelHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	roomRepo := room_repo_mocks.NewRoomRepository(t)
	swipeRepo := swipe_repo_mocks.NewSwipeRepository(t)
	roomStore := roomstore_mocks.NewRoomStore(t)
	movies := movielookup_mocks.NewMovieLookup(t)

	roomUC := usecase_room.New(roomRepo, 30*time.Minute, 20)
	hub := ws_room.NewHub(roomUC, usecase_swipe.New(swipeRepo, roomStore, movies))
	go hub.Run()

	engine := gin.New()
	ws_room.NewController(hub, roomUC).RegisterRoutes(engine.Group("/api/v1"))
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	return &channelHarness{
		baseURL:   "ws" + strings.TrimPrefix(srv.URL, "http"),
		roomRepo:  roomRepo,
		swipeRepo: swipeRepo,
		roomStore: roomStore,
		movies:    movies,
		events:    make(chan ws_room.Event, 16),
	}
}

func (h *channelHarness) manager() *Manager {
	return New(h.baseURL, func(event ws_room.Event) {
		h.events <- event
	})
}

func (h *channelHarness) liveRoom(id uuid.UUID) model.Room {
	now := time.Now()
	return model.Room{
		ID:             id,
		Code:           channelRoomCode,
		PIN:            channelRoomPIN,
		Status:         model.StatusWaiting,
		SlotAConnected: true,
		MoviePoolSeed:  424242,
		CreatedAt:      now,
		ExpiresAt:      now.Add(30 * time.Minute),
	}
}

// waitForEvent skips over unrelated events; channel traffic is
// interleaved presence and progress.
func (h *channelHarness) waitForEvent(t *testing.T, eventType string) ws_room.Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-h.events:
			if ev.Type == eventType {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %q", eventType)
			return ws_room.Event{}
		}
	}
}

func TestManagerConnectSwipeDisconnect(t *testing.T) {
	h := newChannelHarness(t)
	roomID := uuid.New()

	h.roomRepo.On("ByCode", mock.Anything, channelRoomCode).
		Return(h.liveRoom(roomID), nil)
	h.roomRepo.On("SetSlotConnected", mock.Anything, channelRoomCode, model.SlotA, mock.Anything).
		Return(nil)
	h.roomStore.On("ByCode", mock.Anything, channelRoomCode).
		Return(h.liveRoom(roomID), nil)
	h.swipeRepo.On("LikedMovieIDs", mock.Anything, roomID, model.SlotB).
		Return([]int64{77}, nil)
	h.movies.On("ByTmdbID", mock.Anything, int64(77)).
		Return(&model.MovieMeta{TmdbID: 77, Title: "Heat"}, nil)

	m := h.manager()
	require.NoError(t, m.Connect(channelRoomCode, model.SlotA, channelRoomPIN, false))
	assert.True(t, m.Connected())
	assert.Equal(t, model.SlotA, m.Slot())

	assert.ErrorIs(t, m.Connect(channelRoomCode, model.SlotA, channelRoomPIN, false), ErrAlreadyConnected)

	// The partner's recorded like is replayed over the fresh channel.
	liked := h.waitForEvent(t, ws_room.EventPartnerLiked)
	payload, ok := liked.Payload.(map[string]interface{})
	require.True(t, ok)
	movie, ok := payload["movie"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(77), movie["tmdb_id"])

	h.swipeRepo.On("Insert", mock.Anything, mock.AnythingOfType("model.Swipe")).
		Return(true, nil).Once()
	h.swipeRepo.On("CountBySlot", mock.Anything, roomID, model.SlotA).
		Return(1, nil).Once()
	h.swipeRepo.On("HasLike", mock.Anything, roomID, int64(88), model.SlotB).
		Return(false, nil).Once()
	h.movies.On("ByTmdbID", mock.Anything, int64(88)).
		Return(&model.MovieMeta{TmdbID: 88}, nil)

	require.NoError(t, m.Swipe(88, model.ActionLike))

	progress := h.waitForEvent(t, ws_room.EventSwipeProgress)
	payload, ok = progress.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), payload["total_swiped"])

	require.NoError(t, m.Disconnect())
	assert.False(t, m.Connected())
	assert.ErrorIs(t, m.Swipe(89, model.ActionLike), ErrNotConnected)
}

func TestManagerReconnectReusesSlot(t *testing.T) {
	h := newChannelHarness(t)
	roomID := uuid.New()

	h.roomRepo.On("ByCode", mock.Anything, channelRoomCode).
		Return(h.liveRoom(roomID), nil)
	h.roomRepo.On("SetSlotConnected", mock.Anything, channelRoomCode, model.SlotA, mock.Anything).
		Return(nil)
	h.roomStore.On("ByCode", mock.Anything, channelRoomCode).
		Return(h.liveRoom(roomID), nil)
	h.swipeRepo.On("LikedMovieIDs", mock.Anything, roomID, model.SlotB).
		Return([]int64{77}, nil)
	h.movies.On("ByTmdbID", mock.Anything, int64(77)).
		Return(&model.MovieMeta{TmdbID: 77, Title: "Heat"}, nil)

	m := h.manager()
	require.NoError(t, m.Connect(channelRoomCode, model.SlotA, channelRoomPIN, false))
	h.waitForEvent(t, ws_room.EventPartnerLiked)
	require.NoError(t, m.Disconnect())

	// The slot survives the drop; reconnecting replays pending likes
	// again instead of re-running join side effects.
	require.NoError(t, m.Connect(channelRoomCode, model.SlotA, channelRoomPIN, false))
	assert.True(t, m.Connected())
	assert.Equal(t, model.SlotA, m.Slot())
	h.waitForEvent(t, ws_room.EventPartnerLiked)
}

func TestManagerConnectRejectedOnWrongPin(t *testing.T) {
	h := newChannelHarness(t)
	roomID := uuid.New()

	h.roomRepo.On("ByCode", mock.Anything, channelRoomCode).
		Return(h.liveRoom(roomID), nil)
	h.roomRepo.On("SetSlotConnected", mock.Anything, channelRoomCode, model.SlotA, mock.Anything).
		Return(nil).Maybe()
	h.roomStore.On("ByCode", mock.Anything, channelRoomCode).
		Return(h.liveRoom(roomID), nil).Maybe()
	h.swipeRepo.On("LikedMovieIDs", mock.Anything, roomID, model.SlotB).
		Return([]int64{}, nil).Maybe()

	m := h.manager()

	err := m.Connect(channelRoomCode, model.SlotA, "999999", false)
	assert.Error(t, err)
	assert.False(t, m.Connected())

	// A share-link join skips the pin check.
	require.NoError(t, m.Connect(channelRoomCode, model.SlotA, "", true))
	assert.True(t, m.Connected())
}
