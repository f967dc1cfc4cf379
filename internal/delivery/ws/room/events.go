package ws_room

// Client -> server event types.
const (
	EventJoinRoom  = "join_room"
	EventSwipe     = "swipe"
	EventLeaveRoom = "leave_room"
)

// Server -> client event types.
const (
	EventUserJoined    = "user_joined"
	EventUserLeft      = "user_left"
	EventRoomReady     = "room_ready"
	EventSwipeProgress = "swipe_progress"
	EventPartnerLiked  = "partner_liked"
	EventMatchFound    = "match_found"
	EventRoomExpired   = "room_expired"
	EventError         = "error"
)

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// InboundMessage is the envelope for every client -> server event.
type InboundMessage struct {
	Type     string `json:"type"`
	RoomCode string `json:"room_code"`
	Slot     string `json:"slot"`
	MovieID  int64  `json:"movie_id,omitempty"`
	Action   string `json:"action,omitempty"`
}

type SlotPayload struct {
	Slot string `json:"slot"`
}

type SwipeProgressPayload struct {
	Slot        string `json:"slot"`
	TotalSwiped int    `json:"total_swiped"`
}

type PartnerLikedPayload struct {
	Movie MoviePayload `json:"movie"`
}

type MatchFoundPayload struct {
	MovieID int64 `json:"movie_id"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

type MoviePayload struct {
	TmdbID     int64    `json:"tmdb_id"`
	MediaType  string   `json:"media_type,omitempty"`
	Title      string   `json:"title,omitempty"`
	Year       int      `json:"year,omitempty"`
	Rating     float64  `json:"rating,omitempty"`
	Genres     []string `json:"genres,omitempty"`
	Overview   string   `json:"overview,omitempty"`
	PosterLink string   `json:"poster_link,omitempty"`
}
