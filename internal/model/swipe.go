package model

import (
	"time"

	"github.com/google/uuid"
)

type SwipeAction = string

const (
	ActionLike SwipeAction = "like"
	ActionSkip SwipeAction = "skip"
)

func IsValidAction(a SwipeAction) bool {
	return a == ActionLike || a == ActionSkip
}

// Swipe is one participant's verdict on one movie within a room.
// At most one swipe may exist per (room, movie, slot).
type Swipe struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	MovieID   int64
	Slot      Slot
	Action    SwipeAction
	CreatedAt time.Time
}
