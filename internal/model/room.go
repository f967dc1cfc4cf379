package model

import (
	"time"

	"github.com/google/uuid"
)

type RoomStatus = string

const (
	StatusWaiting RoomStatus = "waiting"
	StatusActive  RoomStatus = "active"
	StatusMatched RoomStatus = "matched"
	StatusExpired RoomStatus = "expired"
)

type Slot = string

const (
	SlotA Slot = "A"
	SlotB Slot = "B"
)

// OtherSlot returns the opposing participant's slot.
func OtherSlot(s Slot) Slot {
	if s == SlotA {
		return SlotB
	}
	return SlotA
}

func IsValidSlot(s Slot) bool {
	return s == SlotA || s == SlotB
}

type Room struct {
	ID   uuid.UUID
	Code string
	PIN  string

	Status RoomStatus

	SlotAConnected bool
	SlotBConnected bool

	// Identity bindings are optional and write-once per slot.
	UserAID *uuid.UUID
	UserBID *uuid.UUID

	MoviePoolSeed  int32
	MatchedMovieID *int64

	CreatedAt time.Time
	ExpiresAt time.Time
}

func (r Room) IsExpiredAt(now time.Time) bool {
	return r.Status != StatusMatched && now.After(r.ExpiresAt)
}

func (r Room) SlotUserID(s Slot) *uuid.UUID {
	if s == SlotA {
		return r.UserAID
	}
	return r.UserBID
}

func (r Room) SlotConnected(s Slot) bool {
	if s == SlotA {
		return r.SlotAConnected
	}
	return r.SlotBConnected
}
