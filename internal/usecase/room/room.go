package usecase_room

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kinoduet/core/internal/model"
)

var (
	ErrCodeConflict     = errors.New("code conflict")
	ErrRoomsUnavailable = errors.New("no available rooms")
	ErrRoomNotFound     = errors.New("room not found")
	ErrInvalidPin       = errors.New("invalid pin")
	ErrRoomFull         = errors.New("room is full")
	ErrRoomExpired      = errors.New("room expired")
	ErrRoomMatched      = errors.New("room already matched")
	ErrInternal         = errors.New("internal error")
)

//go:generate mockery --name=RoomRepository --output=./mocks/repository --filename=repository.go
type RoomRepository interface {
	Create(ctx context.Context, room model.Room) error
	ByCode(ctx context.Context, code string) (model.Room, error)

	// ClaimSlot captures the first unconnected slot inside a row-locked
	// transaction. Exactly one of two concurrent callers may take the
	// last open slot; the other gets ErrRoomFull. When userID is set and
	// the claimed slot has no identity bound yet, it is bound; an already
	// bound identity is never overwritten. Filling the second slot moves
	// the room waiting -> active in the same transaction.
	ClaimSlot(ctx context.Context, code string, userID *uuid.UUID) (model.Slot, model.Room, error)

	SetSlotConnected(ctx context.Context, code string, slot model.Slot, connected bool) error

	// MarkExpired flips waiting|active -> expired. A room already matched
	// or expired is left untouched.
	MarkExpired(ctx context.Context, code string) error
	ExpireStale(ctx context.Context, now time.Time) (int64, error)

	DeleteByCode(ctx context.Context, code string) error
}

type CreatedRoom struct {
	Code string
	PIN  string
	Seed int32
}

type JoinResult struct {
	Slot                 model.Slot
	PoolSeed             int32
	PartnerAuthenticated bool
}

type Usecase struct {
	repository RoomRepository

	ttl time.Duration

	// Stale rooms are swept on every Nth creation.
	cleanupPeriod int
	createsCount  int
}

func New(repository RoomRepository, ttl time.Duration, cleanup int) *Usecase {
	if ttl <= 0 {
		ttl = 30 * time.Minute /* default */
	}
	if cleanup <= 0 {
		cleanup = 20 /* default */
	}

	return &Usecase{
		repository:    repository,
		ttl:           ttl,
		cleanupPeriod: cleanup,
	}
}

func (u *Usecase) Create(ctx context.Context) (CreatedRoom, error) {
	u.createsCount++
	if u.createsCount%u.cleanupPeriod == 0 {
		if _, err := u.repository.ExpireStale(ctx, time.Now()); err != nil {
			return CreatedRoom{}, errors.Join(ErrInternal, err)
		}
	}

	return u.createRoom(ctx)
}

// Assuming that codes can conflict.
// Retrying...
func (u *Usecase) createRoom(ctx context.Context) (CreatedRoom, error) {
	var retries = 3
	for retries > 0 {
		now := time.Now()
		room := model.Room{
			ID:            uuid.New(),
			Code:          buildRoomCode(),
			PIN:           buildPin(),
			Status:        model.StatusWaiting,
			MoviePoolSeed: rand.Int31(),
			CreatedAt:     now,
			ExpiresAt:     now.Add(u.ttl),
		}
		if err := u.repository.Create(ctx, room); err != nil {
			if errors.Is(err, ErrCodeConflict) {
				retries--
			} else {
				return CreatedRoom{}, errors.Join(ErrInternal, err)
			}
		} else {
			return CreatedRoom{
				Code: room.Code,
				PIN:  room.PIN,
				Seed: room.MoviePoolSeed,
			}, nil
		}
	}
	return CreatedRoom{}, ErrRoomsUnavailable
}

const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func buildRoomCode() string {
	const codeLen = 6
	var builder strings.Builder
	builder.Grow(codeLen)

	for i := 0; i < codeLen; i++ {
		builder.WriteByte(roomCodeAlphabet[rand.Intn(len(roomCodeAlphabet))])
	}

	return builder.String()
}

func buildPin() string {
	const pinLen = 6
	var builder strings.Builder
	builder.Grow(pinLen)

	for i := 0; i < pinLen; i++ {
		builder.WriteByte(byte(rand.Intn(10)) + '0')
	}

	return builder.String()
}

// Join resolves a PIN-protected or deep-link join to a slot. viaLink
// skips PIN validation: possession of the deep link already proves
// possession of code+PIN. Incoming userID == nil ~ anonymous join.
func (u *Usecase) Join(ctx context.Context, code string, pin string, viaLink bool, userID *uuid.UUID) (JoinResult, error) {
	room, err := u.loadLive(ctx, code)
	if err != nil {
		return JoinResult{}, err
	}

	if room.Status == model.StatusMatched {
		return JoinResult{}, ErrRoomMatched
	}

	if !viaLink && room.PIN != pin {
		return JoinResult{}, ErrInvalidPin
	}

	// An authenticated participant re-joining keeps its slot; a second
	// join must not re-run slot assignment.
	if userID != nil {
		if slot, ok := boundSlot(room, *userID); ok {
			return JoinResult{
				Slot:                 slot,
				PoolSeed:             room.MoviePoolSeed,
				PartnerAuthenticated: room.SlotUserID(model.OtherSlot(slot)) != nil,
			}, nil
		}
	}

	slot, claimed, err := u.repository.ClaimSlot(ctx, code, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrRoomFull):
			return JoinResult{}, ErrRoomFull
		case errors.Is(err, ErrRoomNotFound):
			return JoinResult{}, ErrRoomNotFound
		default:
			return JoinResult{}, errors.Join(ErrInternal, err)
		}
	}

	return JoinResult{
		Slot:                 slot,
		PoolSeed:             claimed.MoviePoolSeed,
		PartnerAuthenticated: claimed.SlotUserID(model.OtherSlot(slot)) != nil,
	}, nil
}

func boundSlot(room model.Room, userID uuid.UUID) (model.Slot, bool) {
	if room.UserAID != nil && *room.UserAID == userID {
		return model.SlotA, true
	}
	if room.UserBID != nil && *room.UserBID == userID {
		return model.SlotB, true
	}
	return "", false
}

// loadLive reads a room and lazily expires it when past its deadline.
func (u *Usecase) loadLive(ctx context.Context, code string) (model.Room, error) {
	room, err := u.repository.ByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return model.Room{}, ErrRoomNotFound
		}
		return model.Room{}, errors.Join(ErrInternal, err)
	}

	if room.Status == model.StatusExpired {
		return model.Room{}, ErrRoomExpired
	}

	if room.IsExpiredAt(time.Now()) {
		if err := u.repository.MarkExpired(ctx, code); err != nil {
			return model.Room{}, errors.Join(ErrInternal, err)
		}
		return model.Room{}, ErrRoomExpired
	}

	return room, nil
}

func (u *Usecase) Room(ctx context.Context, code string) (model.Room, error) {
	return u.loadLive(ctx, code)
}

func (u *Usecase) Status(ctx context.Context, code string) (model.RoomStatus, error) {
	room, err := u.loadLive(ctx, code)
	if err != nil {
		if errors.Is(err, ErrRoomExpired) {
			return model.StatusExpired, nil
		}
		return "", err
	}
	return room.Status, nil
}

// SetSlotConnected flips live presence only. Slot identity persistence
// is untouched, so a transport drop never loses the slot binding.
func (u *Usecase) SetSlotConnected(ctx context.Context, code string, slot model.Slot, connected bool) error {
	if err := u.repository.SetSlotConnected(ctx, code, slot, connected); err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (u *Usecase) Free(ctx context.Context, code string) error {
	if err := u.repository.DeleteByCode(ctx, code); err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	return nil
}

// SweepExpired is the background counterpart of the lazy expiry check.
func (u *Usecase) SweepExpired(ctx context.Context) (int64, error) {
	n, err := u.repository.ExpireStale(ctx, time.Now())
	if err != nil {
		return 0, errors.Join(ErrInternal, err)
	}
	return n, nil
}
