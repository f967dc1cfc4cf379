package usecase_swipe

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kinoduet/core/internal/model"
	usecase_room "github.com/kinoduet/core/internal/usecase/room"
)

var (
	ErrRoomNotFound  = usecase_room.ErrRoomNotFound
	ErrRoomExpired   = usecase_room.ErrRoomExpired
	ErrMatchConflict = errors.New("matched movie differs")
	ErrInvalidSwipe  = errors.New("invalid swipe")
	ErrInternal      = errors.New("internal error")
)

//go:generate mockery --name=SwipeRepository --output=./mocks/repository --filename=repository.go
type SwipeRepository interface {
	// Insert records the swipe. A duplicate (room, movie, slot) insert
	// reports created == false and leaves the stored row untouched.
	Insert(ctx context.Context, swipe model.Swipe) (created bool, err error)
	HasLike(ctx context.Context, roomID uuid.UUID, movieID int64, slot model.Slot) (bool, error)
	CountBySlot(ctx context.Context, roomID uuid.UUID, slot model.Slot) (int, error)
	LikedMovieIDs(ctx context.Context, roomID uuid.UUID, slot model.Slot) ([]int64, error)
}

//go:generate mockery --name=RoomStore --output=./mocks/roomstore --filename=roomstore.go
type RoomStore interface {
	ByCode(ctx context.Context, code string) (model.Room, error)
	MarkExpired(ctx context.Context, code string) error

	// TryMatch is the single conditional transition active -> matched.
	// Exactly one concurrent caller wins; the rest observe won == false.
	TryMatch(ctx context.Context, code string, movieID int64) (won bool, err error)
}

//go:generate mockery --name=MovieLookup --output=./mocks/movielookup --filename=movielookup.go
type MovieLookup interface {
	ByTmdbID(ctx context.Context, tmdbID int64) (*model.MovieMeta, error)
}

type OutcomeKind int

const (
	// OutcomeRecorded: swipe stored, nothing to notify.
	OutcomeRecorded OutcomeKind = iota
	// OutcomeDuplicate: same (room, movie, slot) seen before; no-op.
	OutcomeDuplicate
	// OutcomePartnerNotified: a like the partner has not mirrored yet.
	OutcomePartnerNotified
	// OutcomeMatched: this swipe won the match transition.
	OutcomeMatched
	// OutcomeAlreadyMatched: the room matched on this same movie first;
	// idempotent success for the race loser.
	OutcomeAlreadyMatched
)

type Outcome struct {
	Kind    OutcomeKind
	MovieID int64
	Slot    model.Slot

	// Movie metadata for partner_liked payloads; nil when the metadata
	// cache has no record (the partner client falls back to the id).
	Movie *model.MovieMeta

	// TotalSwiped is the acting slot's swipe count after this swipe.
	TotalSwiped int
}

// Usecase is the server-side authority on matches. Clients only ever
// render a match after this engine confirms it.
type Usecase struct {
	swipes SwipeRepository
	rooms  RoomStore
	movies MovieLookup
}

func New(swipes SwipeRepository, rooms RoomStore, movies MovieLookup) *Usecase {
	return &Usecase{
		swipes: swipes,
		rooms:  rooms,
		movies: movies,
	}
}

// Swipe runs the match detection algorithm for one incoming swipe:
// persist (idempotently), then on a like check the opposing slot and
// either win the match transition or report the like for injection.
func (u *Usecase) Swipe(ctx context.Context, code string, movieID int64, slot model.Slot, action model.SwipeAction) (Outcome, error) {
	if !model.IsValidSlot(slot) || !model.IsValidAction(action) || movieID <= 0 {
		return Outcome{}, ErrInvalidSwipe
	}

	room, err := u.liveRoom(ctx, code)
	if err != nil {
		return Outcome{}, err
	}

	if room.Status == model.StatusMatched {
		return u.resolveLateSwipe(room, movieID, slot)
	}

	created, err := u.swipes.Insert(ctx, model.Swipe{
		ID:        uuid.New(),
		RoomID:    room.ID,
		MovieID:   movieID,
		Slot:      slot,
		Action:    action,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return Outcome{}, errors.Join(ErrInternal, err)
	}
	if !created {
		return Outcome{Kind: OutcomeDuplicate, MovieID: movieID, Slot: slot}, nil
	}

	total, err := u.swipes.CountBySlot(ctx, room.ID, slot)
	if err != nil {
		return Outcome{}, errors.Join(ErrInternal, err)
	}

	if action == model.ActionSkip {
		return Outcome{Kind: OutcomeRecorded, MovieID: movieID, Slot: slot, TotalSwiped: total}, nil
	}

	partnerLiked, err := u.swipes.HasLike(ctx, room.ID, movieID, model.OtherSlot(slot))
	if err != nil {
		return Outcome{}, errors.Join(ErrInternal, err)
	}

	if !partnerLiked {
		// The room may have matched between the liveRoom read and here.
		// Re-read before promising a notification so a partner_liked
		// never trails its room's match_found.
		current, err := u.rooms.ByCode(ctx, code)
		if err != nil {
			return Outcome{}, errors.Join(ErrInternal, err)
		}
		if current.Status == model.StatusMatched {
			return u.resolveLateSwipe(current, movieID, slot)
		}
		return Outcome{
			Kind:        OutcomePartnerNotified,
			MovieID:     movieID,
			Slot:        slot,
			Movie:       u.lookupMovie(ctx, movieID),
			TotalSwiped: total,
		}, nil
	}

	won, err := u.rooms.TryMatch(ctx, code, movieID)
	if err != nil {
		return Outcome{}, errors.Join(ErrInternal, err)
	}
	if won {
		return Outcome{
			Kind:        OutcomeMatched,
			MovieID:     movieID,
			Slot:        slot,
			Movie:       u.lookupMovie(ctx, movieID),
			TotalSwiped: total,
		}, nil
	}

	// Lost the transition race: someone else flipped the room first.
	room, err = u.rooms.ByCode(ctx, code)
	if err != nil {
		return Outcome{}, errors.Join(ErrInternal, err)
	}
	return u.resolveLateSwipe(room, movieID, slot)
}

// resolveLateSwipe classifies a swipe that arrived at (or raced into) a
// matched room: agreeing on the matched movie is an idempotent success,
// anything else is a conflict the client reconciles by refetching.
func (u *Usecase) resolveLateSwipe(room model.Room, movieID int64, slot model.Slot) (Outcome, error) {
	if room.MatchedMovieID != nil && *room.MatchedMovieID == movieID {
		return Outcome{Kind: OutcomeAlreadyMatched, MovieID: movieID, Slot: slot}, nil
	}
	return Outcome{}, ErrMatchConflict
}

func (u *Usecase) liveRoom(ctx context.Context, code string) (model.Room, error) {
	room, err := u.rooms.ByCode(ctx, code)
	if err != nil {
		if errors.Is(err, usecase_room.ErrRoomNotFound) {
			return model.Room{}, ErrRoomNotFound
		}
		return model.Room{}, errors.Join(ErrInternal, err)
	}

	if room.Status == model.StatusExpired {
		return model.Room{}, ErrRoomExpired
	}
	if room.IsExpiredAt(time.Now()) {
		if err := u.rooms.MarkExpired(ctx, code); err != nil {
			return model.Room{}, errors.Join(ErrInternal, err)
		}
		return model.Room{}, ErrRoomExpired
	}

	return room, nil
}

// Progress reports a slot's swipe count for swipe_progress events.
func (u *Usecase) Progress(ctx context.Context, code string, slot model.Slot) (int, error) {
	room, err := u.rooms.ByCode(ctx, code)
	if err != nil {
		if errors.Is(err, usecase_room.ErrRoomNotFound) {
			return 0, ErrRoomNotFound
		}
		return 0, errors.Join(ErrInternal, err)
	}

	total, err := u.swipes.CountBySlot(ctx, room.ID, slot)
	if err != nil {
		return 0, errors.Join(ErrInternal, err)
	}
	return total, nil
}

// PartnerLikes lists the opposing slot's liked movies in swipe order.
// Served to a (re)connecting participant so pending injections survive
// a transport drop.
func (u *Usecase) PartnerLikes(ctx context.Context, code string, slot model.Slot) ([]*model.MovieMeta, error) {
	room, err := u.rooms.ByCode(ctx, code)
	if err != nil {
		if errors.Is(err, usecase_room.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errors.Join(ErrInternal, err)
	}

	ids, err := u.swipes.LikedMovieIDs(ctx, room.ID, model.OtherSlot(slot))
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	likes := make([]*model.MovieMeta, 0, len(ids))
	for _, id := range ids {
		if mm := u.lookupMovie(ctx, id); mm != nil {
			likes = append(likes, mm)
		} else {
			likes = append(likes, &model.MovieMeta{TmdbID: id})
		}
	}
	return likes, nil
}

func (u *Usecase) lookupMovie(ctx context.Context, movieID int64) *model.MovieMeta {
	// Metadata is best-effort decoration; a cache miss or upstream
	// failure must not abort an otherwise valid swipe.
	mm, err := u.movies.ByTmdbID(ctx, movieID)
	if err != nil {
		return nil
	}
	return mm
}
