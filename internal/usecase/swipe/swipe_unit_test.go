package usecase_swipe

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kinoduet/core/internal/model"
	movielookup_mocks "github.com/kinoduet/core/internal/usecase/swipe/mocks/movielookup"
	repo_mocks "github.com/kinoduet/core/internal/usecase/swipe/mocks/repository"
	roomstore_mocks "github.com/kinoduet/core/internal/usecase/swipe/mocks/roomstore"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// swipeMatcher ignores the generated ID and timestamp.
func swipeMatcher(roomID uuid.UUID, movieID int64, slot model.Slot, action model.SwipeAction) interface{} {
	return mock.MatchedBy(func(s model.Swipe) bool {
		return s.RoomID == roomID && s.MovieID == movieID && s.Slot == slot && s.Action == action
	})
}

type UsecaseSwipeUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase   *Usecase
	swipeRepo *repo_mocks.SwipeRepository
	roomStore *roomstore_mocks.RoomStore
	movies    *movielookup_mocks.MovieLookup
	ctx       context.Context
}

func initResources(t provider.T) *resources {
	swipeRepo := repo_mocks.NewSwipeRepository(t)
	roomStore := roomstore_mocks.NewRoomStore(t)
	movies := movielookup_mocks.NewMovieLookup(t)

	return &resources{
		usecase:   New(swipeRepo, roomStore, movies),
		swipeRepo: swipeRepo,
		roomStore: roomStore,
		movies:    movies,
		ctx:       context.Background(),
	}
}

const (
	roomCode = "K7KQ2M"
	movieID  = int64(77)
)

func activeRoom() model.Room {
	now := time.Now()
	return model.Room{
		ID:             uuid.New(),
		Code:           roomCode,
		PIN:            "000000",
		Status:         model.StatusActive,
		SlotAConnected: true,
		SlotBConnected: true,
		MoviePoolSeed:  424242,
		CreatedAt:      now,
		ExpiresAt:      now.Add(30 * time.Minute),
	}
}

func matchedRoom(matchedID int64) model.Room {
	room := activeRoom()
	room.Status = model.StatusMatched
	room.MatchedMovieID = &matchedID
	return room
}

func movieMeta() *model.MovieMeta {
	return &model.MovieMeta{
		TmdbID:    movieID,
		MediaType: model.MediaTypeMovie,
		Title:     "Heat",
		Year:      1995,
		Rating:    8.3,
	}
}

func (suite *UsecaseSwipeUnitSuite) TestSwipe(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		movieID       int64
		slot          model.Slot
		action        model.SwipeAction
		setupMocks    func(r *resources, room model.Room)
		expectedKind  OutcomeKind
		expectedTotal int
		expectMovie   bool
		expectError   bool
		expectedError error
	}{
		{
			name:    "Should record a skip without partner checks",
			movieID: movieID,
			slot:    model.SlotA,
			action:  model.ActionSkip,
			setupMocks: func(r *resources, room model.Room) {
				r.roomStore.On("ByCode", r.ctx, roomCode).Return(room, nil).Once()
				r.swipeRepo.On("Insert", r.ctx, swipeMatcher(room.ID, movieID, model.SlotA, model.ActionSkip)).
					Return(true, nil).Once()
				r.swipeRepo.On("CountBySlot", r.ctx, room.ID, model.SlotA).Return(4, nil).Once()
			},
			expectedKind:  OutcomeRecorded,
			expectedTotal: 4,
		},
		{
			name:    "Should notify partner on an unmirrored like",
			movieID: movieID,
			slot:    model.SlotA,
			action:  model.ActionLike,
			setupMocks: func(r *resources, room model.Room) {
				r.roomStore.On("ByCode", r.ctx, roomCode).Return(room, nil).Once()
				r.swipeRepo.On("Insert", r.ctx, swipeMatcher(room.ID, movieID, model.SlotA, model.ActionLike)).
					Return(true, nil).Once()
				r.swipeRepo.On("CountBySlot", r.ctx, room.ID, model.SlotA).Return(1, nil).Once()
				r.swipeRepo.On("HasLike", r.ctx, room.ID, movieID, model.SlotB).Return(false, nil).Once()
				r.roomStore.On("ByCode", r.ctx, roomCode).Return(room, nil).Once()
				r.movies.On("ByTmdbID", r.ctx, movieID).Return(movieMeta(), nil).Once()
			},
			expectedKind:  OutcomePartnerNotified,
			expectedTotal: 1,
			expectMovie:   true,
		},
		{
			name:    "Should resolve a like that raced into a match on the same movie",
			movieID: movieID,
			slot:    model.SlotA,
			action:  model.ActionLike,
			setupMocks: func(r *resources, room model.Room) {
				r.roomStore.On("ByCode", r.ctx, roomCode).Return(room, nil).Once()
				r.swipeRepo.On("Insert", r.ctx, swipeMatcher(room.ID, movieID, model.SlotA, model.ActionLike)).
					Return(true, nil).Once()
				r.swipeRepo.On("CountBySlot", r.ctx, room.ID, model.SlotA).Return(2, nil).Once()
				r.swipeRepo.On("HasLike", r.ctx, room.ID, movieID, model.SlotB).Return(false, nil).Once()
				r.roomStore.On("ByCode", r.ctx, roomCode).Return(matchedRoom(movieID), nil).Once()
			},
			expectedKind: OutcomeAlreadyMatched,
		},
		{
			name:    "Should conflict when a like raced into a match on another movie",
			movieID: 9000,
			slot:    model.SlotA,
			action:  model.ActionLike,
			setupMocks: func(r *resources, room model.Room) {
				r.roomStore.On("ByCode", r.ctx, roomCode).Return(room, nil).Once()
				r.swipeRepo.On("Insert", r.ctx, swipeMatcher(room.ID, 9000, model.SlotA, model.ActionLike)).
					Return(true, nil).Once()
				r.swipeRepo.On("CountBySlot", r.ctx, room.ID, model.SlotA).Return(2, nil).Once()
				r.swipeRepo.On("HasLike", r.ctx, room.ID, int64(9000), model.SlotB).Return(false, nil).Once()
				r.roomStore.On("ByCode", r.ctx, roomCode).Return(matchedRoom(movieID), nil).Once()
			},
			expectError:   true,
			expectedError: ErrMatchConflict,
		},
		{
			name:    "Should match when both slots liked and transition won",
			movieID: movieID,
			slot:    model.SlotB,
			action:  model.ActionLike,
			setupMocks: func(r *resources, room model.Room) {
				r.roomStore.On("ByCode", r.ctx, roomCode).Return(room, nil).Once()
				r.swipeRepo.On("Insert", r.ctx, swipeMatcher(room.ID, movieID, model.SlotB, model.ActionLike)).
					Return(true, nil).Once()
				r.swipeRepo.On("CountBySlot", r.ctx, room.ID, model.SlotB).Return(3, nil).Once()
				r.swipeRepo.On("HasLike", r.ctx, room.ID, movieID, model.SlotA).Return(true, nil).Once()
				r.roomStore.On("TryMatch", r.ctx, roomCode, movieID).Return(true, nil).Once()
				r.movies.On("ByTmdbID", r.ctx, movieID).Return(movieMeta(), nil).Once()
			},
			expectedKind:  OutcomeMatched,
			expectedTotal: 3,
			expectMovie:   true,
		},
		{
			name:    "Should treat race loser on same movie as already matched",
			movieID: movieID,
			slot:    model.SlotB,
			action:  model.ActionLike,
			setupMocks: func(r *resources, room model.Room) {
				r.roomStore.On("ByCode", r.ctx, roomCode).Return(room, nil).Once()
				r.swipeRepo.On("Insert", r.ctx, swipeMatcher(room.ID, movieID, model.SlotB, model.ActionLike)).
					Return(true, nil).Once()
				r.swipeRepo.On("CountBySlot", r.ctx, room.ID, model.SlotB).Return(3, nil).Once()
				r.swipeRepo.On("HasLike", r.ctx, room.ID, movieID, model.SlotA).Return(true, nil).Once()
				r.roomStore.On("TryMatch", r.ctx, roomCode, movieID).Return(false, nil).Once()
				r.roomStore.On("ByCode", r.ctx, roomCode).Return(matchedRoom(movieID), nil).Once()
			},
			expectedKind: OutcomeAlreadyMatched,
		},
		{
			name:    "Should conflict when race loser liked a different movie",
			movieID: 9000,
			slot:    model.SlotB,
			action:  model.ActionLike,
			setupMocks: func(r *resources, room model.Room) {
				r.roomStore.On("ByCode", r.ctx, roomCode).Return(room, nil).Once()
				r.swipeRepo.On("Insert", r.ctx, swipeMatcher(room.ID, 9000, model.SlotB, model.ActionLike)).
					Return(true, nil).Once()
				r.swipeRepo.On("CountBySlot", r.ctx, room.ID, model.SlotB).Return(3, nil).Once()
				r.swipeRepo.On("HasLike", r.ctx, room.ID, int64(9000), model.SlotA).Return(true, nil).Once()
				r.roomStore.On("TryMatch", r.ctx, roomCode, int64(9000)).Return(false, nil).Once()
				r.roomStore.On("ByCode", r.ctx, roomCode).Return(matchedRoom(movieID), nil).Once()
			},
			expectError:   true,
			expectedError: ErrMatchConflict,
		},
		{
			name:    "Should no-op on a duplicate swipe",
			movieID: movieID,
			slot:    model.SlotA,
			action:  model.ActionLike,
			setupMocks: func(r *resources, room model.Room) {
				r.roomStore.On("ByCode", r.ctx, roomCode).Return(room, nil).Once()
				r.swipeRepo.On("Insert", r.ctx, swipeMatcher(room.ID, movieID, model.SlotA, model.ActionLike)).
					Return(false, nil).Once()
			},
			expectedKind: OutcomeDuplicate,
		},
		{
			name:    "Should resolve a late like on the matched movie idempotently",
			movieID: movieID,
			slot:    model.SlotA,
			action:  model.ActionLike,
			setupMocks: func(r *resources, room model.Room) {
				r.roomStore.On("ByCode", r.ctx, roomCode).Return(matchedRoom(movieID), nil).Once()
			},
			expectedKind: OutcomeAlreadyMatched,
		},
		{
			name:    "Should reject swipes into an expired room",
			movieID: movieID,
			slot:    model.SlotA,
			action:  model.ActionLike,
			setupMocks: func(r *resources, room model.Room) {
				stale := room
				stale.ExpiresAt = time.Now().Add(-time.Minute)
				r.roomStore.On("ByCode", r.ctx, roomCode).Return(stale, nil).Once()
				r.roomStore.On("MarkExpired", r.ctx, roomCode).Return(nil).Once()
			},
			expectError:   true,
			expectedError: ErrRoomExpired,
		},
		{
			name:        "Should reject an invalid slot upfront",
			movieID:     movieID,
			slot:        model.Slot("C"),
			action:      model.ActionLike,
			setupMocks:  func(r *resources, room model.Room) {},
			expectError: true, expectedError: ErrInvalidSwipe,
		},
		{
			name:        "Should reject a non-positive movie id upfront",
			movieID:     0,
			slot:        model.SlotA,
			action:      model.ActionLike,
			setupMocks:  func(r *resources, room model.Room) {},
			expectError: true, expectedError: ErrInvalidSwipe,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r, activeRoom())

			outcome, err := r.usecase.Swipe(r.ctx, roomCode, tc.movieID, tc.slot, tc.action)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedKind, outcome.Kind)
				assert.Equal(t, tc.movieID, outcome.MovieID)
				assert.Equal(t, tc.slot, outcome.Slot)
				if tc.expectedTotal > 0 {
					assert.Equal(t, tc.expectedTotal, outcome.TotalSwiped)
				}
				if tc.expectMovie {
					assert.NotNil(t, outcome.Movie)
					assert.Equal(t, "Heat", outcome.Movie.Title)
				}
			}
			r.swipeRepo.AssertExpectations(t)
			r.roomStore.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseSwipeUnitSuite) TestPartnerLikes(t provider.T) {
	t.Parallel()

	t.Run("Should decorate liked ids and stub misses", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		room := activeRoom()

		r.roomStore.On("ByCode", r.ctx, roomCode).Return(room, nil).Once()
		r.swipeRepo.On("LikedMovieIDs", r.ctx, room.ID, model.SlotB).
			Return([]int64{movieID, 9000}, nil).Once()
		r.movies.On("ByTmdbID", r.ctx, movieID).Return(movieMeta(), nil).Once()
		r.movies.On("ByTmdbID", r.ctx, int64(9000)).
			Return(nil, assert.AnError).Once()

		likes, err := r.usecase.PartnerLikes(r.ctx, roomCode, model.SlotA)

		assert.NoError(t, err)
		assert.Len(t, likes, 2)
		assert.Equal(t, "Heat", likes[0].Title)
		assert.Equal(t, int64(9000), likes[1].TmdbID)
		assert.Empty(t, likes[1].Title)
	})
}

func (suite *UsecaseSwipeUnitSuite) TestProgress(t provider.T) {
	t.Parallel()

	t.Run("Should count the slot's swipes", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		room := activeRoom()

		r.roomStore.On("ByCode", r.ctx, roomCode).Return(room, nil).Once()
		r.swipeRepo.On("CountBySlot", r.ctx, room.ID, model.SlotA).Return(12, nil).Once()

		total, err := r.usecase.Progress(r.ctx, roomCode, model.SlotA)

		assert.NoError(t, err)
		assert.Equal(t, 12, total)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseSwipeUnitSuite))
}
