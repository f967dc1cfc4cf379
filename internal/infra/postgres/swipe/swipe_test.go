package infra_postgres_swipe

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/kinoduet/core/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDriver(t *testing.T) (*Driver, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return New(sqlx.NewDb(db, "postgres")), mock
}

func TestInsert(t *testing.T) {
	testCases := []struct {
		name            string
		rowsAffected    int64
		expectedCreated bool
	}{
		{name: "Should report created on a fresh swipe", rowsAffected: 1, expectedCreated: true},
		{name: "Should report duplicate when the conflict clause fired", rowsAffected: 0, expectedCreated: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			driver, mock := newMockDriver(t)

			mock.ExpectExec("INSERT INTO swipes").
				WillReturnResult(sqlmock.NewResult(0, tc.rowsAffected))

			created, err := driver.Insert(context.Background(), model.Swipe{
				ID:      uuid.New(),
				RoomID:  uuid.New(),
				MovieID: 77,
				Slot:    model.SlotA,
				Action:  model.ActionLike,
			})

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedCreated, created)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHasLike(t *testing.T) {
	driver, mock := newMockDriver(t)
	roomID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(roomID, int64(77), "B").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	liked, err := driver.HasLike(context.Background(), roomID, 77, model.SlotB)

	assert.NoError(t, err)
	assert.True(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountBySlot(t *testing.T) {
	driver, mock := newMockDriver(t)
	roomID := uuid.New()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(roomID, "A").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := driver.CountBySlot(context.Background(), roomID, model.SlotA)

	assert.NoError(t, err)
	assert.Equal(t, 12, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikedMovieIDsKeepsSwipeOrder(t *testing.T) {
	driver, mock := newMockDriver(t)
	roomID := uuid.New()

	mock.ExpectQuery("SELECT movie_id FROM swipes").
		WithArgs(roomID, "B").
		WillReturnRows(sqlmock.NewRows([]string{"movie_id"}).
			AddRow(int64(12)).AddRow(int64(77)).AddRow(int64(3)))

	ids, err := driver.LikedMovieIDs(context.Background(), roomID, model.SlotB)

	assert.NoError(t, err)
	assert.Equal(t, []int64{12, 77, 3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
