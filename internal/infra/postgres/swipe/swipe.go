package infra_postgres_swipe

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/kinoduet/core/internal/model"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type swipeDTO struct {
	ID      uuid.UUID `db:"id"`
	RoomID  uuid.UUID `db:"room_id"`
	MovieID int64     `db:"movie_id"`
	Slot    string    `db:"slot"`
	Action  string    `db:"action"`
}

// Insert is idempotent on (room_id, movie_id, slot): the unique
// constraint plus DO NOTHING turns a re-swipe into created == false
// instead of an error or a second row.
func (d *Driver) Insert(ctx context.Context, swipe model.Swipe) (bool, error) {
	dto := swipeDTO{
		ID:      swipe.ID,
		RoomID:  swipe.RoomID,
		MovieID: swipe.MovieID,
		Slot:    swipe.Slot,
		Action:  swipe.Action,
	}

	query := `
		INSERT INTO swipes (id, room_id, movie_id, slot, action)
		VALUES (:id, :room_id, :movie_id, :slot, :action)
		ON CONFLICT (room_id, movie_id, slot) DO NOTHING
	`

	result, err := d.db.NamedExecContext(ctx, query, dto)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

func (d *Driver) HasLike(ctx context.Context, roomID uuid.UUID, movieID int64, slot model.Slot) (bool, error) {
	var exists bool

	query := `
        SELECT EXISTS(
            SELECT 1 FROM swipes
            WHERE room_id = $1 AND movie_id = $2 AND slot = $3 AND action = 'like'
        )
    `

	err := d.db.GetContext(ctx, &exists, query, roomID, movieID, slot)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (d *Driver) CountBySlot(ctx context.Context, roomID uuid.UUID, slot model.Slot) (int, error) {
	var count int

	query := `
        SELECT COUNT(id) FROM swipes
        WHERE room_id = $1 AND slot = $2
    `

	err := d.db.GetContext(ctx, &count, query, roomID, slot)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (d *Driver) LikedMovieIDs(ctx context.Context, roomID uuid.UUID, slot model.Slot) ([]int64, error) {
	var ids []int64

	query := `
        SELECT movie_id FROM swipes
        WHERE room_id = $1 AND slot = $2 AND action = 'like'
        ORDER BY created_at
    `

	err := d.db.SelectContext(ctx, &ids, query, roomID, slot)
	if err != nil {
		return nil, err
	}

	return ids, nil
}
