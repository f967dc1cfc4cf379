package infra_postgres_room

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/kinoduet/core/internal/model"
	usecase_room "github.com/kinoduet/core/internal/usecase/room"
)

type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

type roomDTO struct {
	ID             uuid.UUID     `db:"id"`
	Code           string        `db:"code"`
	PIN            string        `db:"pin"`
	Status         string        `db:"status"`
	SlotAConnected bool          `db:"slot_a_connected"`
	SlotBConnected bool          `db:"slot_b_connected"`
	UserAID        uuid.NullUUID `db:"user_a_id"`
	UserBID        uuid.NullUUID `db:"user_b_id"`
	MoviePoolSeed  int32         `db:"movie_pool_seed"`
	MatchedMovieID sql.NullInt64 `db:"matched_movie_id"`
	CreatedAt      time.Time     `db:"created_at"`
	ExpiresAt      time.Time     `db:"expires_at"`
}

func (dto roomDTO) toModel() model.Room {
	room := model.Room{
		ID:             dto.ID,
		Code:           dto.Code,
		PIN:            dto.PIN,
		Status:         dto.Status,
		SlotAConnected: dto.SlotAConnected,
		SlotBConnected: dto.SlotBConnected,
		MoviePoolSeed:  dto.MoviePoolSeed,
		CreatedAt:      dto.CreatedAt,
		ExpiresAt:      dto.ExpiresAt,
	}
	if dto.UserAID.Valid {
		id := dto.UserAID.UUID
		room.UserAID = &id
	}
	if dto.UserBID.Valid {
		id := dto.UserBID.UUID
		room.UserBID = &id
	}
	if dto.MatchedMovieID.Valid {
		id := dto.MatchedMovieID.Int64
		room.MatchedMovieID = &id
	}
	return room
}

const roomColumns = `id, code, pin, status, slot_a_connected, slot_b_connected,
		user_a_id, user_b_id, movie_pool_seed, matched_movie_id, created_at, expires_at`

func (d *Driver) Create(ctx context.Context, room model.Room) error {
	query := `
		INSERT INTO rooms (id, code, pin, status, movie_pool_seed, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := d.db.ExecContext(ctx, query,
		room.ID,
		room.Code,
		room.PIN,
		room.Status,
		room.MoviePoolSeed,
		room.CreatedAt,
		room.ExpiresAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "duplicate key") {
			return usecase_room.ErrCodeConflict
		}
		return err
	}
	return nil
}

func (d *Driver) ByCode(ctx context.Context, code string) (model.Room, error) {
	var dto roomDTO

	query := `
        SELECT ` + roomColumns + `
        FROM rooms
        WHERE code = $1
    `

	err := d.db.GetContext(ctx, &dto, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Room{}, usecase_room.ErrRoomNotFound
		}
		return model.Room{}, err
	}

	return dto.toModel(), nil
}

// ClaimSlot serializes slot capture on the room row. The FOR UPDATE
// lock is the per-room critical section: of two concurrent joins for
// the last open slot exactly one commits, the other sees ErrRoomFull.
func (d *Driver) ClaimSlot(ctx context.Context, code string, userID *uuid.UUID) (model.Slot, model.Room, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", model.Room{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var dto roomDTO
	selectQuery := `
        SELECT ` + roomColumns + `
        FROM rooms
        WHERE code = $1
        FOR UPDATE
    `

	if err := tx.GetContext(ctx, &dto, selectQuery, code); err != nil {
		if err == sql.ErrNoRows {
			return "", model.Room{}, usecase_room.ErrRoomNotFound
		}
		return "", model.Room{}, err
	}

	var slot model.Slot
	switch {
	case !dto.SlotAConnected:
		slot = model.SlotA
	case !dto.SlotBConnected:
		slot = model.SlotB
	default:
		return "", model.Room{}, usecase_room.ErrRoomFull
	}

	var updateQuery string
	if slot == model.SlotA {
		updateQuery = `
			UPDATE rooms
			SET slot_a_connected = TRUE,
				user_a_id = COALESCE(user_a_id, $2),
				status = CASE
					WHEN status = 'waiting' AND slot_b_connected THEN 'active'
					ELSE status
				END
			WHERE code = $1
			RETURNING ` + roomColumns
	} else {
		updateQuery = `
			UPDATE rooms
			SET slot_b_connected = TRUE,
				user_b_id = COALESCE(user_b_id, $2),
				status = CASE
					WHEN status = 'waiting' AND slot_a_connected THEN 'active'
					ELSE status
				END
			WHERE code = $1
			RETURNING ` + roomColumns
	}

	var claimed roomDTO
	var uid uuid.NullUUID
	if userID != nil {
		uid = uuid.NullUUID{UUID: *userID, Valid: true}
	}
	if err := tx.GetContext(ctx, &claimed, updateQuery, code, uid); err != nil {
		return "", model.Room{}, err
	}

	if err := tx.Commit(); err != nil {
		return "", model.Room{}, err
	}

	return slot, claimed.toModel(), nil
}

func (d *Driver) SetSlotConnected(ctx context.Context, code string, slot model.Slot, connected bool) error {
	var query string
	if slot == model.SlotA {
		query = `UPDATE rooms SET slot_a_connected = $2 WHERE code = $1`
	} else {
		query = `UPDATE rooms SET slot_b_connected = $2 WHERE code = $1`
	}

	result, err := d.db.ExecContext(ctx, query, code, connected)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return usecase_room.ErrRoomNotFound
	}

	return nil
}

// TryMatch is the conditional transition guarding match-exactly-once.
// Both participants' likes can race here; only one UPDATE matches the
// status = 'active' predicate.
func (d *Driver) TryMatch(ctx context.Context, code string, movieID int64) (bool, error) {
	query := `
        UPDATE rooms
        SET status = 'matched', matched_movie_id = $2
        WHERE code = $1 AND status = 'active'
    `

	result, err := d.db.ExecContext(ctx, query, code, movieID)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

// MarkExpired is idempotent: a room already matched or expired is left
// as is.
func (d *Driver) MarkExpired(ctx context.Context, code string) error {
	query := `
        UPDATE rooms
        SET status = 'expired'
        WHERE code = $1 AND status IN ('waiting', 'active')
    `

	_, err := d.db.ExecContext(ctx, query, code)
	return err
}

func (d *Driver) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	query := `
        UPDATE rooms
        SET status = 'expired'
        WHERE expires_at < $1 AND status IN ('waiting', 'active')
    `

	result, err := d.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (d *Driver) DeleteByCode(ctx context.Context, code string) error {
	query := `
        DELETE FROM rooms
        WHERE code = $1
    `

	result, err := d.db.ExecContext(ctx, query, code)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return usecase_room.ErrRoomNotFound
	}

	return nil
}
