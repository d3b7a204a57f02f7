package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quiz-service/domain"

	"github.com/google/uuid"
)

const selectRoomWithSeats = `
	SELECT r.id, r.code, r.seat1_user_id, r.seat2_user_id, r.status, r.current_question_id,
	       r.created_at, r.updated_at,
	       u1.username, u1.display_name, u2.username, u2.display_name
	FROM rooms r
	LEFT JOIN users u1 ON u1.id = r.seat1_user_id
	LEFT JOIN users u2 ON u2.id = r.seat2_user_id`

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *Repository) RoomCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM rooms WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check room code: %w", err)
	}
	return exists, nil
}

// CreateRoom stores a waiting room with creatorID in the first seat. A code collision
// surfaces as ErrConflict so the caller can regenerate.
func (r *Repository) CreateRoom(ctx context.Context, code string, creatorID uuid.UUID) (*domain.Room, error) {
	var roomID uuid.UUID
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO rooms (code, seat1_user_id, status) VALUES ($1, $2, $3) RETURNING id`,
		code, creatorID, domain.RoomWaiting,
	).Scan(&roomID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: room code already in use", domain.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	return r.GetRoomByCode(ctx, code)
}

func (r *Repository) GetRoomByCode(ctx context.Context, code string) (*domain.Room, error) {
	return scanRoomWithSeats(r.db.QueryRowContext(ctx, selectRoomWithSeats+` WHERE r.code = $1`, code))
}

func scanRoomWithSeats(row *sql.Row) (*domain.Room, error) {
	var (
		room                    domain.Room
		seat2, currentQuestion  uuid.NullUUID
		status                  string
		seat1Name, seat1Display sql.NullString
		seat2Name, seat2Display sql.NullString
	)
	err := row.Scan(
		&room.ID, &room.Code, &room.Seat1UserID, &seat2, &status, &currentQuestion,
		&room.CreatedAt, &room.UpdatedAt,
		&seat1Name, &seat1Display, &seat2Name, &seat2Display,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: room not found", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query room: %w", err)
	}

	room.Status = domain.RoomStatus(status)
	room.Seat2UserID = uuidPtr(seat2)
	room.CurrentQuestionID = uuidPtr(currentQuestion)
	room.Seat1 = userSummary(room.Seat1UserID, seat1Name, seat1Display)
	if room.Seat2UserID != nil {
		room.Seat2 = userSummary(*room.Seat2UserID, seat2Name, seat2Display)
	}
	return &room, nil
}

// lockRoomByCode reads the bare room row under FOR UPDATE.
func lockRoomByCode(ctx context.Context, q queryRower, code string) (*domain.Room, error) {
	return lockRoom(ctx, q, `WHERE code = $1`, code)
}

func lockRoomByID(ctx context.Context, q queryRower, roomID uuid.UUID) (*domain.Room, error) {
	return lockRoom(ctx, q, `WHERE id = $1`, roomID)
}

func lockRoom(ctx context.Context, q queryRower, where string, arg any) (*domain.Room, error) {
	var (
		room                   domain.Room
		seat2, currentQuestion uuid.NullUUID
		status                 string
	)
	err := q.QueryRowContext(ctx,
		`SELECT id, code, seat1_user_id, seat2_user_id, status, current_question_id, created_at, updated_at
		 FROM rooms `+where+` FOR UPDATE`,
		arg,
	).Scan(&room.ID, &room.Code, &room.Seat1UserID, &seat2, &status, &currentQuestion, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: room not found", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query room: %w", err)
	}
	room.Status = domain.RoomStatus(status)
	room.Seat2UserID = uuidPtr(seat2)
	room.CurrentQuestionID = uuidPtr(currentQuestion)
	return &room, nil
}

func updateRoomSeats(ctx context.Context, tx *sql.Tx, room *domain.Room) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE rooms SET seat2_user_id = $1, status = $2, updated_at = now() WHERE id = $3`,
		nullableUUID(room.Seat2UserID), room.Status, room.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	return nil
}

// JoinRoom seats userID in the second seat of the room with code.
func (r *Repository) JoinRoom(ctx context.Context, code string, userID uuid.UUID) (*domain.Room, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	room, err := lockRoomByCode(ctx, tx, code)
	if err != nil {
		return nil, err
	}

	if err := room.Join(userID); err != nil {
		return nil, err
	}

	if err := updateRoomSeats(ctx, tx, room); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetRoomByCode(ctx, code)
}

// LeaveRoom applies the leave rule for userID and returns the resulting room.
func (r *Repository) LeaveRoom(ctx context.Context, code string, userID uuid.UUID) (*domain.Room, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	room, err := lockRoomByCode(ctx, tx, code)
	if err != nil {
		return nil, err
	}

	if err := room.Leave(userID); err != nil {
		return nil, err
	}

	if err := updateRoomSeats(ctx, tx, room); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetRoomByCode(ctx, code)
}
