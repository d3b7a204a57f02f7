package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quiz-service/domain"

	"github.com/google/uuid"
)

const selectSongRound = `
	SELECT sr.id, sr.room_id, sr.asked_by_user_id, sr.track_id, sr.title, sr.artist, sr.preview_url,
	       sr.cover_url, sr.status, sr.surrendered_by_seat1, sr.surrendered_by_seat2,
	       sr.created_at, sr.updated_at, u.username, u.display_name
	FROM song_rounds sr
	LEFT JOIN users u ON u.id = sr.asked_by_user_id`

// lockedRound is a round row locked together with the seats of its room.
type lockedRound struct {
	round domain.SongRound
	room  domain.Room
}

func lockSongRound(ctx context.Context, tx *sql.Tx, roundID uuid.UUID) (*lockedRound, error) {
	var (
		locked lockedRound
		status string
		seat2  uuid.NullUUID
	)
	err := tx.QueryRowContext(ctx,
		`SELECT sr.id, sr.room_id, sr.title, sr.status, sr.surrendered_by_seat1, sr.surrendered_by_seat2,
		        r.code, r.seat1_user_id, r.seat2_user_id
		 FROM song_rounds sr
		 JOIN rooms r ON r.id = sr.room_id
		 WHERE sr.id = $1
		 FOR UPDATE OF sr`,
		roundID,
	).Scan(&locked.round.ID, &locked.round.RoomID, &locked.round.Title, &status,
		&locked.round.SurrenderedBySeat1, &locked.round.SurrenderedBySeat2,
		&locked.room.Code, &locked.room.Seat1UserID, &seat2)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: round not found", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query round: %w", err)
	}
	locked.round.Status = domain.RoundStatus(status)
	locked.room.ID = locked.round.RoomID
	locked.room.Seat2UserID = uuidPtr(seat2)
	return &locked, nil
}

// HasActiveSongRound reports whether the room already has a round in play.
func (r *Repository) HasActiveSongRound(ctx context.Context, roomID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM song_rounds WHERE room_id = $1 AND status = $2)`,
		roomID, domain.RoundActive,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check active round: %w", err)
	}
	return exists, nil
}

// CreateSongRound opens a round for track. The one-active-round rule is checked again
// under the room lock and backed by a partial unique index.
func (r *Repository) CreateSongRound(ctx context.Context, roomID, userID uuid.UUID, track domain.Track) (*domain.SongRound, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	room, err := lockRoomByID(ctx, tx, roomID)
	if err != nil {
		return nil, err
	}
	if _, err := room.RequireSeat(userID); err != nil {
		return nil, err
	}

	var active bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM song_rounds WHERE room_id = $1 AND status = $2)`,
		roomID, domain.RoundActive,
	).Scan(&active); err != nil {
		return nil, fmt.Errorf("failed to check active round: %w", err)
	}
	if active {
		return nil, fmt.Errorf("%w: a round is already active in this room", domain.ErrConflict)
	}

	var roundID uuid.UUID
	err = tx.QueryRowContext(ctx,
		`INSERT INTO song_rounds (room_id, asked_by_user_id, track_id, title, artist, preview_url, cover_url, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		roomID, userID, track.ID, track.Title, track.Artist, track.PreviewURL,
		sql.NullString{String: track.CoverURL, Valid: track.CoverURL != ""}, domain.RoundActive,
	).Scan(&roundID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: a round is already active in this room", domain.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create round: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return r.GetSongRound(ctx, roundID)
}

// SubmitGuess judges guess against the round title and stores it. The cooldown is
// measured with the database clock against userID's own latest guess on the round.
func (r *Repository) SubmitGuess(ctx context.Context, roundID, userID uuid.UUID, guess string, cooldown time.Duration) (*domain.Guess, *domain.SongRound, string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	locked, err := lockSongRound(ctx, tx, roundID)
	if err != nil {
		return nil, nil, "", err
	}
	if _, err := locked.room.RequireSeat(userID); err != nil {
		return nil, nil, "", err
	}
	if err := locked.round.EnsureActive(); err != nil {
		return nil, nil, "", err
	}

	var now time.Time
	if err := tx.QueryRowContext(ctx, `SELECT now()`).Scan(&now); err != nil {
		return nil, nil, "", fmt.Errorf("failed to read clock: %w", err)
	}

	last := &domain.Guess{}
	err = tx.QueryRowContext(ctx,
		`SELECT is_correct, created_at FROM song_guesses
		 WHERE round_id = $1 AND user_id = $2
		 ORDER BY created_at DESC LIMIT 1`,
		roundID, userID,
	).Scan(&last.IsCorrect, &last.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		last = nil
	case err != nil:
		return nil, nil, "", fmt.Errorf("failed to query last guess: %w", err)
	}
	if err := domain.GuessCooldown(last, now, cooldown); err != nil {
		return nil, nil, "", err
	}

	stored := domain.Guess{
		RoundID:   roundID,
		UserID:    userID,
		Text:      guess,
		IsCorrect: locked.round.ApplyGuess(guess),
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO song_guesses (round_id, user_id, guess_text, is_correct, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		roundID, userID, stored.Text, stored.IsCorrect, now,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to insert guess: %w", err)
	}

	if stored.IsCorrect {
		if _, err := tx.ExecContext(ctx,
			`UPDATE song_rounds SET status = $1, updated_at = now() WHERE id = $2`,
			domain.RoundCompleted, roundID,
		); err != nil {
			return nil, nil, "", fmt.Errorf("failed to complete round: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &stored, &locked.round, locked.room.Code, nil
}

// SurrenderRound raises userID's seat flag and completes the round once both are up.
func (r *Repository) SurrenderRound(ctx context.Context, roundID, userID uuid.UUID) (*domain.SongRound, string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	locked, err := lockSongRound(ctx, tx, roundID)
	if err != nil {
		return nil, "", err
	}
	seat, err := locked.room.RequireSeat(userID)
	if err != nil {
		return nil, "", err
	}
	if err := locked.round.Surrender(seat); err != nil {
		return nil, "", err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE song_rounds
		 SET surrendered_by_seat1 = $1, surrendered_by_seat2 = $2, status = $3, updated_at = now()
		 WHERE id = $4`,
		locked.round.SurrenderedBySeat1, locked.round.SurrenderedBySeat2, locked.round.Status, roundID,
	); err != nil {
		return nil, "", fmt.Errorf("failed to update round: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &locked.round, locked.room.Code, nil
}

func (r *Repository) GetSongRound(ctx context.Context, roundID uuid.UUID) (*domain.SongRound, error) {
	rounds, err := r.querySongRounds(ctx, selectSongRound+` WHERE sr.id = $1`, roundID)
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, fmt.Errorf("%w: round not found", domain.ErrNotFound)
	}
	return &rounds[0], nil
}

// CurrentSongRound returns the active round of the room, else its latest one, else nil.
func (r *Repository) CurrentSongRound(ctx context.Context, roomID uuid.UUID) (*domain.SongRound, error) {
	rounds, err := r.querySongRounds(ctx,
		selectSongRound+` WHERE sr.room_id = $1
		 ORDER BY (sr.status = 'active') DESC, sr.created_at DESC LIMIT 1`,
		roomID,
	)
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, nil
	}
	return &rounds[0], nil
}

// SongHistory returns every round of the room, newest first.
func (r *Repository) SongHistory(ctx context.Context, roomID uuid.UUID) ([]domain.SongRound, error) {
	return r.querySongRounds(ctx, selectSongRound+` WHERE sr.room_id = $1 ORDER BY sr.created_at DESC`, roomID)
}

func (r *Repository) querySongRounds(ctx context.Context, query string, args ...any) ([]domain.SongRound, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rounds: %w", err)
	}
	defer rows.Close()

	rounds := []domain.SongRound{}
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var (
			sr                    domain.SongRound
			status                string
			cover                 sql.NullString
			username, displayName sql.NullString
		)
		if err := rows.Scan(&sr.ID, &sr.RoomID, &sr.AskedByUserID, &sr.TrackID, &sr.Title, &sr.Artist, &sr.PreviewURL,
			&cover, &status, &sr.SurrenderedBySeat1, &sr.SurrenderedBySeat2,
			&sr.CreatedAt, &sr.UpdatedAt, &username, &displayName); err != nil {
			return nil, fmt.Errorf("failed to scan round: %w", err)
		}
		sr.CoverURL = cover.String
		sr.Status = domain.RoundStatus(status)
		sr.AskedBy = userSummary(sr.AskedByUserID, username, displayName)
		sr.Guesses = []domain.Guess{}
		index[sr.ID] = len(rounds)
		rounds = append(rounds, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rounds: %w", err)
	}
	if len(rounds) == 0 {
		return rounds, nil
	}

	ids := make([]uuid.UUID, 0, len(rounds))
	for _, sr := range rounds {
		ids = append(ids, sr.ID)
	}

	guessRows, err := r.db.QueryContext(ctx,
		`SELECT g.id, g.round_id, g.user_id, g.guess_text, g.is_correct, g.created_at,
		        u.username, u.display_name
		 FROM song_guesses g
		 LEFT JOIN users u ON u.id = g.user_id
		 WHERE g.round_id = ANY($1::uuid[])
		 ORDER BY g.created_at ASC`,
		uuidArray(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query guesses: %w", err)
	}
	defer guessRows.Close()

	for guessRows.Next() {
		var (
			g                     domain.Guess
			username, displayName sql.NullString
		)
		if err := guessRows.Scan(&g.ID, &g.RoundID, &g.UserID, &g.Text, &g.IsCorrect, &g.CreatedAt,
			&username, &displayName); err != nil {
			return nil, fmt.Errorf("failed to scan guess: %w", err)
		}
		g.User = userSummary(g.UserID, username, displayName)
		if i, ok := index[g.RoundID]; ok {
			rounds[i].Guesses = append(rounds[i].Guesses, g)
		}
	}
	if err := guessRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guesses: %w", err)
	}
	return rounds, nil
}
