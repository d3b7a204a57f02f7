package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RoundStatus string

const (
	RoundActive    RoundStatus = "active"
	RoundCompleted RoundStatus = "completed"
)

// Track is a playable candidate returned by the song source.
type Track struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	PreviewURL string `json:"preview_url"`
	CoverURL   string `json:"cover_url,omitempty"`
}

type SongRound struct {
	ID                 uuid.UUID    `json:"id"`
	RoomID             uuid.UUID    `json:"room_id"`
	AskedByUserID      uuid.UUID    `json:"asked_by_user_id"`
	TrackID            string       `json:"track_id"`
	Title              string       `json:"title"`
	Artist             string       `json:"artist"`
	PreviewURL         string       `json:"preview_url"`
	CoverURL           string       `json:"cover_url,omitempty"`
	Status             RoundStatus  `json:"status"`
	SurrenderedBySeat1 bool         `json:"surrendered_by_seat1"`
	SurrenderedBySeat2 bool         `json:"surrendered_by_seat2"`
	AskedBy            *UserSummary `json:"asked_by,omitempty"`
	Guesses            []Guess      `json:"guesses"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

type Guess struct {
	ID        uuid.UUID    `json:"id"`
	RoundID   uuid.UUID    `json:"round_id"`
	UserID    uuid.UUID    `json:"user_id"`
	Text      string       `json:"guess_text"`
	IsCorrect bool         `json:"is_correct"`
	User      *UserSummary `json:"user,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

func (r *SongRound) EnsureActive() error {
	if r.Status != RoundActive {
		return fmt.Errorf("%w: round is not active", ErrConflict)
	}
	return nil
}

// Surrender raises the flag for seat and completes the round once both flags are up.
func (r *SongRound) Surrender(seat Seat) error {
	if err := r.EnsureActive(); err != nil {
		return err
	}
	switch seat {
	case FirstSeat:
		r.SurrenderedBySeat1 = true
	case SecondSeat:
		r.SurrenderedBySeat2 = true
	default:
		return fmt.Errorf("%w: you are not in this room", ErrForbidden)
	}
	if r.SurrenderedBySeat1 && r.SurrenderedBySeat2 {
		r.Status = RoundCompleted
	}
	return nil
}

// ApplyGuess records the outcome of guess on r.
func (r *SongRound) ApplyGuess(guess string) bool {
	correct := TitleMatches(r.Title, guess)
	if correct {
		r.Status = RoundCompleted
	}
	return correct
}

// GuessCooldown rejects a guess while the caller's last guess was wrong and younger
// than window. Only the caller's own most recent guess is considered.
func GuessCooldown(last *Guess, now time.Time, window time.Duration) error {
	if last == nil || last.IsCorrect {
		return nil
	}
	elapsed := now.Sub(last.CreatedAt)
	if elapsed >= window {
		return nil
	}
	return &RetryAfterError{Wait: window - elapsed}
}
