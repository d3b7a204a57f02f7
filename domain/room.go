package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RoomStatus string

const (
	RoomWaiting  RoomStatus = "waiting"
	RoomPlaying  RoomStatus = "playing"
	RoomFinished RoomStatus = "finished"
)

type Seat int

const (
	NoSeat Seat = iota
	FirstSeat
	SecondSeat
)

type Room struct {
	ID                uuid.UUID    `json:"id"`
	Code              string       `json:"code"`
	Seat1UserID       uuid.UUID    `json:"seat1_user_id"`
	Seat2UserID       *uuid.UUID   `json:"seat2_user_id"`
	Status            RoomStatus   `json:"status"`
	CurrentQuestionID *uuid.UUID   `json:"current_question_id"`
	Seat1             *UserSummary `json:"seat1"`
	Seat2             *UserSummary `json:"seat2"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

func (r *Room) SeatOf(userID uuid.UUID) Seat {
	switch {
	case r.Seat1UserID == userID:
		return FirstSeat
	case r.Seat2UserID != nil && *r.Seat2UserID == userID:
		return SecondSeat
	default:
		return NoSeat
	}
}

func (r *Room) IsSeated(userID uuid.UUID) bool {
	return r.SeatOf(userID) != NoSeat
}

// Join puts userID into the second seat and starts play.
func (r *Room) Join(userID uuid.UUID) error {
	if r.Seat2UserID != nil {
		return fmt.Errorf("%w: room is full", ErrConflict)
	}
	if r.Seat1UserID == userID {
		return fmt.Errorf("%w: you are already in this room", ErrConflict)
	}
	if r.Status == RoomFinished {
		return fmt.Errorf("%w: room is closed", ErrConflict)
	}
	seat := userID
	r.Seat2UserID = &seat
	r.Status = RoomPlaying
	return nil
}

// Leave applies the host-closes / guest-reopens rule. A finished room stays finished.
func (r *Room) Leave(userID uuid.UUID) error {
	switch r.SeatOf(userID) {
	case FirstSeat:
		r.Status = RoomFinished
	case SecondSeat:
		r.Seat2UserID = nil
		r.Seat2 = nil
		if r.Status != RoomFinished {
			r.Status = RoomWaiting
		}
	default:
		return fmt.Errorf("%w: you are not in this room", ErrForbidden)
	}
	return nil
}

// RequireSeat fails with ErrForbidden when userID holds neither seat.
func (r *Room) RequireSeat(userID uuid.UUID) (Seat, error) {
	seat := r.SeatOf(userID)
	if seat == NoSeat {
		return NoSeat, fmt.Errorf("%w: you are not in this room", ErrForbidden)
	}
	return seat, nil
}
