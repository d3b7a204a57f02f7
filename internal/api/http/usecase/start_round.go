package httpUsecase

import (
	"context"
	"fmt"
	"net/http"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type StartRoundUseCase interface {
	Execute(ctx context.Context, roomCode string, userID uuid.UUID) (*domain.SongRound, int, error)
}

type startRoundUseCase struct {
	repository PostgresRepository
	source     TrackSource
	notifier   RoomNotifier
}

func NewStartRoundUseCase(repository PostgresRepository, source TrackSource, notifier RoomNotifier) StartRoundUseCase {
	return &startRoundUseCase{
		repository: repository,
		source:     source,
		notifier:   notifier,
	}
}

// Execute checks seat and active round before going to the track source so a rejected
// request never spends an upstream lookup. CreateSongRound repeats both checks under lock.
func (u *startRoundUseCase) Execute(ctx context.Context, roomCode string, userID uuid.UUID) (*domain.SongRound, int, error) {
	room, err := u.repository.GetRoomByCode(ctx, normalizeCode(roomCode))
	if err != nil {
		return nil, errorStatus(err), err
	}
	if _, err := room.RequireSeat(userID); err != nil {
		return nil, http.StatusForbidden, err
	}

	active, err := u.repository.HasActiveSongRound(ctx, room.ID)
	if err != nil {
		return nil, errorStatus(err), err
	}
	if active {
		return nil, http.StatusConflict, fmt.Errorf("%w: a round is already in progress", domain.ErrConflict)
	}

	track, err := u.source.RandomTrack(ctx)
	if err != nil {
		return nil, errorStatus(err), err
	}

	round, err := u.repository.CreateSongRound(ctx, room.ID, userID, *track)
	if err != nil {
		return nil, errorStatus(err), err
	}

	u.notifier.Notify(ctx, room.Code, domain.EventRoundStarted, map[string]any{
		"round_id": round.ID.String(),
		"user_id":  userID.String(),
	})
	return round, http.StatusCreated, nil
}
