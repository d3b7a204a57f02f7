package httpUsecase

import (
	"context"
	"net/http"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type GetCurrentRoundUseCase interface {
	Execute(ctx context.Context, roomCode string, userID uuid.UUID) (*domain.SongRound, int, error)
}

type getCurrentRoundUseCase struct {
	repository PostgresRepository
}

func NewGetCurrentRoundUseCase(repository PostgresRepository) GetCurrentRoundUseCase {
	return &getCurrentRoundUseCase{repository: repository}
}

// Execute returns the active round, or the latest finished one so clients can show the
// reveal. A room that never played yields nil.
func (u *getCurrentRoundUseCase) Execute(ctx context.Context, roomCode string, userID uuid.UUID) (*domain.SongRound, int, error) {
	room, err := seatedRoom(ctx, u.repository, roomCode, userID)
	if err != nil {
		return nil, errorStatus(err), err
	}

	round, err := u.repository.CurrentSongRound(ctx, room.ID)
	if err != nil {
		return nil, errorStatus(err), err
	}
	return round, http.StatusOK, nil
}

func seatedRoom(ctx context.Context, repository PostgresRepository, roomCode string, userID uuid.UUID) (*domain.Room, error) {
	room, err := repository.GetRoomByCode(ctx, normalizeCode(roomCode))
	if err != nil {
		return nil, err
	}
	if _, err := room.RequireSeat(userID); err != nil {
		return nil, err
	}
	return room, nil
}
