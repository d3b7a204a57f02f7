package httpUsecase

import (
	"context"
	"net/http"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type GetRoundHistoryUseCase interface {
	Execute(ctx context.Context, roomCode string, userID uuid.UUID) ([]domain.SongRound, int, error)
}

type getRoundHistoryUseCase struct {
	repository PostgresRepository
}

func NewGetRoundHistoryUseCase(repository PostgresRepository) GetRoundHistoryUseCase {
	return &getRoundHistoryUseCase{repository: repository}
}

func (u *getRoundHistoryUseCase) Execute(ctx context.Context, roomCode string, userID uuid.UUID) ([]domain.SongRound, int, error) {
	room, err := seatedRoom(ctx, u.repository, roomCode, userID)
	if err != nil {
		return nil, errorStatus(err), err
	}

	rounds, err := u.repository.SongHistory(ctx, room.ID)
	if err != nil {
		return nil, errorStatus(err), err
	}
	return rounds, http.StatusOK, nil
}
