package httpUsecase

import (
	"context"
	"net/http"

	"quiz-service/domain"
)

type GetRoomUseCase interface {
	Execute(ctx context.Context, code string) (*domain.Room, int, error)
}

type getRoomUseCase struct {
	repository PostgresRepository
}

func NewGetRoomUseCase(repository PostgresRepository) GetRoomUseCase {
	return &getRoomUseCase{repository: repository}
}

func (u *getRoomUseCase) Execute(ctx context.Context, code string) (*domain.Room, int, error) {
	room, err := u.repository.GetRoomByCode(ctx, normalizeCode(code))
	if err != nil {
		return nil, errorStatus(err), err
	}
	return room, http.StatusOK, nil
}
