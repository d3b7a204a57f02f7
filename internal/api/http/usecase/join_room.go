package httpUsecase

import (
	"context"
	"net/http"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type JoinRoomUseCase interface {
	Execute(ctx context.Context, code string, userID uuid.UUID) (*domain.Room, int, error)
}

type joinRoomUseCase struct {
	repository PostgresRepository
	notifier   RoomNotifier
}

func NewJoinRoomUseCase(repository PostgresRepository, notifier RoomNotifier) JoinRoomUseCase {
	return &joinRoomUseCase{
		repository: repository,
		notifier:   notifier,
	}
}

func (u *joinRoomUseCase) Execute(ctx context.Context, code string, userID uuid.UUID) (*domain.Room, int, error) {
	room, err := u.repository.JoinRoom(ctx, normalizeCode(code), userID)
	if err != nil {
		return nil, errorStatus(err), err
	}

	u.notifier.Notify(ctx, room.Code, domain.EventPlayerJoined, map[string]any{"user_id": userID.String()})
	return room, http.StatusOK, nil
}
