package httpUsecase

import (
	"context"
	"net/http"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type LeaveRoomUseCase interface {
	Execute(ctx context.Context, code string, userID uuid.UUID) (*domain.Room, int, error)
}

type leaveRoomUseCase struct {
	repository PostgresRepository
	notifier   RoomNotifier
}

func NewLeaveRoomUseCase(repository PostgresRepository, notifier RoomNotifier) LeaveRoomUseCase {
	return &leaveRoomUseCase{
		repository: repository,
		notifier:   notifier,
	}
}

func (u *leaveRoomUseCase) Execute(ctx context.Context, code string, userID uuid.UUID) (*domain.Room, int, error) {
	room, err := u.repository.LeaveRoom(ctx, normalizeCode(code), userID)
	if err != nil {
		return nil, errorStatus(err), err
	}

	event := domain.EventPlayerLeft
	if room.Seat1UserID == userID {
		event = domain.EventRoomClosed
	}
	u.notifier.Notify(ctx, room.Code, event, map[string]any{"user_id": userID.String(), "status": string(room.Status)})
	return room, http.StatusOK, nil
}
