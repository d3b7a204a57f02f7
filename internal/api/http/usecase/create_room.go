package httpUsecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type CreateRoomUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID) (*domain.Room, int, error)
}

type createRoomUseCase struct {
	repository PostgresRepository
	notifier   RoomNotifier
	codeLength int
	newCode    func(length int) (string, error)
}

func NewCreateRoomUseCase(repository PostgresRepository, notifier RoomNotifier, codeLength int) CreateRoomUseCase {
	return &createRoomUseCase{
		repository: repository,
		notifier:   notifier,
		codeLength: codeLength,
		newCode:    domain.NewRoomCode,
	}
}

// Execute keeps drawing codes until one is free. A collision is never reported to the
// caller; only cancellation or a storage failure ends the loop.
func (u *createRoomUseCase) Execute(ctx context.Context, userID uuid.UUID) (*domain.Room, int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, http.StatusInternalServerError, fmt.Errorf("room creation aborted: %w", err)
		}

		code, err := u.newCode(u.codeLength)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}

		exists, err := u.repository.RoomCodeExists(ctx, code)
		if err != nil {
			return nil, errorStatus(err), err
		}
		if exists {
			continue
		}

		room, err := u.repository.CreateRoom(ctx, code, userID)
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, errorStatus(err), err
		}

		u.notifier.Notify(ctx, room.Code, domain.EventRoomCreated, map[string]any{"user_id": userID.String()})
		return room, http.StatusCreated, nil
	}
}
