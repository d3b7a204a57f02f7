package httpUsecase

import (
	"context"
	"net/http"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type SubmitOptionsUseCase interface {
	Execute(ctx context.Context, questionID, userID uuid.UUID, options []domain.OptionInput) ([]domain.Option, int, error)
}

type submitOptionsUseCase struct {
	repository PostgresRepository
	notifier   RoomNotifier
}

func NewSubmitOptionsUseCase(repository PostgresRepository, notifier RoomNotifier) SubmitOptionsUseCase {
	return &submitOptionsUseCase{
		repository: repository,
		notifier:   notifier,
	}
}

func (u *submitOptionsUseCase) Execute(ctx context.Context, questionID, userID uuid.UUID, options []domain.OptionInput) ([]domain.Option, int, error) {
	stored, roomCode, err := u.repository.SubmitOptions(ctx, questionID, userID, options)
	if err != nil {
		return nil, errorStatus(err), err
	}

	u.notifier.Notify(ctx, roomCode, domain.EventOptionsSubmitted, map[string]any{
		"question_id": questionID.String(),
		"user_id":     userID.String(),
	})
	return stored, http.StatusCreated, nil
}
