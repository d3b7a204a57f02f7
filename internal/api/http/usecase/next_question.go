package httpUsecase

import (
	"context"
	"net/http"

	"quiz-service/domain"
)

type NextQuestionUseCase interface {
	Execute(ctx context.Context, roomCode string) (int, error)
}

type nextQuestionUseCase struct {
	repository PostgresRepository
	notifier   RoomNotifier
}

func NewNextQuestionUseCase(repository PostgresRepository, notifier RoomNotifier) NextQuestionUseCase {
	return &nextQuestionUseCase{
		repository: repository,
		notifier:   notifier,
	}
}

// Execute clears the current question even if it is still being played.
func (u *nextQuestionUseCase) Execute(ctx context.Context, roomCode string) (int, error) {
	code := normalizeCode(roomCode)
	if err := u.repository.ClearCurrentQuestion(ctx, code); err != nil {
		return errorStatus(err), err
	}

	u.notifier.Notify(ctx, code, domain.EventNextQuestion, nil)
	return http.StatusOK, nil
}
