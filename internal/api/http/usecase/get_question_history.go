package httpUsecase

import (
	"context"
	"net/http"

	"quiz-service/domain"
)

type GetQuestionHistoryUseCase interface {
	Execute(ctx context.Context, roomCode string) ([]domain.ChoiceQuestion, int, error)
}

type getQuestionHistoryUseCase struct {
	repository PostgresRepository
}

func NewGetQuestionHistoryUseCase(repository PostgresRepository) GetQuestionHistoryUseCase {
	return &getQuestionHistoryUseCase{repository: repository}
}

func (u *getQuestionHistoryUseCase) Execute(ctx context.Context, roomCode string) ([]domain.ChoiceQuestion, int, error) {
	questions, err := u.repository.ChoiceHistory(ctx, normalizeCode(roomCode))
	if err != nil {
		return nil, errorStatus(err), err
	}
	return questions, http.StatusOK, nil
}
