package httpUsecase

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type DeleteQuestionUseCase interface {
	Execute(ctx context.Context, questionID, userID uuid.UUID) (int, error)
}

type deleteQuestionUseCase struct {
	repository PostgresRepository
}

func NewDeleteQuestionUseCase(repository PostgresRepository) DeleteQuestionUseCase {
	return &deleteQuestionUseCase{repository: repository}
}

func (u *deleteQuestionUseCase) Execute(ctx context.Context, questionID, userID uuid.UUID) (int, error) {
	if err := u.repository.DeleteQuestion(ctx, questionID, userID); err != nil {
		return errorStatus(err), err
	}
	return http.StatusOK, nil
}
