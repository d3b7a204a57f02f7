package httpUsecase

import (
	"context"
	"net/http"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type GetQuestionUseCase interface {
	Execute(ctx context.Context, questionID, userID uuid.UUID) (*domain.QuestionView, int, error)
}

type getQuestionUseCase struct {
	repository PostgresRepository
}

func NewGetQuestionUseCase(repository PostgresRepository) GetQuestionUseCase {
	return &getQuestionUseCase{repository: repository}
}

func (u *getQuestionUseCase) Execute(ctx context.Context, questionID, userID uuid.UUID) (*domain.QuestionView, int, error) {
	question, err := u.repository.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, errorStatus(err), err
	}
	view := question.ViewFor(userID)
	return &view, http.StatusOK, nil
}
