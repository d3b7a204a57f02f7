package httpUsecase

import (
	"context"
	"net/http"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type ListQuestionsUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID) ([]domain.QuestionView, int, error)
}

type listQuestionsUseCase struct {
	repository PostgresRepository
}

func NewListQuestionsUseCase(repository PostgresRepository) ListQuestionsUseCase {
	return &listQuestionsUseCase{repository: repository}
}

func (u *listQuestionsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]domain.QuestionView, int, error) {
	questions, err := u.repository.ListQuestions(ctx)
	if err != nil {
		return nil, errorStatus(err), err
	}

	views := make([]domain.QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, q.ViewFor(userID))
	}
	return views, http.StatusOK, nil
}
