package httpUsecase

import (
	"context"
	"net/http"

	"quiz-service/domain"
)

type GetCurrentQuestionUseCase interface {
	Execute(ctx context.Context, roomCode string) (*domain.ChoiceQuestion, int, error)
}

type getCurrentQuestionUseCase struct {
	repository PostgresRepository
}

func NewGetCurrentQuestionUseCase(repository PostgresRepository) GetCurrentQuestionUseCase {
	return &getCurrentQuestionUseCase{repository: repository}
}

// Execute returns nil without error when the room has no current question.
func (u *getCurrentQuestionUseCase) Execute(ctx context.Context, roomCode string) (*domain.ChoiceQuestion, int, error) {
	question, err := u.repository.CurrentChoiceQuestion(ctx, normalizeCode(roomCode))
	if err != nil {
		return nil, errorStatus(err), err
	}
	return question, http.StatusOK, nil
}
