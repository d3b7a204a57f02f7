package httpUsecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type AnswerResult struct {
	Answer    *domain.Answer `json:"answer"`
	Completed bool           `json:"completed"`
}

type SubmitAnswerUseCase interface {
	Execute(ctx context.Context, questionID, userID uuid.UUID, text string) (*AnswerResult, int, error)
}

type submitAnswerUseCase struct {
	repository PostgresRepository
}

func NewSubmitAnswerUseCase(repository PostgresRepository) SubmitAnswerUseCase {
	return &submitAnswerUseCase{repository: repository}
}

func (u *submitAnswerUseCase) Execute(ctx context.Context, questionID, userID uuid.UUID, text string) (*AnswerResult, int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, http.StatusBadRequest, fmt.Errorf("%w: answer is required", domain.ErrInvalidInput)
	}

	answer, completed, err := u.repository.SubmitAnswer(ctx, questionID, userID, text)
	if err != nil {
		return nil, errorStatus(err), err
	}
	return &AnswerResult{Answer: answer, Completed: completed}, http.StatusCreated, nil
}
