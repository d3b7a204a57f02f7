package httpUsecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type CreateQuestionUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID, text, answer string) (*domain.Question, int, error)
}

type createQuestionUseCase struct {
	repository PostgresRepository
}

func NewCreateQuestionUseCase(repository PostgresRepository) CreateQuestionUseCase {
	return &createQuestionUseCase{repository: repository}
}

func (u *createQuestionUseCase) Execute(ctx context.Context, userID uuid.UUID, text, answer string) (*domain.Question, int, error) {
	text, answer = strings.TrimSpace(text), strings.TrimSpace(answer)
	if text == "" || answer == "" {
		return nil, http.StatusBadRequest, fmt.Errorf("%w: question and answer are required", domain.ErrInvalidInput)
	}

	question, err := u.repository.CreateQuestion(ctx, userID, text, answer)
	if err != nil {
		return nil, errorStatus(err), err
	}
	return question, http.StatusCreated, nil
}
