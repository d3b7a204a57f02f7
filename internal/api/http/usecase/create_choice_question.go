package httpUsecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type CreateChoiceQuestionUseCase interface {
	Execute(ctx context.Context, roomCode string, userID uuid.UUID, text string) (*domain.ChoiceQuestion, int, error)
}

type createChoiceQuestionUseCase struct {
	repository PostgresRepository
	notifier   RoomNotifier
}

func NewCreateChoiceQuestionUseCase(repository PostgresRepository, notifier RoomNotifier) CreateChoiceQuestionUseCase {
	return &createChoiceQuestionUseCase{
		repository: repository,
		notifier:   notifier,
	}
}

func (u *createChoiceQuestionUseCase) Execute(ctx context.Context, roomCode string, userID uuid.UUID, text string) (*domain.ChoiceQuestion, int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, http.StatusBadRequest, fmt.Errorf("%w: question text is required", domain.ErrInvalidInput)
	}

	code := normalizeCode(roomCode)
	question, err := u.repository.CreateChoiceQuestion(ctx, code, userID, text)
	if err != nil {
		return nil, errorStatus(err), err
	}

	u.notifier.Notify(ctx, code, domain.EventQuestionCreated, map[string]any{
		"question_id": question.ID.String(),
		"user_id":     userID.String(),
	})
	return question, http.StatusCreated, nil
}
