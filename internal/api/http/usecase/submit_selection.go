package httpUsecase

import (
	"context"
	"fmt"
	"net/http"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type SelectionResult struct {
	Selection *domain.Selection `json:"selection"`
	IsCorrect bool              `json:"is_correct"`
	Completed bool              `json:"completed"`
}

type SubmitSelectionUseCase interface {
	Execute(ctx context.Context, questionID, userID, optionID uuid.UUID) (*SelectionResult, int, error)
}

type submitSelectionUseCase struct {
	repository PostgresRepository
	notifier   RoomNotifier
}

func NewSubmitSelectionUseCase(repository PostgresRepository, notifier RoomNotifier) SubmitSelectionUseCase {
	return &submitSelectionUseCase{
		repository: repository,
		notifier:   notifier,
	}
}

func (u *submitSelectionUseCase) Execute(ctx context.Context, questionID, userID, optionID uuid.UUID) (*SelectionResult, int, error) {
	if optionID == uuid.Nil {
		return nil, http.StatusBadRequest, fmt.Errorf("%w: selected option is required", domain.ErrInvalidInput)
	}

	selection, completed, roomCode, err := u.repository.SubmitSelection(ctx, questionID, userID, optionID)
	if err != nil {
		return nil, errorStatus(err), err
	}

	data := map[string]any{"question_id": questionID.String(), "user_id": userID.String()}
	u.notifier.Notify(ctx, roomCode, domain.EventSelectionSubmitted, data)
	if completed {
		u.notifier.Notify(ctx, roomCode, domain.EventQuestionCompleted, map[string]any{"question_id": questionID.String()})
	}

	return &SelectionResult{Selection: selection, IsCorrect: selection.IsCorrect, Completed: completed}, http.StatusCreated, nil
}
