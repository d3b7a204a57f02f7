package handler

import (
	"context"

	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SubmitSelectionRequest struct {
	QuestionID       uuid.UUID `json:"question_id" validate:"required"`
	SelectedOptionID uuid.UUID `json:"selected_option_id"`
}

type SubmitSelectionHandler struct {
	usecase httpUsecase.SubmitSelectionUseCase
}

func NewSubmitSelectionHandler(usecase httpUsecase.SubmitSelectionUseCase) *SubmitSelectionHandler {
	return &SubmitSelectionHandler{
		usecase: usecase,
	}
}

func (h *SubmitSelectionHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *SubmitSelectionRequest) (*httpUsecase.SelectionResult, int, error) {
	userID, status, err := callerID(fbrCtx)
	if err != nil {
		return nil, status, err
	}
	return h.usecase.Execute(ctx, req.QuestionID, userID, req.SelectedOptionID)
}
