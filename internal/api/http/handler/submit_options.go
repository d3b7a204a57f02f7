package handler

import (
	"context"

	"quiz-service/domain"
	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SubmitOptionsRequest struct {
	QuestionID uuid.UUID            `json:"question_id" validate:"required"`
	Options    []domain.OptionInput `json:"options" validate:"required"`
}

type SubmitOptionsResponse struct {
	Options []domain.Option `json:"options"`
}

type SubmitOptionsHandler struct {
	usecase httpUsecase.SubmitOptionsUseCase
}

func NewSubmitOptionsHandler(usecase httpUsecase.SubmitOptionsUseCase) *SubmitOptionsHandler {
	return &SubmitOptionsHandler{
		usecase: usecase,
	}
}

func (h *SubmitOptionsHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *SubmitOptionsRequest) (*SubmitOptionsResponse, int, error) {
	userID, status, err := callerID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	options, status, err := h.usecase.Execute(ctx, req.QuestionID, userID, req.Options)
	if err != nil {
		return nil, status, err
	}
	return &SubmitOptionsResponse{Options: options}, status, nil
}
