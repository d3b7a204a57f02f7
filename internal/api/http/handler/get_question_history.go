package handler

import (
	"context"

	"quiz-service/domain"
	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetQuestionHistoryRequest struct {
	RoomCode string `params:"roomCode" validate:"required"`
}

type GetQuestionHistoryResponse struct {
	Questions []domain.ChoiceQuestion `json:"questions"`
}

type GetQuestionHistoryHandler struct {
	usecase httpUsecase.GetQuestionHistoryUseCase
}

func NewGetQuestionHistoryHandler(usecase httpUsecase.GetQuestionHistoryUseCase) *GetQuestionHistoryHandler {
	return &GetQuestionHistoryHandler{
		usecase: usecase,
	}
}

func (h *GetQuestionHistoryHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetQuestionHistoryRequest) (*GetQuestionHistoryResponse, int, error) {
	if _, status, err := callerID(fbrCtx); err != nil {
		return nil, status, err
	}

	questions, status, err := h.usecase.Execute(ctx, req.RoomCode)
	if err != nil {
		return nil, status, err
	}
	return &GetQuestionHistoryResponse{Questions: questions}, status, nil
}
