package handler

import (
	"context"

	"quiz-service/domain"
	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetCurrentQuestionRequest struct {
	RoomCode string `params:"roomCode" validate:"required"`
}

type GetCurrentQuestionResponse struct {
	Question *domain.ChoiceQuestion `json:"question"`
}

type GetCurrentQuestionHandler struct {
	usecase httpUsecase.GetCurrentQuestionUseCase
}

func NewGetCurrentQuestionHandler(usecase httpUsecase.GetCurrentQuestionUseCase) *GetCurrentQuestionHandler {
	return &GetCurrentQuestionHandler{
		usecase: usecase,
	}
}

func (h *GetCurrentQuestionHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetCurrentQuestionRequest) (*GetCurrentQuestionResponse, int, error) {
	if _, status, err := callerID(fbrCtx); err != nil {
		return nil, status, err
	}

	question, status, err := h.usecase.Execute(ctx, req.RoomCode)
	if err != nil {
		return nil, status, err
	}
	return &GetCurrentQuestionResponse{Question: question}, status, nil
}
