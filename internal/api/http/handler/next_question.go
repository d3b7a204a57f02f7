package handler

import (
	"context"

	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type NextQuestionRequest struct {
	RoomCode string `params:"roomCode" validate:"required"`
}

type NextQuestionResponse struct {
	Message string `json:"message"`
}

type NextQuestionHandler struct {
	usecase httpUsecase.NextQuestionUseCase
}

func NewNextQuestionHandler(usecase httpUsecase.NextQuestionUseCase) *NextQuestionHandler {
	return &NextQuestionHandler{
		usecase: usecase,
	}
}

func (h *NextQuestionHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *NextQuestionRequest) (*NextQuestionResponse, int, error) {
	if _, status, err := callerID(fbrCtx); err != nil {
		return nil, status, err
	}

	status, err := h.usecase.Execute(ctx, req.RoomCode)
	if err != nil {
		return nil, status, err
	}
	return &NextQuestionResponse{Message: "ready for next question"}, status, nil
}
