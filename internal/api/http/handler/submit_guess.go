package handler

import (
	"context"

	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SubmitGuessRequest struct {
	RoundID   uuid.UUID `json:"round_id" validate:"required"`
	GuessText string    `json:"guess_text"`
}

type SubmitGuessHandler struct {
	usecase httpUsecase.SubmitGuessUseCase
}

func NewSubmitGuessHandler(usecase httpUsecase.SubmitGuessUseCase) *SubmitGuessHandler {
	return &SubmitGuessHandler{
		usecase: usecase,
	}
}

func (h *SubmitGuessHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *SubmitGuessRequest) (*httpUsecase.GuessResult, int, error) {
	userID, status, err := callerID(fbrCtx)
	if err != nil {
		return nil, status, err
	}
	return h.usecase.Execute(ctx, req.RoundID, userID, req.GuessText)
}
