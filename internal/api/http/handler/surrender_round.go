package handler

import (
	"context"

	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SurrenderRoundRequest struct {
	RoundID uuid.UUID `json:"round_id" validate:"required"`
}

type SurrenderRoundHandler struct {
	usecase httpUsecase.SurrenderRoundUseCase
}

func NewSurrenderRoundHandler(usecase httpUsecase.SurrenderRoundUseCase) *SurrenderRoundHandler {
	return &SurrenderRoundHandler{
		usecase: usecase,
	}
}

func (h *SurrenderRoundHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *SurrenderRoundRequest) (*httpUsecase.SurrenderResult, int, error) {
	userID, status, err := callerID(fbrCtx)
	if err != nil {
		return nil, status, err
	}
	return h.usecase.Execute(ctx, req.RoundID, userID)
}
