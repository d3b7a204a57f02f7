package handler

import (
	"context"

	"quiz-service/domain"
	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetCurrentRoundRequest struct {
	RoomCode string `params:"roomCode" validate:"required"`
}

type GetCurrentRoundResponse struct {
	Round *domain.SongRound `json:"round"`
}

type GetCurrentRoundHandler struct {
	usecase httpUsecase.GetCurrentRoundUseCase
}

func NewGetCurrentRoundHandler(usecase httpUsecase.GetCurrentRoundUseCase) *GetCurrentRoundHandler {
	return &GetCurrentRoundHandler{
		usecase: usecase,
	}
}

func (h *GetCurrentRoundHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetCurrentRoundRequest) (*GetCurrentRoundResponse, int, error) {
	userID, status, err := callerID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	round, status, err := h.usecase.Execute(ctx, req.RoomCode, userID)
	if err != nil {
		return nil, status, err
	}
	return &GetCurrentRoundResponse{Round: round}, status, nil
}
