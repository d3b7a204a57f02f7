package handler

import (
	"context"

	"quiz-service/domain"
	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetRoundHistoryRequest struct {
	RoomCode string `params:"roomCode" validate:"required"`
}

type GetRoundHistoryResponse struct {
	Rounds []domain.SongRound `json:"rounds"`
}

type GetRoundHistoryHandler struct {
	usecase httpUsecase.GetRoundHistoryUseCase
}

func NewGetRoundHistoryHandler(usecase httpUsecase.GetRoundHistoryUseCase) *GetRoundHistoryHandler {
	return &GetRoundHistoryHandler{
		usecase: usecase,
	}
}

func (h *GetRoundHistoryHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetRoundHistoryRequest) (*GetRoundHistoryResponse, int, error) {
	userID, status, err := callerID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	rounds, status, err := h.usecase.Execute(ctx, req.RoomCode, userID)
	if err != nil {
		return nil, status, err
	}
	return &GetRoundHistoryResponse{Rounds: rounds}, status, nil
}
