package handler

import (
	"context"

	"quiz-service/domain"
	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type StartRoundRequest struct {
	RoomCode string `json:"room_code" validate:"required"`
}

type StartRoundResponse struct {
	Round *domain.SongRound `json:"round"`
}

type StartRoundHandler struct {
	usecase httpUsecase.StartRoundUseCase
}

func NewStartRoundHandler(usecase httpUsecase.StartRoundUseCase) *StartRoundHandler {
	return &StartRoundHandler{
		usecase: usecase,
	}
}

func (h *StartRoundHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *StartRoundRequest) (*StartRoundResponse, int, error) {
	userID, status, err := callerID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	round, status, err := h.usecase.Execute(ctx, req.RoomCode, userID)
	if err != nil {
		return nil, status, err
	}
	return &StartRoundResponse{Round: round}, status, nil
}
