package handler

import (
	"context"

	"quiz-service/domain"
	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetRoomRequest struct {
	Code string `params:"code" validate:"required"`
}

type GetRoomResponse struct {
	Room *domain.Room `json:"room"`
}

type GetRoomHandler struct {
	usecase httpUsecase.GetRoomUseCase
}

func NewGetRoomHandler(usecase httpUsecase.GetRoomUseCase) *GetRoomHandler {
	return &GetRoomHandler{
		usecase: usecase,
	}
}

func (h *GetRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetRoomRequest) (*GetRoomResponse, int, error) {
	if _, status, err := callerID(fbrCtx); err != nil {
		return nil, status, err
	}

	room, status, err := h.usecase.Execute(ctx, req.Code)
	if err != nil {
		return nil, status, err
	}
	return &GetRoomResponse{Room: room}, status, nil
}
