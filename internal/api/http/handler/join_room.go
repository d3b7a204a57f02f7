package handler

import (
	"context"

	"quiz-service/domain"
	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type JoinRoomRequest struct {
	Code string `json:"code" validate:"required"`
}

type JoinRoomResponse struct {
	Room *domain.Room `json:"room"`
}

type JoinRoomHandler struct {
	usecase httpUsecase.JoinRoomUseCase
}

func NewJoinRoomHandler(usecase httpUsecase.JoinRoomUseCase) *JoinRoomHandler {
	return &JoinRoomHandler{
		usecase: usecase,
	}
}

func (h *JoinRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *JoinRoomRequest) (*JoinRoomResponse, int, error) {
	userID, status, err := callerID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	room, status, err := h.usecase.Execute(ctx, req.Code, userID)
	if err != nil {
		return nil, status, err
	}
	return &JoinRoomResponse{Room: room}, status, nil
}
