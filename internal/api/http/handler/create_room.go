package handler

import (
	"context"

	"quiz-service/domain"
	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type CreateRoomRequest struct{}

type CreateRoomResponse struct {
	Room *domain.Room `json:"room"`
}

type CreateRoomHandler struct {
	usecase httpUsecase.CreateRoomUseCase
}

func NewCreateRoomHandler(usecase httpUsecase.CreateRoomUseCase) *CreateRoomHandler {
	return &CreateRoomHandler{
		usecase: usecase,
	}
}

func (h *CreateRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CreateRoomRequest) (*CreateRoomResponse, int, error) {
	userID, status, err := callerID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	room, status, err := h.usecase.Execute(ctx, userID)
	if err != nil {
		return nil, status, err
	}
	return &CreateRoomResponse{Room: room}, status, nil
}
