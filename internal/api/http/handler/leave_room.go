package handler

import (
	"context"

	"quiz-service/domain"
	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type LeaveRoomRequest struct {
	Code string `params:"code" validate:"required"`
}

type LeaveRoomResponse struct {
	Message string       `json:"message"`
	Room    *domain.Room `json:"room"`
}

type LeaveRoomHandler struct {
	usecase httpUsecase.LeaveRoomUseCase
}

func NewLeaveRoomHandler(usecase httpUsecase.LeaveRoomUseCase) *LeaveRoomHandler {
	return &LeaveRoomHandler{
		usecase: usecase,
	}
}

func (h *LeaveRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *LeaveRoomRequest) (*LeaveRoomResponse, int, error) {
	userID, status, err := callerID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	room, status, err := h.usecase.Execute(ctx, req.Code, userID)
	if err != nil {
		return nil, status, err
	}
	return &LeaveRoomResponse{Message: "left room", Room: room}, status, nil
}
