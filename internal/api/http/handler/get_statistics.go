package handler

import (
	"context"

	"quiz-service/domain"
	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetStatisticsRequest struct{}

type GetStatisticsHandler struct {
	usecase httpUsecase.GetStatisticsUseCase
}

func NewGetStatisticsHandler(usecase httpUsecase.GetStatisticsUseCase) *GetStatisticsHandler {
	return &GetStatisticsHandler{
		usecase: usecase,
	}
}

func (h *GetStatisticsHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetStatisticsRequest) (*domain.Statistics, int, error) {
	userID, status, err := callerID(fbrCtx)
	if err != nil {
		return nil, status, err
	}
	return h.usecase.Execute(ctx, userID)
}
