package handler

import (
	"context"

	"quiz-service/domain"
	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GetQuestionRequest struct {
	QuestionID uuid.UUID `params:"id" validate:"required"`
}

type GetQuestionResponse struct {
	Question *domain.QuestionView `json:"question"`
}

type GetQuestionHandler struct {
	usecase httpUsecase.GetQuestionUseCase
}

func NewGetQuestionHandler(usecase httpUsecase.GetQuestionUseCase) *GetQuestionHandler {
	return &GetQuestionHandler{
		usecase: usecase,
	}
}

func (h *GetQuestionHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetQuestionRequest) (*GetQuestionResponse, int, error) {
	userID, status, err := callerID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	question, status, err := h.usecase.Execute(ctx, req.QuestionID, userID)
	if err != nil {
		return nil, status, err
	}
	return &GetQuestionResponse{Question: question}, status, nil
}
