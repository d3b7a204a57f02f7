package handler

import (
	"context"

	"quiz-service/domain"
	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type ListQuestionsRequest struct{}

type ListQuestionsResponse struct {
	Questions []domain.QuestionView `json:"questions"`
}

type ListQuestionsHandler struct {
	usecase httpUsecase.ListQuestionsUseCase
}

func NewListQuestionsHandler(usecase httpUsecase.ListQuestionsUseCase) *ListQuestionsHandler {
	return &ListQuestionsHandler{
		usecase: usecase,
	}
}

func (h *ListQuestionsHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *ListQuestionsRequest) (*ListQuestionsResponse, int, error) {
	userID, status, err := callerID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	questions, status, err := h.usecase.Execute(ctx, userID)
	if err != nil {
		return nil, status, err
	}
	return &ListQuestionsResponse{Questions: questions}, status, nil
}
