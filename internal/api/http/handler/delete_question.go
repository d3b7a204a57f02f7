package handler

import (
	"context"

	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DeleteQuestionRequest struct {
	QuestionID uuid.UUID `params:"id" validate:"required"`
}

type DeleteQuestionResponse struct {
	Message string `json:"message"`
}

type DeleteQuestionHandler struct {
	usecase httpUsecase.DeleteQuestionUseCase
}

func NewDeleteQuestionHandler(usecase httpUsecase.DeleteQuestionUseCase) *DeleteQuestionHandler {
	return &DeleteQuestionHandler{
		usecase: usecase,
	}
}

func (h *DeleteQuestionHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *DeleteQuestionRequest) (*DeleteQuestionResponse, int, error) {
	userID, status, err := callerID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	status, err = h.usecase.Execute(ctx, req.QuestionID, userID)
	if err != nil {
		return nil, status, err
	}
	return &DeleteQuestionResponse{Message: "question deleted"}, status, nil
}
