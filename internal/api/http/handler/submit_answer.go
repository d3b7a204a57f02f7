package handler

import (
	"context"

	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SubmitAnswerRequest struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	AnswerText string    `json:"answer_text" validate:"required"`
}

type SubmitAnswerHandler struct {
	usecase httpUsecase.SubmitAnswerUseCase
}

func NewSubmitAnswerHandler(usecase httpUsecase.SubmitAnswerUseCase) *SubmitAnswerHandler {
	return &SubmitAnswerHandler{
		usecase: usecase,
	}
}

func (h *SubmitAnswerHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *SubmitAnswerRequest) (*httpUsecase.AnswerResult, int, error) {
	userID, status, err := callerID(fbrCtx)
	if err != nil {
		return nil, status, err
	}
	return h.usecase.Execute(ctx, req.QuestionID, userID, req.AnswerText)
}
