package handler

import (
	"context"

	"quiz-service/domain"
	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type CreateQuestionRequest struct {
	QuestionText  string `json:"question_text" validate:"required"`
	CorrectAnswer string `json:"correct_answer" validate:"required"`
}

type CreateQuestionResponse struct {
	Question *domain.Question `json:"question"`
}

type CreateQuestionHandler struct {
	usecase httpUsecase.CreateQuestionUseCase
}

func NewCreateQuestionHandler(usecase httpUsecase.CreateQuestionUseCase) *CreateQuestionHandler {
	return &CreateQuestionHandler{
		usecase: usecase,
	}
}

func (h *CreateQuestionHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CreateQuestionRequest) (*CreateQuestionResponse, int, error) {
	userID, status, err := callerID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	question, status, err := h.usecase.Execute(ctx, userID, req.QuestionText, req.CorrectAnswer)
	if err != nil {
		return nil, status, err
	}
	return &CreateQuestionResponse{Question: question}, status, nil
}
