package handler

import (
	"context"

	"quiz-service/domain"
	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type CreateChoiceQuestionRequest struct {
	RoomCode     string `json:"room_code" validate:"required"`
	QuestionText string `json:"question_text" validate:"required"`
}

type CreateChoiceQuestionResponse struct {
	Question *domain.ChoiceQuestion `json:"question"`
}

type CreateChoiceQuestionHandler struct {
	usecase httpUsecase.CreateChoiceQuestionUseCase
}

func NewCreateChoiceQuestionHandler(usecase httpUsecase.CreateChoiceQuestionUseCase) *CreateChoiceQuestionHandler {
	return &CreateChoiceQuestionHandler{
		usecase: usecase,
	}
}

func (h *CreateChoiceQuestionHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CreateChoiceQuestionRequest) (*CreateChoiceQuestionResponse, int, error) {
	userID, status, err := callerID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	question, status, err := h.usecase.Execute(ctx, req.RoomCode, userID, req.QuestionText)
	if err != nil {
		return nil, status, err
	}
	return &CreateChoiceQuestionResponse{Question: question}, status, nil
}
