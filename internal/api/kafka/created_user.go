package handler

import (
	"context"
	"fmt"

	"quiz-service/domain"
	httpUsecase "quiz-service/internal/api/http/usecase"
	"quiz-service/infra/messaging"

	"github.com/google/uuid"
)

type CreatedUserHandler struct {
	usecase httpUsecase.CreateUserUseCase
}

func NewCreatedUserHandler(createdUserUsecase httpUsecase.CreateUserUseCase) *CreatedUserHandler {
	return &CreatedUserHandler{
		usecase: createdUserUsecase,
	}
}

func (h *CreatedUserHandler) Handle(ctx context.Context, msg *messaging.Message) error {
	rawID := msg.String("user_id")
	if rawID == "" {
		return fmt.Errorf("user_created payload has no user_id for message ID: %s", msg.ID)
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("user_created payload has invalid user_id %q for message ID: %s", rawID, msg.ID)
	}

	return h.usecase.Execute(ctx, domain.User{
		ID:          userID,
		Username:    msg.String("username"),
		DisplayName: msg.String("display_name"),
	})
}
