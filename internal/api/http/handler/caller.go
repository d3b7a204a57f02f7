package handler

import (
	"quiz-service/internal/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func callerID(fbrCtx *fiber.Ctx) (uuid.UUID, int, error) {
	userID, err := handler.CurrentUser(fbrCtx)
	if err != nil {
		return uuid.Nil, handler.StatusOf(err), err
	}
	return userID, fiber.StatusOK, nil
}
