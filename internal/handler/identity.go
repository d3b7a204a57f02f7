package handler

import (
	"fmt"

	"quiz-service/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const UserIDHeader = "X-User-ID"

// CurrentUser returns the caller identity forwarded by the gateway.
func CurrentUser(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Get(UserIDHeader)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%w: missing %s header", domain.ErrUnauthorized, UserIDHeader)
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid user ID format", domain.ErrInvalidInput)
	}
	return userID, nil
}
