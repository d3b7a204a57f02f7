package handler

import (
	"errors"
	"strconv"
	"strings"

	"quiz-service/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const internalMessage = "internal server error"

// StatusOf maps an error to its HTTP status by kind.
func StatusOf(err error) int {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindForbidden:
		return fiber.StatusForbidden
	case domain.KindConflict:
		return fiber.StatusConflict
	case domain.KindValidation:
		return fiber.StatusBadRequest
	case domain.KindRateLimited:
		return fiber.StatusTooManyRequests
	case domain.KindUpstreamUnavailable:
		return fiber.StatusBadGateway
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// WriteError renders err as {"error": kind, "message": text}. Internal failures are
// logged in full and masked for the caller.
func WriteError(c *fiber.Ctx, status int, err error) error {
	kind := domain.KindOf(err)
	if status == 0 || status < fiber.StatusBadRequest {
		status = StatusOf(err)
	}

	body := fiber.Map{"error": kind}
	if kind == domain.KindInternal {
		zap.L().Error("Failed to handle request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Any("request_id", c.Locals("requestid")),
			zap.Error(err))
		body["message"] = internalMessage
	} else {
		zap.L().Debug("Request rejected",
			zap.String("path", c.Path()), zap.String("kind", kind), zap.Error(err))
		body["message"] = publicMessage(err)
	}

	var retry *domain.RetryAfterError
	if errors.As(err, &retry) {
		secs := retry.Seconds()
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(secs))
		body["retry_after"] = secs
	}

	return c.Status(status).JSON(body)
}

// publicMessage drops the sentinel prefix added by "%w: detail" wrapping.
func publicMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{
		domain.ErrNotFound, domain.ErrForbidden, domain.ErrConflict, domain.ErrInvalidInput,
		domain.ErrRateLimited, domain.ErrUpstreamUnavailable, domain.ErrUnauthorized,
	} {
		prefix := sentinel.Error() + ": "
		if strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}
