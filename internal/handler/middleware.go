package handler

import (
	"errors"
	"fmt"
	"strings"

	"quiz-service/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func HandleWithFiber[R Request, Res Response](handler FiberHandler[R, Res]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req R

		if err := parseRequest(c, &req); err != nil {
			return WriteError(c, fiber.StatusBadRequest, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error()))
		}

		if err := validate.Struct(req); err != nil {
			return WriteError(c, fiber.StatusBadRequest, fmt.Errorf("%w: %s", domain.ErrInvalidInput, describeValidation(err)))
		}

		ctx := c.UserContext()
		res, status, err := handler.Handle(c, ctx, &req)
		if err != nil {
			return WriteError(c, status, err)
		}
		if status == 0 {
			status = fiber.StatusOK
		}
		return c.Status(status).JSON(res)
	}
}

func parseRequest[R any](c *fiber.Ctx, req *R) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
			return err
		}
	}

	if err := c.ParamsParser(req); err != nil {
		return err
	}

	if err := c.QueryParser(req); err != nil {
		return err
	}

	if err := c.ReqHeaderParser(req); err != nil {
		return err
	}

	return nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fe.Field()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
