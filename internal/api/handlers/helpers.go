package handlers

import (
	"errors"
	"strconv"

	"expense-tracker/internal/report"
	"expense-tracker/internal/service"
	"expense-tracker/pkg/auth"
	"expense-tracker/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func getCaller(c *fiber.Ctx) (auth.Caller, error) {
	caller, ok := middleware.CallerFrom(c)
	if !ok || caller.Username == "" {
		return auth.Caller{}, fiber.ErrUnauthorized
	}
	return caller, nil
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, report.ErrValidation), errors.Is(err, service.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, report.ErrUnauthenticated), errors.Is(err, service.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, report.ErrForbidden), errors.Is(err, service.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrExpenseNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrUserExists), errors.Is(err, service.ErrCategoryInUse):
		return fiber.StatusConflict
	case errors.Is(err, report.ErrStore):
		return fiber.StatusServiceUnavailable
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// respondError writes err as a JSON body. Server side failures are logged
// with the request id and their details are not sent to the client.
func respondError(c *fiber.Ctx, logger *zap.Logger, msg string, err error) error {
	code := statusFor(err)
	if code >= fiber.StatusInternalServerError {
		logger.Error(msg,
			zap.Error(err),
			zap.String("request_id", requestID(c)),
			zap.String("path", c.Path()),
		)
		return c.Status(code).JSON(fiber.Map{
			"error": msg,
		})
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Invalid request body",
	})
}
