package handler

import (
	"errors"

	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/middleware"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/service"

	"github.com/gofiber/fiber/v2"
)

// sessionFromCtx returns the session placed by the auth middleware, or nil
// for unauthenticated requests.
func sessionFromCtx(c *fiber.Ctx) *service.Session {
	if s, ok := c.Locals(middleware.SessionKey).(*service.Session); ok {
		return s
	}
	return nil
}

func ok(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{"success": true, "data": data})
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{"success": false, "error": err.Error()})
}

// statusFor maps the service error taxonomy to HTTP status codes.
func statusFor(err error) int {
	var insufficient *service.InsufficientStockError
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrHasTransactions),
		errors.Is(err, service.ErrSelfAction):
		return fiber.StatusConflict
	case errors.As(err, &insufficient),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrNegativeStock),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidCartItem),
		errors.Is(err, service.ErrWrongPassword):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserInactive):
		return fiber.StatusUnauthorized
	}
	if isValidationError(err) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func isValidationError(err error) bool {
	// pkg/validator wraps failures in a plain error with this prefix.
	const prefix = "validation failed"
	msg := err.Error()
	return len(msg) >= len(prefix) && msg[:len(prefix)] == prefix
}
