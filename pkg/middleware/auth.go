package middleware

import (
	"context"
	"errors"
	"strings"

	"expense-tracker/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CallerKey is the fiber locals key holding the authenticated auth.Caller.
const CallerKey = "caller"

// IdentityFunc loads the current identity of the account a token was issued
// to. It returns auth.ErrUnknownCaller when the account is gone.
type IdentityFunc func(ctx context.Context, userID int64) (auth.Caller, error)

// AuthMiddleware validates the bearer token and stores the caller as it is
// stored now, so renames and role changes apply to tokens already issued.
func AuthMiddleware(jwtManager *auth.JWTManager, identify IdentityFunc, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(fiber.HeaderAuthorization)
		if token == "" {
			logger.Warn("Missing authorization token", zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization token required",
			})
		}

		token = strings.TrimPrefix(token, "Bearer ")

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			logger.Warn("Invalid token", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		caller, err := identify(c.UserContext(), claims.UserID)
		if err != nil {
			if errors.Is(err, auth.ErrUnknownCaller) {
				logger.Warn("Token for unknown user", zap.Int64("user_id", claims.UserID))
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid or expired token",
				})
			}
			logger.Error("Failed to load caller", zap.Int64("user_id", claims.UserID), zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Identity lookup failed",
			})
		}

		c.Locals(CallerKey, caller)

		return c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role auth.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, ok := CallerFrom(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		if caller.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Insufficient role",
			})
		}
		return c.Next()
	}
}

// CallerFrom returns the identity stored by AuthMiddleware.
func CallerFrom(c *fiber.Ctx) (auth.Caller, bool) {
	caller, ok := c.Locals(CallerKey).(auth.Caller)
	return caller, ok
}
