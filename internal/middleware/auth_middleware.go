package middleware

import (
	"strings"

	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/repository"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/service"
	"github.com/artsemyn/toko-agung-computer-inventory-management/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

const SessionKey = "session"

// RequireAuth validates the bearer token, loads the user, and stores a
// *service.Session in the request context. Role checks happen inside the
// services themselves; this middleware only establishes identity.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid or expired token"})
		}

		// The token may be older than a deactivation, so check the DB.
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "User not found"})
		}
		if !user.IsActive {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "User account is inactive"})
		}

		c.Locals(SessionKey, &service.Session{
			UserID: user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role,
		})

		return c.Next()
	}
}
