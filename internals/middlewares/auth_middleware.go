package middlewares

import (
	"github.com/gofiber/fiber/v2"

	authService "campustrack_backend/internals/features/users/auth/service"
	helper "campustrack_backend/internals/helpers"
)

// Locals keys set by AuthJWT
const (
	LocUserID    = "user_id"
	LocUserEmail = "user_email"
	LocIsAdmin   = "is_admin"
	LocIsStudent = "is_student"
)

// AuthJWT verifies the bearer token and stores identity in Locals.
func AuthJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return helper.Error(c, fiber.StatusUnauthorized, "Missing access token")
		}

		claims, err := authService.ParseAccessToken(raw)
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return helper.Error(c, fe.Code, fe.Message)
			}
			return helper.Error(c, fiber.StatusUnauthorized, "Could not validate credentials")
		}

		helper.SetRawAccessToken(c, raw)
		c.Locals(LocUserID, claims.UserID)
		c.Locals(LocUserEmail, claims.Subject)
		c.Locals(LocIsAdmin, claims.IsAdmin)
		c.Locals(LocIsStudent, claims.IsStudent)
		return c.Next()
	}
}

// IsAdmin gates admin-only route groups.
func IsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if admin, ok := c.Locals(LocIsAdmin).(bool); ok && admin {
			return c.Next()
		}
		return helper.Error(c, fiber.StatusForbidden, "You do not have the necessary permission to access this route")
	}
}

// IsAcademic gates teacher/student-only route groups.
func IsAcademic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if admin, ok := c.Locals(LocIsAdmin).(bool); ok && !admin {
			return c.Next()
		}
		return helper.Error(c, fiber.StatusForbidden, "This route is for academic users only")
	}
}
