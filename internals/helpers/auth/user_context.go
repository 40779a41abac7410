package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"condominiogt_backend/internals/constants"
)

// Locals keys hydrated by the auth middleware.
const (
	LocUserID   = "user_id"
	LocUserRole = "user_role"
)

// GetUserIDFromToken returns the acting user id set by the auth middleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user id missing from token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user id invalid")
	}
	return id, nil
}

// GetUserIDPtr is GetUserIDFromToken for audit columns: nil when unauthenticated.
func GetUserIDPtr(c *fiber.Ctx) *uuid.UUID {
	id, err := GetUserIDFromToken(c)
	if err != nil {
		return nil
	}
	return &id
}

func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return role
}

func IsAdmin(c *fiber.Ctx) bool {
	return GetUserRole(c) == constants.RoleAdmin
}

func IsSindico(c *fiber.Ctx) bool {
	return GetUserRole(c) == constants.RoleSindico
}

// IsManager covers every role allowed to mutate back-office data.
func IsManager(c *fiber.Ctx) bool {
	return IsAdmin(c) || IsSindico(c)
}
