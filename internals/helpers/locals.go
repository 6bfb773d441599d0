package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys yang diisi middleware auth
const (
	LocUserID = "user_id"
	LocRoles  = "roles"
)

// UserIDFromLocals: nil kalau request tanpa token / sub bukan UUID.
func UserIDFromLocals(c *fiber.Ctx) *uuid.UUID {
	s, ok := c.Locals(LocUserID).(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &id
}

func RolesFromLocals(c *fiber.Ctx) []string {
	roles, _ := c.Locals(LocRoles).([]string)
	return roles
}
