package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"auditapi/internal/service"
)

// ListUsers returns all users.
func ListUsers(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(users)
	}
}

// CreateUser creates a user stamped by the request actor.
func CreateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UserInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		u, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

// GetUser returns a user by UUID.
func GetUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		u, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(u)
	}
}

// UpdateUser applies a partial update.
func UpdateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		var p service.UserPatch
		if err := c.BodyParser(&p); err != nil {
			return invalidBody(c)
		}
		u, err := svc.Update(c.UserContext(), id, p)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(u)
	}
}

// UserAuditReport lists every user's audit columns with times in loc.
func UserAuditReport(svc service.UserService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		out := make([]userAuditEntry, 0, len(users))
		for _, u := range users {
			out = append(out, userAuditEntry{ID: u.ID, Username: u.Username, auditView: newAuditView(u.Metadata, loc)})
		}
		return c.JSON(out)
	}
}
