package handler

import (
	"github.com/gofiber/fiber/v2"

	"auditapi/internal/service"
)

// ListApis returns all apis.
func ListApis(svc service.ApiService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		apis, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(apis)
	}
}

// CreateApi creates an api; apiname must be unique.
func CreateApi(svc service.ApiService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ApiInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		a, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	}
}

// GetApi returns an api by id.
func GetApi(svc service.ApiService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		a, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(a)
	}
}

// UpdateApi applies a partial update.
func UpdateApi(svc service.ApiService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		var p service.ApiPatch
		if err := c.BodyParser(&p); err != nil {
			return invalidBody(c)
		}
		a, err := svc.Update(c.UserContext(), id, p)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(a)
	}
}

// DeleteApi answers 204 whether or not the api existed.
func DeleteApi(svc service.ApiService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
