package handler

import (
	"github.com/gofiber/fiber/v2"

	"auditapi/internal/service"
)

// ListComplexAudits returns all complex audit records.
func ListComplexAudits(svc service.ComplexAuditService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// CreateComplexAudit creates a record referencing the acting pf_user.
func CreateComplexAudit(svc service.ComplexAuditService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ComplexAuditInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		item, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// GetComplexAudit returns a record by id.
func GetComplexAudit(svc service.ComplexAuditService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		item, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(item)
	}
}

// UpdateComplexAudit replaces name and description and bumps the version.
func UpdateComplexAudit(svc service.ComplexAuditService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in service.ComplexAuditInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		item, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(item)
	}
}
