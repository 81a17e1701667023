package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"auditapi/internal/service"
)

// ListAuditRecords returns records newest first with limit & offset.
func ListAuditRecords(svc service.AuditRecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateAuditRecord records an operation by the acting pf_user.
func CreateAuditRecord(svc service.AuditRecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.AuditRecordInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		rec, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// GetAuditRecord returns a record by id.
func GetAuditRecord(svc service.AuditRecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		rec, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}
