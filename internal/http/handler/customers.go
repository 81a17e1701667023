package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"auditapi/internal/audit"
	"auditapi/internal/service"
)

// ListCustomers returns all customers.
func ListCustomers(svc service.CustomerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cs, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cs)
	}
}

// CreateCustomer creates one customer.
func CreateCustomer(svc service.CustomerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CustomerInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		cu, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(cu)
	}
}

// CreateCustomers creates a JSON array of customers in one transaction.
func CreateCustomers(svc service.CustomerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in []service.CustomerInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		cs, err := svc.CreateBatch(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(cs)
	}
}

// GetCustomer returns a customer by id.
func GetCustomer(svc service.CustomerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		cu, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cu)
	}
}

// UpdateCustomer applies a partial update.
func UpdateCustomer(svc service.CustomerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		var p service.CustomerPatch
		if err := c.BodyParser(&p); err != nil {
			return invalidBody(c)
		}
		cu, err := svc.Update(c.UserContext(), id, p)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cu)
	}
}

// DeleteCustomer deletes a customer and answers 200, or 404 when missing.
func DeleteCustomer(svc service.CustomerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"deleted": id})
	}
}

// CustomerAuditReport lists every customer's audit columns.
func CustomerAuditReport(svc service.CustomerService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cs, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(customerReport(cs, loc))
	}
}

// CustomersModifiedBetween lists customers modified within the inclusive
// start and end query parameters, both formatted as audit.ReportTimeLayout in loc.
func CustomersModifiedBetween(svc service.CustomerService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, err := audit.ParseTime(c.Query("start"), loc)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", "start must be formatted as "+audit.ReportTimeLayout)
		}
		end, err := audit.ParseTime(c.Query("end"), loc)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", "end must be formatted as "+audit.ReportTimeLayout)
		}
		cs, err := svc.ModifiedBetween(c.UserContext(), start, end)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(customerReport(cs, loc))
	}
}
