package handler

import (
	"github.com/gofiber/fiber/v2"

	"auditapi/internal/service"
)

// ListEnvironments returns all environments, filtered by ?type= when given.
func ListEnvironments(svc service.EnvironmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		envs, err := svc.List(c.UserContext(), c.Query("type"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(envs)
	}
}

// PendingDeployEnvironments returns reviewed environments never deployed.
func PendingDeployEnvironments(svc service.EnvironmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		envs, err := svc.PendingDeploy(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(envs)
	}
}

// CreateEnvironment creates an environment at version 1.0 in draft status.
func CreateEnvironment(svc service.EnvironmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.EnvironmentInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		e, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

// GetEnvironment returns an environment by id.
func GetEnvironment(svc service.EnvironmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		e, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(e)
	}
}

// UpdateEnvironment changes config_value, description or status.
func UpdateEnvironment(svc service.EnvironmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		var p service.EnvironmentPatch
		if err := c.BodyParser(&p); err != nil {
			return invalidBody(c)
		}
		e, err := svc.Update(c.UserContext(), id, p)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(e)
	}
}

// ReviewEnvironment records a review. The body is optional.
func ReviewEnvironment(svc service.EnvironmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in service.ReviewInput
		if err := parseOptionalBody(c, &in); err != nil {
			return invalidBody(c)
		}
		e, err := svc.Review(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(e)
	}
}

// DeployEnvironment records a deploy of a reviewed environment. The body
// is optional.
func DeployEnvironment(svc service.EnvironmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in service.DeployInput
		if err := parseOptionalBody(c, &in); err != nil {
			return invalidBody(c)
		}
		e, err := svc.Deploy(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(e)
	}
}

// EnvironmentArtifact returns a presigned URL of the last deploy artifact,
// or streams it when ?inline=true.
func EnvironmentArtifact(svc service.EnvironmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		if c.QueryBool("inline") {
			rc, info, err := svc.OpenArtifact(c.UserContext(), id)
			if err != nil {
				return writeServiceError(c, err)
			}
			if info.ContentType != "" {
				c.Set(fiber.HeaderContentType, info.ContentType)
			}
			return c.SendStream(rc, int(info.Size))
		}
		url, err := svc.ArtifactURL(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}
