package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"auditapi/internal/http/middleware"
	"auditapi/internal/model"
	"auditapi/internal/service"
)

type userDetailsEntry struct {
	ID           string          `json:"id"`
	Username     string          `json:"username"`
	Audit        auditView       `json:"audit"`
	CreatorInfo  *model.UserInfo `json:"creator_info"`
	ModifierInfo *model.UserInfo `json:"modifier_info"`
}

// UsersWithAuditDetails lists users joined with the directory entries of
// their creator and last modifier.
func UsersWithAuditDetails(svc service.AuditDemoService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		details, err := svc.UsersWithDetails(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		out := make([]userDetailsEntry, 0, len(details))
		for _, d := range details {
			out = append(out, userDetailsEntry{
				ID:           d.User.ID,
				Username:     d.User.Username,
				Audit:        newAuditView(d.User.Metadata, loc),
				CreatorInfo:  d.Creator,
				ModifierInfo: d.Modifier,
			})
		}
		return c.JSON(out)
	}
}

// CreateUserWithAudit creates a user on behalf of the X-User-Id operator.
func CreateUserWithAudit(svc service.AuditDemoService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UserInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		operator := c.Get(middleware.UserIDHeader)
		res, err := svc.CreateWithAudit(c.UserContext(), operator, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		process := "operator not in user directory, request actor used"
		if res.Operator != nil {
			process = "operator resolved from user directory"
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"userId":               res.User.ID,
			"username":             res.User.Username,
			"auditInfo":            newAuditView(res.User.Metadata, loc),
			"operatorFromUserInfo": res.Operator,
			"auditProcess":         process,
		})
	}
}

// ListUserInfo returns the whole user directory.
func ListUserInfo(svc service.UserInfoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		infos, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(infos)
	}
}

// GetUserInfo returns one directory entry.
func GetUserInfo(svc service.UserInfoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		info, err := svc.Get(c.UserContext(), c.Params("userId"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(info)
	}
}
