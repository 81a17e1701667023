package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"auditapi/internal/auth"
)

// TokenIssuer signs demo tokens for directory users.
type TokenIssuer interface {
	Issue(userID string) (string, time.Time, error)
	Directory() *auth.Directory
}

type tokenExample struct {
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Unit        string    `json:"unit"`
	Token       string    `json:"token"`
	TokenHeader string    `json:"token_header"`
	ExpiresAt   time.Time `json:"expires_at"`
	CurlExample string    `json:"curl_example"`
}

func newTokenExample(c *fiber.Ctx, tokens TokenIssuer, userID string) (tokenExample, error) {
	a, ok := tokens.Directory().Lookup(userID)
	if !ok {
		return tokenExample{}, auth.ErrUnknownUser
	}
	token, exp, err := tokens.Issue(userID)
	if err != nil {
		return tokenExample{}, err
	}
	header := "Bearer " + token
	curl := fmt.Sprintf(
		`curl -X POST %s/api/apis -H "Authorization: %s" -H "Content-Type: application/json" -d '{"apiname":"%s-api","description":"%s的API"}'`,
		c.BaseURL(), header, userID, userID,
	)
	return tokenExample{
		UserID:      a.UserID,
		Name:        a.Name,
		Company:     a.Company,
		Unit:        a.Unit,
		Token:       token,
		TokenHeader: header,
		ExpiresAt:   exp,
		CurlExample: curl,
	}, nil
}

// ListTokens issues a token for every directory user.
func ListTokens(tokens TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ids := tokens.Directory().UserIDs()
		examples := make([]tokenExample, 0, len(ids))
		for _, id := range ids {
			ex, err := newTokenExample(c, tokens, id)
			if err != nil {
				return writeServiceError(c, err)
			}
			examples = append(examples, ex)
		}
		return c.JSON(fiber.Map{
			"available_users": ids,
			"user_examples":   examples,
		})
	}
}

// GetToken issues a token for one directory user.
func GetToken(tokens TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ex, err := newTokenExample(c, tokens, c.Params("userId"))
		if errors.Is(err, auth.ErrUnknownUser) {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "unknown user")
		}
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(ex)
	}
}
