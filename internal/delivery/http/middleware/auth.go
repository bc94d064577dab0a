package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/tensora-ai/cc-backend/internal/pkg/errors"
	"github.com/tensora-ai/cc-backend/internal/pkg/utils"
)

// APIKeyHeader is the header clients authenticate with.
const APIKeyHeader = "X-API-KEY"

// APIKey rejects requests whose X-API-KEY header does not match the
// configured key.
func APIKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		provided := c.Get(APIKeyHeader)
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			return utils.SendError(c, errors.ErrUnauthorized)
		}
		return c.Next()
	}
}
