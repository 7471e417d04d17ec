// Package rayid assigns every request a ray ID for log correlation.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray ID on requests and responses.
const Header = "X-Ray-ID"

// New returns middleware that reuses the incoming ray ID or generates
// one, storing it in locals and echoing it on the response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
