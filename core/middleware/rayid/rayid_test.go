package rayid_test

import (
	"net/http/httptest"
	"testing"

	"wedding-planner/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("ray_id").(string))
	})
	return app
}

func TestGeneratesRayID(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(rayid.Header))
}

func TestReusesIncomingRayID(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(rayid.Header, "ray-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "ray-123", resp.Header.Get(rayid.Header))
}
