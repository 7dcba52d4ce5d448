package middleware

import "github.com/gofiber/fiber/v2"

// CORS applies a permissive cross-origin policy. The service is consumed by
// browser frontends hosted on other domains; restrict the origin list when a
// deployment knows its callers.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", "*")
		c.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, X-Request-ID, Authorization")

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}

		return c.Next()
	}
}
