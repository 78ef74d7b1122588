package middleware

import "github.com/gofiber/fiber/v2"

const (
	allowHeaders = "Content-Type,Authorization,true"
	allowMethods = "GET,PUT,POST,DELETE,OPTIONS"
)

// CORSHeaders stamps the allow headers on every response, errors included.
// It complements fiber's cors middleware, which only sets them on preflight.
func CORSHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		c.Set(fiber.HeaderAccessControlAllowHeaders, allowHeaders)
		c.Set(fiber.HeaderAccessControlAllowMethods, allowMethods)
		return err
	}
}
