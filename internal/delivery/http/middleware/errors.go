package middleware

import "github.com/gofiber/fiber/v2"

// resolveError renders err through the app's error handler right away, so the
// wrapping middleware can observe the final status code.
func resolveError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}
	return c.App().Config().ErrorHandler(c, err)
}
