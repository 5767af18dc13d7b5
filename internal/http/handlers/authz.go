package handlers

import (
	"net/url"

	"droneshop/internal/domain"
	applog "droneshop/internal/log"
	"droneshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// LoadUser attaches the signed-in user, if any, to the request.
func LoadUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sid := c.Cookies(sidCookie); sid != "" {
			if u, err := auth.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	}
}

// CurrentUser is the identity of the caller, if signed in.
func CurrentUser(c *fiber.Ctx) (*domain.User, bool) {
	u, ok := c.Locals("user").(*domain.User)
	return u, ok && u != nil
}

// RequireUser enforces that a user is logged in; otherwise redirect to login
// with the current URL as the return target.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := CurrentUser(c); !ok {
			applog.Security(c, "access.denied.anonymous", nil)
			return c.Redirect(loginURL(c))
		}
		return c.Next()
	}
}

func loginURL(c *fiber.Ctx) string {
	return "/login?next=" + url.QueryEscape(c.OriginalURL())
}
