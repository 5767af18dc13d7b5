package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const sidCookie = "sid"

// Cookies decides the attributes of the session cookie.
type Cookies struct {
	Secure bool
}

func newSID() string { return uuid.NewString() }

// Set hands sid to the client.
func (k Cookies) Set(c *fiber.Ctx, sid string) {
	c.Cookie(&fiber.Cookie{
		Name:     sidCookie,
		Value:    sid,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   k.Secure,
	})
}

// Expire clears the session cookie.
func (k Cookies) Expire(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sidCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   k.Secure,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
