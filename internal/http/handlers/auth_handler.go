package handlers

import (
	"errors"

	applog "droneshop/internal/log"
	"droneshop/internal/services"
	"droneshop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth    *services.AuthService
	Cookies Cookies
}

func nextOr(raw, def string) string {
	if p, ok := validate.NextPath(raw); ok {
		return p
	}
	return def
}

// GET /login
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": "", "Username": "", "Next": nextOr(c.Query("next"), "")})
}

// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	pass := c.FormValue("password")
	next := nextOr(c.FormValue("next"), "")
	fail := func(reason string) error {
		c.Status(fiber.StatusUnauthorized)
		applog.Security(c, "auth.login.fail", map[string]any{"username": username, "reason": reason})
		return render(c, "login", fiber.Map{
			"Err": "Invalid username or password", "Username": username, "Next": next,
		})
	}

	if _, ok := validate.Username(username); !ok || pass == "" {
		return fail("bad_format")
	}

	// Fresh session id on every login; the old one is dropped.
	sid := newSID()
	if _, err := h.Auth.Login(sid, username, pass); err != nil {
		if errors.Is(err, services.ErrBadCreds) {
			return fail("bad_credentials")
		}
		return err
	}
	if old := c.Cookies(sidCookie); old != "" {
		_ = h.Auth.Logout(old)
	}
	h.Cookies.Set(c, sid)

	applog.Audit(c, "auth.login.success", map[string]any{"username": username})
	return c.Redirect(nextOr(next, "/"))
}

// GET, POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := c.Cookies(sidCookie)
	if sid != "" {
		if err := h.Auth.Logout(sid); err != nil {
			return err
		}
	}
	h.Cookies.Expire(c)
	applog.Audit(c, "auth.logout", nil)
	return c.Redirect("/login")
}

// GET /register
func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Form": validate.RegistrationForm{}})
}

// POST /register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	form := validate.NewRegistrationForm(formValue(c))
	reg, err := form.Validate()
	if err != nil {
		applog.Security(c, "auth.register.fail", map[string]any{"fields": fieldNames(form.Errors)})
		return render(c, "register", fiber.Map{"Form": form})
	}

	sid := newSID()
	u, err := h.Auth.Register(sid, reg)
	if errors.Is(err, services.ErrUsernameTaken) {
		form.Errors = validate.FieldErrors{"username": "A user with that username already exists."}
		applog.Security(c, "auth.register.fail", map[string]any{"fields": []string{"username"}, "reason": "taken"})
		return render(c, "register", fiber.Map{"Form": form})
	}
	if err != nil {
		return err
	}
	if old := c.Cookies(sidCookie); old != "" {
		_ = h.Auth.Logout(old)
	}
	h.Cookies.Set(c, sid)

	c.Locals("user", u)
	applog.Audit(c, "auth.register.success", map[string]any{"username": u.Username})
	return c.Redirect("/")
}
