// Package server assembles the fiber application: middleware stack, views
// and routes.
package server

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	"droneshop/internal/config"
	"droneshop/internal/http/handlers"
	applog "droneshop/internal/log"
	"droneshop/web"
)

// Options tweak the app for callers other than main.
type Options struct {
	// AccessLog receives one line per request; nil disables the access log.
	AccessLog io.Writer
}

func New(cfg config.Config, db *sqlx.DB, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        web.Engine(cfg.TemplatesDir),
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler,
	})

	deps := handlers.NewDeps(db, cfg)

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	if opts.AccessLog != nil {
		app.Use(logger.New(logger.Config{Output: opts.AccessLog}))
	}
	app.Use(helmet.New())
	// Attach user to context if logged in (for templates/headers)
	app.Use(handlers.LoadUser(deps.Auth))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/media/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   cfg.CookieSecure,
		ContextKey:     "csrf",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			c.Status(fiber.StatusForbidden)
			applog.Security(c, "csrf.fail", map[string]any{"reason": err.Error()})
			return c.Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok, ok := c.Locals("csrf").(string); ok {
			c.Locals("CSRFToken", tok)
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", cfg.StaticDir)
	app.Get("/media/*", deps.MediaHandler.Serve)

	// ---------- Shop ----------
	app.Get("/", deps.CategoryHandler.Home)
	app.Get("/product", deps.DroneHandler.List)
	app.Get("/drone/:id", deps.DroneHandler.Detail)
	app.Post("/drone/:id", deps.DroneHandler.Detail)
	app.Get("/orders", handlers.RequireUser(), deps.OrderHandler.History)

	// API
	api := app.Group("/api/v1")
	api.Get("/availability", deps.InventoryHandler.Check)

	// ---------- Auth (login throttled) ----------
	authH := deps.AuthHandler
	app.Get("/register", authH.RegisterForm)
	app.Post("/register", authH.Register)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        cfg.LoginRateLimit,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			c.Status(fiber.StatusTooManyRequests)
			applog.Security(c, "rate.login.hit", nil)
			return c.Render("login", fiber.Map{"Err": "Too many attempts. Please try again later.", "Username": "", "Next": ""})
		},
	}), authH.Login)
	app.Get("/logout", authH.Logout)
	app.Post("/logout", authH.Logout)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	return app
}

// errorHandler logs the failure and shows a friendly page. Client errors
// raised as *fiber.Error keep their status and message.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).Render("notfound", fiber.Map{"Message": fe.Message})
	}
	// Log and show a friendly message
	c.Status(fiber.StatusInternalServerError)
	applog.Error(c, "server.error", err, nil)
	// Avoid leaking internals; best-effort render
	if rerr := c.Render("notfound", fiber.Map{
		"Message": "Something went wrong. Please try again.",
	}); rerr != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
	}
	return nil
}
