package handlers

import (
	"droneshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Orders *services.OrderService
}

// History lists orders for the current logged-in user.
func (h *OrderHandler) History(c *fiber.Ctx) error {
	u, ok := CurrentUser(c)
	// RequireUser guards the route; without it nothing is listed.
	if !ok {
		return c.Redirect(loginURL(c))
	}
	orders, err := h.Orders.ListForClient(u.ID)
	if err != nil {
		return err
	}
	return render(c, "orders", fiber.Map{"Orders": orders})
}
