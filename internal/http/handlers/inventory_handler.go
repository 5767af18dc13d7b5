package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"droneshop/internal/services"
	"droneshop/internal/validate"
)

type InventoryHandler struct {
	Inv *services.InventoryService
}

// GET /api/v1/availability?droneId=
func (h *InventoryHandler) Check(c *fiber.Ctx) error {
	droneID, ok := validate.PK(c.Query("droneId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing or invalid droneId",
		})
	}

	avail, err := h.Inv.CheckAvailability(droneID)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "drone not found",
		})
	}
	if err != nil {
		return err
	}
	return c.JSON(avail)
}
