package handlers

import (
	"errors"
	"sort"
	"strings"

	"droneshop/internal/domain"
	applog "droneshop/internal/log"
	"droneshop/internal/services"
	"droneshop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type DroneHandler struct {
	Catalog *services.CatalogService
	Orders  *services.OrderService
}

// GET /product
func (h *DroneHandler) List(c *fiber.Ctx) error {
	var cat domain.Category
	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		id, ok := validate.PK(raw)
		if !ok {
			c.Status(fiber.StatusBadRequest)
			applog.Security(c, "validation.fail", map[string]any{"field": "category"})
			return h.renderList(c, nil, cat, "", "Invalid category")
		}
		found, err := h.Catalog.GetCategory(id)
		if errors.Is(err, services.ErrNotFound) {
			return notFound(c, "This category does not exist")
		}
		if err != nil {
			return err
		}
		cat = found
	}
	var q string
	if raw := c.Query("q"); strings.TrimSpace(raw) != "" {
		v, ok := validate.Q(raw)
		if !ok {
			c.Status(fiber.StatusBadRequest)
			applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": raw})
			return h.renderList(c, nil, cat, "", "Enter a valid keyword (letters/numbers only)")
		}
		q = v
	}

	drones, err := h.Catalog.SearchDrones(cat.ID, q)
	if err != nil {
		return err
	}
	return h.renderList(c, drones, cat, q, "")
}

func (h *DroneHandler) renderList(c *fiber.Ctx, drones []domain.Drone, cat domain.Category, q, errMsg string) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		return err
	}
	return render(c, "product", fiber.Map{
		"Drones": drones, "Count": len(drones), "Categories": cats,
		"Category": cat, "CategoryID": cat.ID, "Q": q, "Err": errMsg,
	})
}

// GET, POST /drone/:id
//
// GET shows the drone with an empty order form. POST places an order for the
// signed-in caller; anonymous callers are sent to login and come back here.
func (h *DroneHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.PK(c.Params("id"))
	if !ok {
		return notFound(c, "This drone is no longer available")
	}
	d, err := h.Catalog.GetDrone(id)
	if errors.Is(err, services.ErrNotFound) {
		return notFound(c, "This drone is no longer available")
	}
	if err != nil {
		return err
	}

	if c.Method() != fiber.MethodPost {
		return h.renderDetail(c, d, validate.OrderForm{Country: string(domain.DefaultCountry)})
	}

	u, ok := CurrentUser(c)
	if !ok {
		applog.Security(c, "order.create.anonymous", map[string]any{"drone_id": d.ID})
		return c.Redirect(loginURL(c))
	}

	form := validate.NewOrderForm(formValue(c))
	details, err := form.Validate()
	if err != nil {
		applog.Security(c, "validation.fail", map[string]any{"form": "order", "fields": fieldNames(form.Errors)})
		return h.renderDetail(c, d, form)
	}

	o, err := h.Orders.Create(u.ID, d.ID, details)
	if err != nil {
		return err
	}
	applog.Audit(c, "order.create", map[string]any{
		"order_id": o.ID,
		"drone_id": d.ID,
		"country":  string(o.Country),
	})
	return c.Redirect("/")
}

func (h *DroneHandler) renderDetail(c *fiber.Ctx, d domain.Drone, form validate.OrderForm) error {
	return render(c, "detail", fiber.Map{
		"Drone":        d,
		"Form":         form,
		"Countries":    domain.Countries,
		"Availability": services.Availability(d.Quantity),
	})
}

func fieldNames(errs validate.FieldErrors) []string {
	out := make([]string, 0, len(errs))
	for k := range errs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
