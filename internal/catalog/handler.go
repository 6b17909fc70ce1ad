package catalog

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the read-only catalog endpoints consumed by the
// storefront pages.
type Handler struct {
	service ServiceInterface
}

func NewHandler(s ServiceInterface) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/canastas", h.getBaskets)
	app.Get("/api/v1/canastas/:id<[0-9]+>", h.getBasket)
	app.Get("/api/v1/canastas/:id<[0-9]+>/contenido", h.getBasketContents)
	app.Get("/api/v1/dulces", h.getCandies)
}

func (h *Handler) getBaskets(c *fiber.Ctx) error {
	baskets, err := h.service.ListBaskets()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(baskets)
}

func (h *Handler) getBasket(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid basket id"})
	}

	basket, err := h.service.GetBasket(id)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "basket not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(basket)
}

func (h *Handler) getBasketContents(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid basket id"})
	}

	contents, err := h.service.ListContents(id)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "basket not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(contents)
}

func (h *Handler) getCandies(c *fiber.Ctx) error {
	candies, err := h.service.ListCandies()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(candies)
}
