package order

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/josuemn/canastas-backend/internal/cart"
	"github.com/josuemn/canastas-backend/internal/customization"
	"github.com/josuemn/canastas-backend/internal/user"
)

// Handler delegates order operations to the order service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/orders", h.createOrder)
	app.Get("/api/v1/orders", h.getOrders)
	app.Get("/api/v1/orders/:id<[0-9]+>", h.getOrder)
}

type createOrderRequest struct {
	Total           float64      `json:"total"`
	PaymentTypeID   int          `json:"payment_type_id"`
	Items           []cart.Entry `json:"items"`
	GiftMessage     *string      `json:"gift_message,omitempty"`
	DeliveryAddress string       `json:"delivery_address"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	created, err := h.service.Commit(userID, payload.Items, payload.PaymentTypeID, payload.DeliveryAddress, payload.GiftMessage, payload.Total)
	if err != nil {
		switch err {
		case ErrInvalidOrder:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "order is incomplete or totals do not match"})
		case customization.ErrLimitExceeded:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "customization limit exceeded"})
		default:
			// never leak persistence detail to the checkout page
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not process order"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// getOrders returns all orders belonging to the currently authenticated user.
func (h *Handler) getOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

// getOrder returns one order with its line items. Orders are only visible to
// the user that placed them.
func (h *Handler) getOrder(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	ord, err := h.service.GetByID(orderID)
	if err != nil || ord.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	}

	items, err := h.service.ListItems(orderID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"order": ord, "items": items})
}
