package receipt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/josuemn/canastas-backend/internal/order"
)

var (
	ErrNotFound = errors.New("order not found")
)

// OrderReader is the slice of the order service the receipt generator needs.
type OrderReader interface {
	GetByID(id int) (order.Order, error)
	ListItems(orderID int) ([]order.LineItem, error)
}

// Service renders a committed order as a plain-text receipt. It only ever
// sees fully committed orders: the commit transaction guarantees a
// half-written order is never visible here.
type Service struct {
	orders OrderReader
}

func NewService(orders OrderReader) *Service {
	return &Service{orders: orders}
}

// Render produces the receipt for the given order, provided it belongs to
// the given user.
func (s *Service) Render(orderID, userID int) (string, error) {
	ord, err := s.orders.GetByID(orderID)
	if err != nil {
		return "", ErrNotFound
	}
	if ord.UserID != userID {
		return "", ErrNotFound
	}

	items, err := s.orders.ListItems(orderID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Canastas de Regalo - Recibo\n")
	fmt.Fprintf(&b, "Orden #%d\n", ord.ID)
	fmt.Fprintf(&b, "Fecha: %s\n", ord.CreatedAt)
	fmt.Fprintf(&b, "Estado: %s\n\n", ord.Status)

	for _, item := range items {
		fmt.Fprintf(&b, "%-10s %-30s x%-3d C$ %10.2f\n",
			item.ProductType, item.ProductName, item.Quantity, item.UnitPrice*float64(item.Quantity))
	}

	fmt.Fprintf(&b, "\nTotal: C$ %.2f\n", ord.Total)
	fmt.Fprintf(&b, "Entrega: %s\n", ord.DeliveryAddress)
	if ord.GiftMessage != nil && *ord.GiftMessage != "" {
		fmt.Fprintf(&b, "Mensaje: %s\n", *ord.GiftMessage)
	}
	return b.String(), nil
}
