package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/josuemn/canastas-backend/internal/cart"
	"github.com/josuemn/canastas-backend/internal/catalog"
	"github.com/josuemn/canastas-backend/internal/customization"
	"github.com/josuemn/canastas-backend/internal/payment"
)

var (
	ErrInvalidOrder = errors.New("invalid order")
	ErrPersistence  = errors.New("order could not be saved")
)

// totals are compared in currency units; anything beyond half a cent is a
// real mismatch, not float noise.
const totalTolerance = 0.005

// Service converts a finalized cart snapshot into a durable order plus line
// items. Prices are never taken from the client: every unit price is re-read
// from the catalog and configured baskets are replayed through the
// customization engine before anything is written.
type Service struct {
	repo     Repository
	catalog  catalog.ServiceInterface
	payments payment.ServiceInterface
}

func NewService(repo Repository, cat catalog.ServiceInterface, pay payment.ServiceInterface) *Service {
	return &Service{repo: repo, catalog: cat, payments: pay}
}

// Commit validates the snapshot, expands it into line items and persists
// everything atomically. clientTotal is the total the client displayed; a
// mismatch against the recomputed total rejects the order.
func (s *Service) Commit(userID int, snapshot []cart.Entry, paymentTypeID int, deliveryAddress string, giftMessage *string, clientTotal float64) (Order, error) {
	if userID <= 0 {
		return Order{}, ErrInvalidOrder
	}
	if len(snapshot) == 0 {
		return Order{}, ErrInvalidOrder
	}
	if strings.TrimSpace(deliveryAddress) == "" {
		return Order{}, ErrInvalidOrder
	}
	if _, err := s.payments.GetByID(paymentTypeID); err != nil {
		return Order{}, ErrInvalidOrder
	}

	items := make([]LineItem, 0, len(snapshot))
	total := 0.0

	for _, entry := range snapshot {
		if entry.Quantity < 1 {
			return Order{}, ErrInvalidOrder
		}

		switch entry.Kind {
		case cart.KindBasket:
			basket, err := s.catalog.GetBasket(entry.ProductID)
			if err != nil {
				return Order{}, ErrInvalidOrder
			}
			items = append(items, LineItem{
				ProductType: ProductTypeBasket,
				ProductID:   basket.ID,
				ProductName: basket.Name,
				Quantity:    entry.Quantity,
				UnitPrice:   basket.BasePrice,
			})
			total += basket.BasePrice * float64(entry.Quantity)

		case cart.KindCandy:
			candy, err := s.catalog.GetCandy(entry.ProductID)
			if err != nil {
				return Order{}, ErrInvalidOrder
			}
			items = append(items, LineItem{
				ProductType: ProductTypeCandy,
				ProductID:   candy.ID,
				ProductName: candy.Name,
				Quantity:    entry.Quantity,
				UnitPrice:   candy.UnitPrice,
			})
			total += candy.UnitPrice * float64(entry.Quantity)

		case cart.KindConfigured:
			// configured baskets are never merged, so a snapshot entry
			// always represents exactly one instance
			if entry.Quantity != 1 {
				return Order{}, ErrInvalidOrder
			}
			confirmed, err := s.replayConfiguration(entry)
			if err != nil {
				return Order{}, err
			}
			items = append(items, LineItem{
				ProductType: ProductTypeBasket,
				ProductID:   confirmed.BasketID,
				ProductName: confirmed.Name,
				Quantity:    1,
				UnitPrice:   confirmed.FinalTotal,
			})
			for _, extra := range confirmed.Extras {
				items = append(items, LineItem{
					ProductType: ProductTypeCandy,
					ProductID:   extra.CandyID,
					ProductName: extra.Name,
					Quantity:    extra.Quantity,
					UnitPrice:   extra.UnitPrice,
				})
			}
			total += confirmed.FinalTotal

		default:
			return Order{}, ErrInvalidOrder
		}
	}

	if total <= 0 {
		return Order{}, ErrInvalidOrder
	}
	if math.Abs(total-clientTotal) > totalTolerance {
		return Order{}, ErrInvalidOrder
	}

	ord := Order{
		UserID:          userID,
		Total:           total,
		PaymentTypeID:   paymentTypeID,
		Status:          StatusPending,
		GiftMessage:     giftMessage,
		DeliveryAddress: strings.TrimSpace(deliveryAddress),
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	created, err := s.repo.CreateWithItems(ord, items)
	if err != nil {
		fmt.Printf("warning: order commit for user %d rolled back: %v\n", userID, err)
		return Order{}, ErrPersistence
	}
	return created, nil
}

// replayConfiguration rebuilds a configured basket through the customization
// engine using catalog prices, re-enforcing the extra-item limit server-side
// and cross-checking the frozen final total the client submitted.
func (s *Service) replayConfiguration(entry cart.Entry) (customization.ConfiguredBasket, error) {
	basket, err := s.catalog.GetBasket(entry.BasketID)
	if err != nil {
		return customization.ConfiguredBasket{}, ErrInvalidOrder
	}

	builder := customization.NewBuilder(basket)
	for _, extra := range entry.Extras {
		if extra.Quantity < 1 {
			return customization.ConfiguredBasket{}, ErrInvalidOrder
		}
		candy, err := s.catalog.GetCandy(extra.CandyID)
		if err != nil {
			return customization.ConfiguredBasket{}, ErrInvalidOrder
		}
		for i := 0; i < extra.Quantity; i++ {
			if err := builder.AddExtra(candy); err != nil {
				return customization.ConfiguredBasket{}, err
			}
		}
	}

	confirmed, err := builder.Confirm()
	if err != nil {
		return customization.ConfiguredBasket{}, err
	}
	if math.Abs(confirmed.FinalTotal-entry.FinalTotal) > totalTolerance {
		return customization.ConfiguredBasket{}, ErrInvalidOrder
	}
	return confirmed, nil
}

func (s *Service) GetByID(id int) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListItems(orderID int) ([]LineItem, error) {
	return s.repo.ListItems(orderID)
}

func (s *Service) ListByUser(userID int) ([]Order, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.ListByUser(userID)
}
