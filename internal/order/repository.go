package order

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("order not found")
)

// Repository defines persistence operations for orders. CreateWithItems must
// be atomic: either the order row and every line item are written, or
// nothing is.
type Repository interface {
	CreateWithItems(ord Order, items []LineItem) (Order, error)
	GetByID(id int) (Order, error)
	ListItems(orderID int) ([]LineItem, error)
	ListByUser(userID int) ([]Order, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	items  map[int][]LineItem
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items:  make(map[int][]LineItem),
		nextID: 1,
	}
}

func (r *InMemoryRepository) CreateWithItems(ord Order, items []LineItem) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ord.ID = r.nextID
	r.nextID++

	stored := make([]LineItem, len(items))
	copy(stored, items)
	for i := range stored {
		stored[i].OrderID = ord.ID
	}

	r.orders = append(r.orders, ord)
	r.items[ord.ID] = stored
	return ord, nil
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.orders {
		if ord.ID == id {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) ListItems(orderID int) ([]LineItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items, ok := r.items[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out, nil
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0)
	for _, ord := range r.orders {
		if ord.UserID == userID {
			out = append(out, ord)
		}
	}
	return out, nil
}
