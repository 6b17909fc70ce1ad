package payment

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("payment type not found")
)

type Repository interface {
	List() ([]PaymentType, error)
	GetByID(id int) (PaymentType, error)
}

// InMemoryRepository for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	types []PaymentType
}

func NewInMemoryRepository(seed []PaymentType) *InMemoryRepository {
	r := &InMemoryRepository{types: make([]PaymentType, 0, len(seed))}
	r.types = append(r.types, seed...)
	return r
}

func (r *InMemoryRepository) List() ([]PaymentType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]PaymentType, len(r.types))
	copy(out, r.types)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (PaymentType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.types {
		if t.ID == id {
			return t, nil
		}
	}
	return PaymentType{}, ErrNotFound
}
