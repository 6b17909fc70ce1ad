package address

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("address not found")
)

type Repository interface {
	List(userID int) ([]Address, error)
	Create(addr Address) (Address, error)
	Delete(userID, addressID int) error
}

// InMemoryRepository for tests.
type InMemoryRepository struct {
	mu     sync.RWMutex
	data   map[int][]Address // keyed by userID
	nextID int
}

func NewInMemoryRepository(seed map[int][]Address) *InMemoryRepository {
	r := &InMemoryRepository{data: make(map[int][]Address), nextID: 1}
	for userID, addrs := range seed {
		r.data[userID] = append([]Address(nil), addrs...)
		for _, a := range addrs {
			if a.ID >= r.nextID {
				r.nextID = a.ID + 1
			}
		}
	}
	return r
}

func (r *InMemoryRepository) List(userID int) ([]Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Address, len(r.data[userID]))
	copy(out, r.data[userID])
	return out, nil
}

func (r *InMemoryRepository) Create(addr Address) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	addr.ID = r.nextID
	r.nextID++
	r.data[addr.UserID] = append(r.data[addr.UserID], addr)
	return addr, nil
}

func (r *InMemoryRepository) Delete(userID, addressID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	addrs := r.data[userID]
	for i, a := range addrs {
		if a.ID == addressID {
			r.data[userID] = append(addrs[:i], addrs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
