package catalog

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("catalog item not found")
)

type Repository interface {
	ListBaskets() ([]Basket, error)
	GetBasket(id int) (Basket, error)
	ListContents(basketID int) ([]Content, error)
	ListCandies() ([]Candy, error)
	GetCandy(id int) (Candy, error)
	// ListCandiesByIDs returns the candies whose id is present in ids,
	// ordered the same way as the ids argument. An empty ids slice must
	// return an empty slice without hitting the database.
	ListCandiesByIDs(ids []int) ([]Candy, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and seeding local data.
type InMemoryRepository struct {
	mu       sync.RWMutex
	baskets  []Basket
	contents map[int][]Content // keyed by basket id
	candies  []Candy
}

func NewInMemoryRepository(baskets []Basket, contents map[int][]Content, candies []Candy) *InMemoryRepository {
	r := &InMemoryRepository{
		baskets:  make([]Basket, 0, len(baskets)),
		contents: make(map[int][]Content, len(contents)),
		candies:  make([]Candy, 0, len(candies)),
	}
	r.baskets = append(r.baskets, baskets...)
	for id, cs := range contents {
		r.contents[id] = append([]Content(nil), cs...)
	}
	r.candies = append(r.candies, candies...)
	return r
}

func (r *InMemoryRepository) ListBaskets() ([]Basket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Basket, 0, len(r.baskets))
	for _, b := range r.baskets {
		if b.Active {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetBasket(id int) (Basket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.baskets {
		if b.ID == id {
			return b, nil
		}
	}
	return Basket{}, ErrNotFound
}

func (r *InMemoryRepository) ListContents(basketID int) ([]Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cs, ok := r.contents[basketID]
	if !ok {
		return []Content{}, nil
	}
	out := make([]Content, len(cs))
	copy(out, cs)
	return out, nil
}

func (r *InMemoryRepository) ListCandies() ([]Candy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Candy, 0, len(r.candies))
	for _, c := range r.candies {
		if c.Active && c.Stock > 0 {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetCandy(id int) (Candy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.candies {
		if c.ID == id {
			return c, nil
		}
	}
	return Candy{}, ErrNotFound
}

func (r *InMemoryRepository) ListCandiesByIDs(ids []int) ([]Candy, error) {
	if len(ids) == 0 {
		return []Candy{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Candy, 0, len(ids))
	for _, id := range ids {
		for _, c := range r.candies {
			if c.ID == id {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}
