package customization

import (
	"errors"

	"github.com/josuemn/canastas-backend/internal/catalog"
)

var (
	ErrLimitExceeded = errors.New("customization limit exceeded")
	ErrNotFound      = errors.New("candy not in selection")
)

// Extra is one selected extra candy inside a basket being configured.
// Price and name are snapshotted from the catalog at selection time.
type Extra struct {
	CandyID   int     `json:"id"`
	Name      string  `json:"nombre"`
	UnitPrice float64 `json:"precio"`
	Quantity  int     `json:"cantidad"`
}

// ConfiguredBasket is the immutable snapshot produced by Confirm. Once a
// configured basket reaches the cart, its prices and selection never change.
type ConfiguredBasket struct {
	BasketID   int     `json:"id_canasta_original"`
	Name       string  `json:"nombre"`
	BasePrice  float64 `json:"precio_base"`
	ExtraCost  float64 `json:"costo_extra"`
	FinalTotal float64 `json:"precio_final"`
	Extras     []Extra `json:"detalle_personalizado"`
}

// Builder holds the in-progress customization of one basket. It enforces the
// basket's extra-item limit on every mutation and keeps extras in insertion
// order. The same builder backs the interactive flow and the server-side
// re-validation done at order commit.
type Builder struct {
	basket catalog.Basket
	extras []Extra
}

func NewBuilder(basket catalog.Basket) *Builder {
	return &Builder{basket: basket}
}

func (b *Builder) Basket() catalog.Basket {
	return b.basket
}

// AddExtra adds one unit of the given candy. The limit is re-checked here
// even though the UI disables the action once the allowance is used up.
func (b *Builder) AddExtra(candy catalog.Candy) error {
	if b.SelectedQuantity() >= b.basket.CustomizationLimit {
		return ErrLimitExceeded
	}

	for i := range b.extras {
		if b.extras[i].CandyID == candy.ID {
			b.extras[i].Quantity++
			return nil
		}
	}

	b.extras = append(b.extras, Extra{
		CandyID:   candy.ID,
		Name:      candy.Name,
		UnitPrice: candy.UnitPrice,
		Quantity:  1,
	})
	return nil
}

// RemoveExtra removes one unit of the candy. The entry disappears entirely
// when its quantity reaches zero.
func (b *Builder) RemoveExtra(candyID int) error {
	for i := range b.extras {
		if b.extras[i].CandyID == candyID {
			if b.extras[i].Quantity > 1 {
				b.extras[i].Quantity--
			} else {
				b.extras = append(b.extras[:i], b.extras[i+1:]...)
			}
			return nil
		}
	}
	return ErrNotFound
}

func (b *Builder) SelectedQuantity() int {
	total := 0
	for _, e := range b.extras {
		total += e.Quantity
	}
	return total
}

// RemainingCapacity may be negative when the selection exceeds the limit;
// confirmation is blocked whenever it is below zero.
func (b *Builder) RemainingCapacity() int {
	return b.basket.CustomizationLimit - b.SelectedQuantity()
}

// ExtraCost is recomputed from the current selection on every call.
func (b *Builder) ExtraCost() float64 {
	cost := 0.0
	for _, e := range b.extras {
		cost += e.UnitPrice * float64(e.Quantity)
	}
	return cost
}

func (b *Builder) FinalTotal() float64 {
	return b.basket.BasePrice + b.ExtraCost()
}

// Extras returns a copy of the current selection in insertion order.
func (b *Builder) Extras() []Extra {
	out := make([]Extra, len(b.extras))
	copy(out, b.extras)
	return out
}

// Confirm freezes the current selection into a ConfiguredBasket. It fails
// with ErrLimitExceeded when the selection is over the limit and leaves the
// builder untouched in that case.
func (b *Builder) Confirm() (ConfiguredBasket, error) {
	if b.SelectedQuantity() > b.basket.CustomizationLimit {
		return ConfiguredBasket{}, ErrLimitExceeded
	}

	return ConfiguredBasket{
		BasketID:   b.basket.ID,
		Name:       b.basket.Name,
		BasePrice:  b.basket.BasePrice,
		ExtraCost:  b.ExtraCost(),
		FinalTotal: b.FinalTotal(),
		Extras:     b.Extras(),
	}, nil
}
