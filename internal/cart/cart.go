package cart

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/josuemn/canastas-backend/internal/catalog"
	"github.com/josuemn/canastas-backend/internal/customization"
)

// Kind discriminates the three cart entry variants. The values double as the
// `tipo` field of the wire format the storefront pages exchange.
type Kind string

const (
	KindBasket     Kind = "Canasta"
	KindCandy      Kind = "Dulce"
	KindConfigured Kind = "Canasta_Configurada"
)

// Entry is one purchasable line pending checkout. Ref is the cart-local
// identifier used for removal; it is never a catalog id, so two
// independently configured baskets of the same catalog basket stay
// distinguishable. Price and detail are frozen once the entry exists; only
// Quantity or removal mutates an entry afterwards.
type Entry struct {
	Ref       string  `json:"ref"`
	Kind      Kind    `json:"tipo"`
	Name      string  `json:"nombre"`
	Quantity  int     `json:"cantidad"`
	ProductID int     `json:"id,omitempty"`
	UnitPrice float64 `json:"precio,omitempty"`

	// configured-basket fields
	BasketID   int                   `json:"id_canasta_original,omitempty"`
	BasePrice  float64               `json:"precio_base,omitempty"`
	FinalTotal float64               `json:"precio_final,omitempty"`
	Extras     []customization.Extra `json:"detalle_personalizado,omitempty"`
}

// Price is the effective unit price of the entry. For a configured basket
// that is its frozen final total.
func (e Entry) Price() float64 {
	switch e.Kind {
	case KindConfigured:
		return e.FinalTotal
	case KindBasket, KindCandy:
		return e.UnitPrice
	default:
		return e.UnitPrice
	}
}

// Cart is the ordered, session-scoped collection of entries. Display totals
// and the submittable item list derive purely from the entry sequence; there
// is no hidden side state.
type Cart struct {
	entries []Entry
}

func New() *Cart {
	return &Cart{}
}

// AddPredefined adds a predefined basket. Entries merge on
// (catalog id, kind), so adding the same basket twice increments quantity.
// A configured basket of the same catalog basket never merges with it.
func (c *Cart) AddPredefined(basket catalog.Basket) Entry {
	return c.addMerging(KindBasket, basket.ID, basket.Name, basket.BasePrice)
}

// AddCandy adds a standalone candy with the same merge rule.
func (c *Cart) AddCandy(candy catalog.Candy) Entry {
	return c.addMerging(KindCandy, candy.ID, candy.Name, candy.UnitPrice)
}

func (c *Cart) addMerging(kind Kind, productID int, name string, price float64) Entry {
	for i := range c.entries {
		if c.entries[i].Kind == kind && c.entries[i].ProductID == productID {
			c.entries[i].Quantity++
			return c.entries[i]
		}
	}

	e := Entry{
		Ref:       uuid.NewString(),
		Kind:      kind,
		ProductID: productID,
		Name:      name,
		UnitPrice: price,
		Quantity:  1,
	}
	c.entries = append(c.entries, e)
	return e
}

// AddConfigured appends a configured basket snapshot as a new entry. It is
// never merged: every confirmed configuration is its own line with a fresh
// ref, even when the underlying basket id repeats.
func (c *Cart) AddConfigured(cb customization.ConfiguredBasket) Entry {
	e := Entry{
		Ref:        uuid.NewString(),
		Kind:       KindConfigured,
		Name:       cb.Name,
		Quantity:   1,
		BasketID:   cb.BasketID,
		BasePrice:  cb.BasePrice,
		FinalTotal: cb.FinalTotal,
		Extras:     append([]customization.Extra(nil), cb.Extras...),
	}
	c.entries = append(c.entries, e)
	return e
}

// Remove deletes the entry with the given ref. Unknown refs are a no-op.
func (c *Cart) Remove(ref string) {
	for i := range c.entries {
		if c.entries[i].Ref == ref {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

func (c *Cart) Total() float64 {
	total := 0.0
	for _, e := range c.entries {
		total += e.Price() * float64(e.Quantity)
	}
	return total
}

func (c *Cart) Len() int {
	return len(c.entries)
}

// Clear empties the cart. Called after a successful order commit.
func (c *Cart) Clear() {
	c.entries = nil
}

// Entries returns a copy of the entry sequence in insertion order.
func (c *Cart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// MarshalJSON serializes the cart as a plain ordered array of entries so it
// round-trips losslessly through the browser session store.
func (c *Cart) MarshalJSON() ([]byte, error) {
	if c.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.entries)
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	c.entries = entries
	return nil
}
