package cart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josuemn/canastas-backend/internal/catalog"
	"github.com/josuemn/canastas-backend/internal/customization"
)

var (
	clasica   = catalog.Basket{ID: 1, Name: "Clásica", BasePrice: 150.00, CustomizationLimit: 3, Active: true}
	chocolate = catalog.Candy{ID: 10, Name: "Chocolate con leche", UnitPrice: 20.00, Active: true, Stock: 50}
)

func configuredClasica(t *testing.T) customization.ConfiguredBasket {
	t.Helper()
	b := customization.NewBuilder(clasica)
	require.NoError(t, b.AddExtra(chocolate))
	require.NoError(t, b.AddExtra(chocolate))
	cb, err := b.Confirm()
	require.NoError(t, err)
	return cb
}

func TestAddPredefined_MergesOnIDAndKind(t *testing.T) {
	c := New()
	c.AddPredefined(clasica)
	c.AddPredefined(clasica)

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
	assert.Equal(t, KindBasket, entries[0].Kind)
	assert.InDelta(t, 300.00, c.Total(), 1e-9)
}

func TestAddCandy_DoesNotMergeWithBasketOfSameID(t *testing.T) {
	c := New()
	c.AddPredefined(clasica)
	c.AddCandy(catalog.Candy{ID: clasica.ID, Name: "Dulce homónimo", UnitPrice: 5.00})

	require.Equal(t, 2, c.Len())
}

func TestAddConfigured_AlwaysAppends(t *testing.T) {
	c := New()
	first := c.AddConfigured(configuredClasica(t))
	second := c.AddConfigured(configuredClasica(t))

	// two configurations of the same catalog basket stay distinct
	require.Equal(t, 2, c.Len())
	assert.NotEqual(t, first.Ref, second.Ref)
	assert.InDelta(t, 380.00, c.Total(), 1e-9)

	// a predefined add of the same basket id never merges into them
	c.AddPredefined(clasica)
	require.Equal(t, 3, c.Len())
}

func TestRemove_ByRef(t *testing.T) {
	c := New()
	entry := c.AddConfigured(configuredClasica(t))
	c.AddPredefined(clasica)

	c.Remove(entry.Ref)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, KindBasket, c.Entries()[0].Kind)

	// removing an unknown ref is a no-op
	c.Remove("no-such-ref")
	assert.Equal(t, 1, c.Len())
}

func TestClear(t *testing.T) {
	c := New()
	c.AddPredefined(clasica)
	c.AddConfigured(configuredClasica(t))

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Zero(t, c.Total())
}

func TestEntryPrice_ConfiguredUsesFrozenFinalTotal(t *testing.T) {
	c := New()
	entry := c.AddConfigured(configuredClasica(t))
	assert.InDelta(t, 190.00, entry.Price(), 1e-9)

	plain := c.AddPredefined(clasica)
	assert.InDelta(t, 150.00, plain.Price(), 1e-9)
}

func TestCart_JSONRoundTrip(t *testing.T) {
	c := New()
	c.AddPredefined(clasica)
	c.AddCandy(chocolate)
	c.AddConfigured(configuredClasica(t))

	data, err := json.Marshal(c)
	require.NoError(t, err)

	restored := New()
	require.NoError(t, json.Unmarshal(data, restored))

	assert.Equal(t, c.Entries(), restored.Entries())
	assert.InDelta(t, c.Total(), restored.Total(), 1e-9)
}

func TestEmptyCart_MarshalsToEmptyArray(t *testing.T) {
	data, err := json.Marshal(New())
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}
