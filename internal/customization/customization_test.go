package customization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josuemn/canastas-backend/internal/catalog"
)

var (
	clasica = catalog.Basket{ID: 1, Name: "Clásica", BasePrice: 150.00, CustomizationLimit: 3, Active: true}

	chocolate = catalog.Candy{ID: 10, Name: "Chocolate con leche", UnitPrice: 20.00, Active: true, Stock: 50}
	gomitas   = catalog.Candy{ID: 11, Name: "Gomitas de frutas", UnitPrice: 12.50, Active: true, Stock: 50}
)

func TestAddExtra_MergesAndPreservesOrder(t *testing.T) {
	b := NewBuilder(clasica)

	require.NoError(t, b.AddExtra(chocolate))
	require.NoError(t, b.AddExtra(gomitas))
	require.NoError(t, b.AddExtra(chocolate))

	extras := b.Extras()
	require.Len(t, extras, 2)
	assert.Equal(t, chocolate.ID, extras[0].CandyID)
	assert.Equal(t, 2, extras[0].Quantity)
	assert.Equal(t, gomitas.ID, extras[1].CandyID)
	assert.Equal(t, 1, extras[1].Quantity)
}

func TestAddExtra_RejectsOverLimit(t *testing.T) {
	b := NewBuilder(clasica)

	for i := 0; i < clasica.CustomizationLimit; i++ {
		require.NoError(t, b.AddExtra(chocolate))
	}

	err := b.AddExtra(gomitas)
	assert.ErrorIs(t, err, ErrLimitExceeded)
	// rejected add leaves state unchanged
	assert.Equal(t, clasica.CustomizationLimit, b.SelectedQuantity())
	assert.Len(t, b.Extras(), 1)
}

func TestRemoveExtra(t *testing.T) {
	b := NewBuilder(clasica)
	require.NoError(t, b.AddExtra(chocolate))
	require.NoError(t, b.AddExtra(chocolate))

	require.NoError(t, b.RemoveExtra(chocolate.ID))
	assert.Equal(t, 1, b.SelectedQuantity())

	// removing the last unit deletes the entry entirely
	require.NoError(t, b.RemoveExtra(chocolate.ID))
	assert.Empty(t, b.Extras())

	assert.ErrorIs(t, b.RemoveExtra(chocolate.ID), ErrNotFound)
	assert.ErrorIs(t, b.RemoveExtra(999), ErrNotFound)
}

func TestRemainingCapacity_InvariantOverOpSequences(t *testing.T) {
	// alternating adds and removes, including rejected ops
	ops := []struct {
		add   bool
		candy catalog.Candy
	}{
		{true, chocolate}, {true, gomitas}, {false, chocolate},
		{true, chocolate}, {true, chocolate}, {true, gomitas},
		{false, gomitas}, {true, gomitas}, {true, chocolate},
		{false, chocolate}, {false, chocolate}, {false, gomitas},
	}

	b := NewBuilder(clasica)
	for _, op := range ops {
		if op.add {
			_ = b.AddExtra(op.candy)
		} else {
			_ = b.RemoveExtra(op.candy.ID)
		}

		sum := 0
		for _, e := range b.Extras() {
			sum += e.Quantity
			require.GreaterOrEqual(t, e.Quantity, 1, "no zero-quantity entries may persist")
		}
		assert.Equal(t, clasica.CustomizationLimit-sum, b.RemainingCapacity())
		assert.LessOrEqual(t, sum, clasica.CustomizationLimit)
	}
}

func TestTotals_RecomputedFromState(t *testing.T) {
	b := NewBuilder(clasica)
	require.NoError(t, b.AddExtra(chocolate))
	require.NoError(t, b.AddExtra(chocolate))

	assert.InDelta(t, 40.00, b.ExtraCost(), 1e-9)
	assert.InDelta(t, 190.00, b.FinalTotal(), 1e-9)

	require.NoError(t, b.RemoveExtra(chocolate.ID))
	assert.InDelta(t, 20.00, b.ExtraCost(), 1e-9)
	assert.InDelta(t, 170.00, b.FinalTotal(), 1e-9)
}

func TestConfirm(t *testing.T) {
	b := NewBuilder(clasica)
	require.NoError(t, b.AddExtra(chocolate))
	require.NoError(t, b.AddExtra(chocolate))

	cb, err := b.Confirm()
	require.NoError(t, err)
	assert.Equal(t, clasica.ID, cb.BasketID)
	assert.InDelta(t, 150.00, cb.BasePrice, 1e-9)
	assert.InDelta(t, 40.00, cb.ExtraCost, 1e-9)
	assert.InDelta(t, 190.00, cb.FinalTotal, 1e-9)
	require.Len(t, cb.Extras, 1)
	assert.Equal(t, 2, cb.Extras[0].Quantity)

	// the snapshot is frozen: later mutations do not touch it
	require.NoError(t, b.AddExtra(gomitas))
	assert.Len(t, cb.Extras, 1)
	assert.InDelta(t, 190.00, cb.FinalTotal, 1e-9)
}

func TestConfirm_NeverSucceedsOverLimit(t *testing.T) {
	// a limit of zero means any selection is over the cap
	strict := catalog.Basket{ID: 2, Name: "Sin extras", BasePrice: 100, CustomizationLimit: 0}
	b := NewBuilder(strict)
	assert.ErrorIs(t, b.AddExtra(chocolate), ErrLimitExceeded)

	cb, err := b.Confirm()
	require.NoError(t, err)
	assert.Empty(t, cb.Extras)
	assert.InDelta(t, 100.0, cb.FinalTotal, 1e-9)
}
