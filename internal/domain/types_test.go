package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewList(t *testing.T) {
	l := NewList("  Groceries  ")

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "Groceries", l.Name)
	assert.Empty(t, l.Items)
}

func TestNewItemUniqueIDs(t *testing.T) {
	a := NewItem("Apples", 1, 2)
	b := NewItem("Apples", 1, 2)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTotal(t *testing.T) {
	l := NewList("Groceries").
		WithItem(Item{ID: "a", Name: "Apples", Quantity: 2, Price: 3}).
		WithItem(Item{ID: "b", Name: "Bread", Quantity: 1, Price: 5})

	assert.Equal(t, 11, l.Total())
	assert.Equal(t, "11.00", FormatAmount(l.Total()))
}

func TestTotalEmptyList(t *testing.T) {
	assert.Equal(t, 0, NewList("Empty").Total())
}

func TestSubtotal(t *testing.T) {
	assert.Equal(t, 6, Item{Quantity: 2, Price: 3}.Subtotal())
	assert.Equal(t, 0, Item{Quantity: 0, Price: 9}.Subtotal())
}

func TestWithItemDoesNotAliasReceiver(t *testing.T) {
	orig := NewList("Groceries").WithItem(Item{ID: "a", Name: "Apples", Quantity: 1, Price: 2})
	grown := orig.WithItem(Item{ID: "b", Name: "Bread", Quantity: 1, Price: 5})

	assert.Len(t, orig.Items, 1)
	assert.Len(t, grown.Items, 2)

	// Mutating the copy must not reach the original.
	grown.Items[0].Quantity = 99
	assert.Equal(t, 1, orig.Items[0].Quantity)
}

func TestWithoutItem(t *testing.T) {
	l := NewList("Groceries").
		WithItem(Item{ID: "a", Name: "Apples"}).
		WithItem(Item{ID: "b", Name: "Bread"})

	removed := l.WithoutItem("a")
	assert.Len(t, removed.Items, 1)
	assert.Equal(t, "b", removed.Items[0].ID)

	// Unknown id leaves the list unchanged.
	same := l.WithoutItem("nope")
	assert.Len(t, same.Items, 2)
}

func TestWithItemUpdate(t *testing.T) {
	l := NewList("Groceries").
		WithItem(Item{ID: "a", Name: "Apples", Quantity: 1, Price: 2}).
		WithItem(Item{ID: "b", Name: "Bread", Quantity: 1, Price: 5})

	updated, found := l.WithItemUpdate("b", func(it Item) Item {
		it.Quantity = 4
		return it
	})
	require.True(t, found)
	assert.Equal(t, 4, updated.Items[1].Quantity)
	assert.Equal(t, 1, l.Items[1].Quantity)

	// Order is preserved and ids are immutable even if the callback
	// tries to change one.
	updated, found = l.WithItemUpdate("a", func(it Item) Item {
		it.ID = "hijacked"
		return it
	})
	require.True(t, found)
	assert.Equal(t, "a", updated.Items[0].ID)

	_, found = l.WithItemUpdate("nope", func(it Item) Item { return it })
	assert.False(t, found)
}

func TestWithQuantitiesReset(t *testing.T) {
	l := NewList("Groceries").
		WithItem(Item{ID: "a", Name: "Apples", Quantity: 3, Price: 2}).
		WithItem(Item{ID: "b", Name: "Bread", Quantity: 7, Price: 5})

	reset := l.WithQuantitiesReset()
	require.Len(t, reset.Items, 2)
	assert.Equal(t, 0, reset.Items[0].Quantity)
	assert.Equal(t, 0, reset.Items[1].Quantity)
	// Everything but quantities is untouched.
	assert.Equal(t, "Apples", reset.Items[0].Name)
	assert.Equal(t, 2, reset.Items[0].Price)

	// Idempotent: applying twice equals applying once.
	assert.Equal(t, reset, reset.WithQuantitiesReset())

	// The original is unchanged.
	assert.Equal(t, 3, l.Items[0].Quantity)
}

func TestRenamed(t *testing.T) {
	l := NewList("Groceries")

	renamed, changed := l.Renamed("  Weekly shop  ")
	assert.True(t, changed)
	assert.Equal(t, "Weekly shop", renamed.Name)

	_, changed = l.Renamed("   ")
	assert.False(t, changed, "whitespace-only rename must be discarded")

	_, changed = l.Renamed("Groceries")
	assert.False(t, changed, "unchanged name must be discarded")
}
