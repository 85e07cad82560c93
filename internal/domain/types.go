package domain

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Item is a single entry in a shopping list. Quantity and Price are whole
// non-negative amounts; the price is a unit price.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// ShoppingList is a named, ordered collection of items. Items keep insertion
// order; new items are appended.
type ShoppingList struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

func NewItem(name string, quantity, price int) Item {
	return Item{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(name),
		Quantity: quantity,
		Price:    price,
	}
}

func NewList(name string) ShoppingList {
	return ShoppingList{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(name),
		Items: []Item{},
	}
}

// Subtotal is quantity times unit price.
func (i Item) Subtotal() int {
	return i.Quantity * i.Price
}

// Total sums the subtotals of all items. Recomputed on every call; the
// lists involved are small enough that caching would buy nothing.
func (l ShoppingList) Total() int {
	total := 0
	for _, item := range l.Items {
		total += item.Subtotal()
	}
	return total
}

// Item returns the item with the given id.
func (l ShoppingList) Item(id string) (Item, bool) {
	for _, item := range l.Items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// The With* helpers never mutate the receiver's Items slice: each returns a
// list holding a fresh slice, so callers may keep handing the previous value
// around. The repository replaces whole lists; nothing patches in place.

// WithItem returns a copy of the list with item appended.
func (l ShoppingList) WithItem(item Item) ShoppingList {
	items := make([]Item, 0, len(l.Items)+1)
	items = append(items, l.Items...)
	items = append(items, item)
	l.Items = items
	return l
}

// WithoutItem returns a copy of the list with the matching item removed.
// Unknown ids leave the copy unchanged.
func (l ShoppingList) WithoutItem(id string) ShoppingList {
	items := make([]Item, 0, len(l.Items))
	for _, item := range l.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	l.Items = items
	return l
}

// WithItemUpdate returns a copy of the list where the matching item has been
// replaced by update(item). The bool reports whether a match was found;
// without one the copy is unchanged. The item id is immutable regardless of
// what update returns.
func (l ShoppingList) WithItemUpdate(id string, update func(Item) Item) (ShoppingList, bool) {
	items := slices.Clone(l.Items)
	found := false
	for idx, item := range items {
		if item.ID == id {
			updated := update(item)
			updated.ID = item.ID
			items[idx] = updated
			found = true
			break
		}
	}
	l.Items = items
	return l, found
}

// WithQuantitiesReset returns a copy of the list with every quantity set to
// zero, preserving order and all other fields.
func (l ShoppingList) WithQuantitiesReset() ShoppingList {
	items := slices.Clone(l.Items)
	for idx := range items {
		items[idx].Quantity = 0
	}
	l.Items = items
	return l
}

// Renamed returns a copy of the list carrying the trimmed name. A name that
// is empty after trimming, or identical to the current one, is discarded;
// the bool reports whether the rename should be committed.
func (l ShoppingList) Renamed(name string) (ShoppingList, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed == l.Name {
		return l, false
	}
	l.Name = trimmed
	return l, true
}
