package cashbook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ShoppingCart manages the shared planned-purchases list. Items start out
// planned; confirming one marks its cost as consumed budget.
type ShoppingCart struct {
	store *Store
}

// NewShoppingCart returns a shopping cart over the given store.
func NewShoppingCart(s *Store) *ShoppingCart { return &ShoppingCart{store: s} }

// Items returns the cart items in stored order.
func (c *ShoppingCart) Items() ([]ShoppingItem, error) {
	var items []ShoppingItem
	if err := c.store.Get(KeyShoppingCart, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Add appends a planned item to the cart.
func (c *ShoppingCart) Add(name string, cost decimal.Decimal) (ShoppingItem, error) {
	item := ShoppingItem{Name: name, Cost: cost}
	if err := item.Validate(); err != nil {
		return ShoppingItem{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	var items []ShoppingItem
	err := c.store.Update(KeyShoppingCart, &items, func() (any, error) {
		return append(items, item), nil
	})
	if err != nil {
		return ShoppingItem{}, err
	}
	return item, nil
}

// SetConfirmed sets the confirmed flag of the item at index. An index outside
// the cart leaves it unchanged and reports ErrOutOfRange.
func (c *ShoppingCart) SetConfirmed(index int, confirmed bool) error {
	var items []ShoppingItem
	return c.store.Update(KeyShoppingCart, &items, func() (any, error) {
		if index < 0 || index >= len(items) {
			return nil, fmt.Errorf("item %d: %w, cart has %d items", index, ErrOutOfRange, len(items))
		}
		items[index].Confirmed = confirmed
		return items, nil
	})
}

// Remove deletes the item at index. An index outside the cart leaves it
// unchanged and reports ErrOutOfRange.
func (c *ShoppingCart) Remove(index int) error {
	var items []ShoppingItem
	return c.store.Update(KeyShoppingCart, &items, func() (any, error) {
		if index < 0 || index >= len(items) {
			return nil, fmt.Errorf("item %d: %w, cart has %d items", index, ErrOutOfRange, len(items))
		}
		return append(items[:index], items[index+1:]...), nil
	})
}

// ReplaceAll swaps the whole cart content, validating every item first.
func (c *ShoppingCart) ReplaceAll(items []ShoppingItem) error {
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return fmt.Errorf("%w: item %d: %v", ErrInvalidInput, i, err)
		}
	}
	if items == nil {
		items = []ShoppingItem{}
	}
	return c.store.Put(KeyShoppingCart, items)
}
