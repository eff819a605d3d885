package storefront

import "fmt"

// Cart is an ordered sequence of line items owned by a single session.
// Insertion order is display order. A cart is not safe for concurrent use;
// each session operates on its own cart (see CartStore for the registry).
//
// Invariants maintained by all operations:
//   - at most one line item per product id
//   - every quantity is >= 1 (setting a quantity below 1 removes the item)
type Cart struct {
	catalog *Catalog
	items   []LineItem
}

// NewCart creates an empty cart backed by the given catalog. The catalog is
// consulted for product identity at add time and for unit prices when totals
// are computed.
func NewCart(catalog *Catalog) *Cart {
	return &Cart{catalog: catalog}
}

// Add increments the quantity of an existing line item by 1, or appends a new
// line item with quantity 1 at the end of the sequence.
func (c *Cart) Add(productID int) error {
	if _, err := c.catalog.Lookup(productID); err != nil {
		return err
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity++
			return nil
		}
	}
	c.items = append(c.items, LineItem{ProductID: productID, Quantity: 1})
	return nil
}

// SetQuantity replaces the quantity of an existing line item in place,
// keeping its position in the sequence. A quantity below 1 removes the item
// instead; a zero-quantity line item never exists.
func (c *Cart) SetQuantity(productID int, quantity int64) error {
	if quantity < 1 {
		c.Remove(productID)
		return nil
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return nil
		}
	}
	return NewStoreError(ErrCodeItemNotFound,
		fmt.Sprintf("product %d is not in the cart", productID), nil)
}

// Remove deletes the line item for the given product id. Removing an absent
// item is a no-op.
func (c *Cart) Remove(productID int) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Totals recomputes the derived aggregates from the current contents.
// Nothing is cached, so the result can never be stale.
func (c *Cart) Totals() CartTotals {
	var t CartTotals
	for _, item := range c.items {
		t.TotalItems += item.Quantity
		// Items can only enter the cart through Add, which checks the
		// catalog, so the lookup cannot fail here.
		if p, err := c.catalog.Lookup(item.ProductID); err == nil {
			t.Subtotal += item.Quantity * p.UnitPrice
		}
	}
	return t
}

// Items returns a snapshot copy of the line items in display order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}
