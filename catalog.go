package storefront

import "fmt"

// Catalog is an immutable set of products. It is built once and only read
// afterwards, so it needs no locking.
type Catalog struct {
	products []Product
	byID     map[int]Product
}

// NewCatalog creates a catalog from a product slice. Later duplicates of the
// same product id replace earlier ones in the lookup map but keep the original
// display position.
func NewCatalog(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[int]Product, len(products)),
	}
	for _, p := range products {
		if _, exists := c.byID[p.ID]; !exists {
			c.products = append(c.products, p)
		}
		c.byID[p.ID] = p
	}
	return c
}

// Lookup returns the product for the given id.
func (c *Catalog) Lookup(id int) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, NewStoreError(ErrCodeUnknownProduct,
			fmt.Sprintf("no product with id %d", id), nil)
	}
	return p, nil
}

// Products returns all products in display order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns the unique product categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// FilterByCategory returns the products in the given category, in display
// order. An unknown category yields an empty slice.
func (c *Catalog) FilterByCategory(category string) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// DefaultCatalog returns the stock storefront catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Product{
		{ID: 1, Name: "Premium Laptop Bag", UnitPrice: 1899, Category: "Bags", Rating: 4.5, InStock: true},
		{ID: 2, Name: "Ergonomic Wireless Mouse", UnitPrice: 899, Category: "Accessories", Rating: 4.3, InStock: true},
		{ID: 3, Name: "Mechanical Keyboard", UnitPrice: 2499, Category: "Accessories", Rating: 4.8, InStock: true},
		{ID: 4, Name: "7-in-1 USB-C Hub", UnitPrice: 1299, Category: "Accessories", Rating: 4.2, InStock: true},
		{ID: 5, Name: "Adjustable Laptop Stand", UnitPrice: 1599, Category: "Furniture", Rating: 4.6, InStock: true},
		{ID: 6, Name: "Noise Cancelling Headset", UnitPrice: 3499, Category: "Audio", Rating: 4.7, InStock: true},
		{ID: 7, Name: "Wireless Charging Pad", UnitPrice: 1199, Category: "Accessories", Rating: 4.4, InStock: true},
		{ID: 8, Name: "4K Webcam", UnitPrice: 2799, Category: "Electronics", Rating: 4.5, InStock: true},
		{ID: 9, Name: "Premium Notebook Set", UnitPrice: 599, Category: "Stationery", Rating: 4.1, InStock: true},
		{ID: 10, Name: "Executive Pen Set", UnitPrice: 899, Category: "Stationery", Rating: 4.3, InStock: true},
		{ID: 11, Name: "Desk Organizer", UnitPrice: 699, Category: "Office", Rating: 4.2, InStock: true},
		{ID: 12, Name: "Anti-Fatigue Mat", UnitPrice: 1299, Category: "Office", Rating: 4.0, InStock: true},
	})
}
