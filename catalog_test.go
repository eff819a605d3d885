package storefront

import "testing"

func TestCatalogLookup(t *testing.T) {
	catalog := DefaultCatalog()

	p, err := catalog.Lookup(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Mechanical Keyboard" || p.UnitPrice != 2499 {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestCatalogLookupUnknown(t *testing.T) {
	catalog := DefaultCatalog()

	_, err := catalog.Lookup(999)
	if err == nil {
		t.Fatal("expected an error for an unknown product id")
	}
	if ErrorCode(err) != ErrCodeUnknownProduct {
		t.Fatalf("expected %s, got %s", ErrCodeUnknownProduct, ErrorCode(err))
	}
}

func TestCatalogCategories(t *testing.T) {
	catalog := NewCatalog([]Product{
		{ID: 1, Category: "Bags"},
		{ID: 2, Category: "Accessories"},
		{ID: 3, Category: "Bags"},
		{ID: 4, Category: "Audio"},
	})

	got := catalog.Categories()
	want := []string{"Bags", "Accessories", "Audio"}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestCatalogFilterByCategory(t *testing.T) {
	catalog := DefaultCatalog()

	accessories := catalog.FilterByCategory("Accessories")
	if len(accessories) != 4 {
		t.Fatalf("expected 4 accessories, got %d", len(accessories))
	}
	for _, p := range accessories {
		if p.Category != "Accessories" {
			t.Fatalf("unexpected category %s", p.Category)
		}
	}

	if got := catalog.FilterByCategory("Nonexistent"); len(got) != 0 {
		t.Fatalf("expected no products, got %d", len(got))
	}
}

func TestCatalogProductsIsCopy(t *testing.T) {
	catalog := DefaultCatalog()

	products := catalog.Products()
	products[0].Name = "mutated"

	if catalog.Products()[0].Name == "mutated" {
		t.Fatal("Products must return a copy")
	}
}
