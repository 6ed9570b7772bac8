package domain

import "testing"

func TestCategorySizes(t *testing.T) {
	apparel := CategoryApparel.Sizes()
	if len(apparel) != 9 {
		t.Errorf("expected 9 apparel sizes, got %d", len(apparel))
	}
	if apparel[0] != "S" || apparel[len(apparel)-1] != "6XL" {
		t.Errorf("unexpected apparel vocabulary: %v", apparel)
	}

	footwear := CategoryFootwear.Sizes()
	if len(footwear) != 10 {
		t.Errorf("expected 10 footwear sizes, got %d", len(footwear))
	}
	if footwear[0] != "36" || footwear[len(footwear)-1] != "45" {
		t.Errorf("unexpected footwear vocabulary: %v", footwear)
	}

	if sizes := Category("headwear").Sizes(); sizes != nil {
		t.Errorf("expected no sizes for unknown category, got %v", sizes)
	}
}

func TestCategorySizes_ReturnsCopy(t *testing.T) {
	sizes := CategoryApparel.Sizes()
	sizes[0] = "tampered"
	if CategoryApparel.Sizes()[0] != "S" {
		t.Error("mutating the returned slice must not change the vocabulary")
	}
}

func TestCategoryValid(t *testing.T) {
	if !CategoryApparel.Valid() || !CategoryFootwear.Valid() {
		t.Error("expected both known categories to be valid")
	}
	if Category("headwear").Valid() {
		t.Error("expected unknown category to be invalid")
	}
}

func TestProductClone(t *testing.T) {
	p := DefaultCatalog()[0]
	cp := p.Clone()

	cp.SizeStock["S"] = 999
	if p.SizeStock["S"] == 999 {
		t.Error("clone must not share the stock map")
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	if len(catalog) != 2 {
		t.Fatalf("expected 2 products, got %d", len(catalog))
	}

	seen := map[Category]bool{}
	for _, p := range catalog {
		seen[p.Category] = true
		if !p.Category.Valid() {
			t.Errorf("product %s: invalid category %q", p.Name, p.Category)
		}
		if p.Price.IsNegative() {
			t.Errorf("product %s: negative price %s", p.Name, p.Price)
		}
		if len(p.SizeStock) != len(p.Category.Sizes()) {
			t.Errorf("product %s: stock table does not cover the vocabulary", p.Name)
		}
		for size, qty := range p.SizeStock {
			if qty < 0 {
				t.Errorf("product %s: negative stock for %s", p.Name, size)
			}
		}
		if p.CreatedAt.IsZero() {
			t.Errorf("product %s: zero CreatedAt", p.Name)
		}
	}
	if !seen[CategoryApparel] || !seen[CategoryFootwear] {
		t.Error("expected the default catalog to span both categories")
	}
	if !catalog[0].CreatedAt.After(catalog[1].CreatedAt) {
		t.Error("expected the first product to be the newest")
	}
}

func TestDefaultCatalog_SharesNoState(t *testing.T) {
	first := DefaultCatalog()
	first[0].SizeStock["S"] = 999
	if DefaultCatalog()[0].SizeStock["S"] == 999 {
		t.Error("catalogs from separate calls must not share stock maps")
	}
}
