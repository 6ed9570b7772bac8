package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category decides which size vocabulary a product sells in. It is fixed
// when the product is created.
type Category string

const (
	CategoryApparel  Category = "apparel"
	CategoryFootwear Category = "footwear"
)

var (
	apparelSizes  = []string{"S", "M", "L", "XL", "XXL", "XXXL", "4XL", "5XL", "6XL"}
	footwearSizes = []string{"36", "37", "38", "39", "40", "41", "42", "43", "44", "45"}
)

// Sizes returns the closed size vocabulary for the category, in display
// order. Unknown categories have no sizes.
func (c Category) Sizes() []string {
	switch c {
	case CategoryApparel:
		return append([]string(nil), apparelSizes...)
	case CategoryFootwear:
		return append([]string(nil), footwearSizes...)
	}
	return nil
}

func (c Category) Valid() bool {
	return c == CategoryApparel || c == CategoryFootwear
}

// Product is a catalog entry with per-size stock counters. SizeStock maps
// a size label from the category's vocabulary to the quantity on hand;
// a missing entry reads as zero stock.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Category  Category        `json:"category"`
	SizeStock map[string]int  `json:"sizeStock"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Clone returns a copy that shares no mutable state with the receiver.
func (p Product) Clone() Product {
	cp := p
	cp.SizeStock = make(map[string]int, len(p.SizeStock))
	for size, qty := range p.SizeStock {
		cp.SizeStock[size] = qty
	}
	return cp
}
