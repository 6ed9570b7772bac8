package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultSiteName labels the storefront until the administrator renames it.
const DefaultSiteName = "Mezat Sipariş"

// DefaultCatalog seeds a fresh store with two sample products, one per
// category. Returned values share no state between calls.
func DefaultCatalog() []Product {
	now := time.Now().UTC()
	return []Product{
		{
			ID:       "1",
			Name:     "Basic T-Shirt",
			Price:    decimal.RequireFromString("299.99"),
			Image:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
			Category: CategoryApparel,
			SizeStock: map[string]int{
				"S": 10, "M": 15, "L": 20, "XL": 15, "XXL": 10,
				"XXXL": 5, "4XL": 0, "5XL": 0, "6XL": 0,
			},
			CreatedAt: now,
		},
		{
			ID:       "2",
			Name:     "Classic Sneakers",
			Price:    decimal.RequireFromString("899.99"),
			Image:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500",
			Category: CategoryFootwear,
			SizeStock: map[string]int{
				"36": 5, "37": 8, "38": 10, "39": 12, "40": 15,
				"41": 15, "42": 12, "43": 10, "44": 8, "45": 5,
			},
			CreatedAt: now.Add(-time.Second),
		},
	}
}
