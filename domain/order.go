package domain

import "time"

// Order records a single purchase of one unit. Orders are immutable once
// created: no edit, no cancel, no stock restoration. ProductID is a weak
// reference; the product may be deleted later and readers must treat the
// dangling reference as a deleted product instead of failing.
type Order struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	BuyerHandle string    `json:"buyerHandle"`
	Size        string    `json:"size"`
	Timestamp   time.Time `json:"timestamp"`
}
