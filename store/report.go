package store

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kd2907/mezat-store/domain"
)

// DeletedProductName is reported for orders whose product was removed
// from the catalog after the order was placed.
const DeletedProductName = "deleted product"

// OrderRow is one fulfillment report line.
type OrderRow struct {
	Timestamp   time.Time
	ProductName string
	Size        string
	Price       decimal.Decimal
	BuyerHandle string
}

// CustomerSummary rolls up one buyer's order history.
type CustomerSummary struct {
	BuyerHandle string
	OrderCount  int
	TotalSpent  decimal.Decimal
	LastOrderAt time.Time
}

// OrderReport returns one row per order, in insertion order. Orders whose
// product was deleted report the sentinel name and a zero price.
func (m *Manager) OrderReport() []OrderRow {
	return m.orderReport("")
}

// ProductOrderReport is OrderReport restricted to a single product.
func (m *Manager) ProductOrderReport(productID string) []OrderRow {
	return m.orderReport(productID)
}

func (m *Manager) orderReport(productID string) []OrderRow {
	m.mu.Lock()
	defer m.mu.Unlock()

	byID := m.productsByID()
	rows := make([]OrderRow, 0, len(m.orders))
	for _, order := range m.orders {
		if productID != "" && order.ProductID != productID {
			continue
		}
		row := OrderRow{
			Timestamp:   order.Timestamp,
			ProductName: DeletedProductName,
			Size:        order.Size,
			Price:       decimal.Zero,
			BuyerHandle: order.BuyerHandle,
		}
		if p, ok := byID[order.ProductID]; ok {
			row.ProductName = p.Name
			row.Price = p.Price
		}
		rows = append(rows, row)
	}
	return rows
}

// CustomerReport groups the order log by buyer handle. Deleted products
// contribute zero to a buyer's total. Summaries come back sorted by
// handle so repeated exports diff cleanly.
func (m *Manager) CustomerReport() []CustomerSummary {
	m.mu.Lock()
	defer m.mu.Unlock()

	byID := m.productsByID()
	byHandle := make(map[string]*CustomerSummary)
	for _, order := range m.orders {
		summary, ok := byHandle[order.BuyerHandle]
		if !ok {
			summary = &CustomerSummary{
				BuyerHandle: order.BuyerHandle,
				TotalSpent:  decimal.Zero,
			}
			byHandle[order.BuyerHandle] = summary
		}
		summary.OrderCount++
		if p, ok := byID[order.ProductID]; ok {
			summary.TotalSpent = summary.TotalSpent.Add(p.Price)
		}
		if order.Timestamp.After(summary.LastOrderAt) {
			summary.LastOrderAt = order.Timestamp
		}
	}

	out := make([]CustomerSummary, 0, len(byHandle))
	for _, summary := range byHandle {
		out = append(out, *summary)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].BuyerHandle < out[j].BuyerHandle
	})
	return out
}

// TotalRevenue sums the referenced product price over every order.
// Deleted products contribute zero.
func (m *Manager) TotalRevenue() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()

	byID := m.productsByID()
	total := decimal.Zero
	for _, order := range m.orders {
		if p, ok := byID[order.ProductID]; ok {
			total = total.Add(p.Price)
		}
	}
	return total
}

// UniqueCustomers counts distinct buyer handles across the order log.
func (m *Manager) UniqueCustomers() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	handles := make(map[string]struct{}, len(m.orders))
	for _, order := range m.orders {
		handles[order.BuyerHandle] = struct{}{}
	}
	return len(handles)
}

// productsByID is called with m.mu held.
func (m *Manager) productsByID() map[string]*domain.Product {
	byID := make(map[string]*domain.Product, len(m.products))
	for i := range m.products {
		byID[m.products[i].ID] = &m.products[i]
	}
	return byID
}
