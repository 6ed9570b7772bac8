package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kd2907/mezat-store/domain"
	"github.com/kd2907/mezat-store/port"
)

var (
	ErrNotFound         = errors.New("product not found")
	ErrStockUnavailable = errors.New("stock unavailable")
	ErrUnknownCategory  = errors.New("unknown category")
)

// PersistenceError reports that a state change was applied in memory but
// could not be written to durable storage. The operation's result is
// still valid and reads observe it; the store runs memory-only for that
// slice until a later write succeeds.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Storage keys for the four state slices.
const (
	keyProducts = "products"
	keyOrders   = "orders"
	keySiteName = "siteName"
	keyLogoRef  = "logoRef"
)

// Manager owns the catalog, the order log and the display settings. Every
// mutation is written back through the KV before the call returns; reads
// are always served from memory.
type Manager struct {
	mu       sync.Mutex
	kv       port.KV
	products []domain.Product // display order, newest first
	orders   []domain.Order   // append-only, insertion order
	siteName string
	logoRef  string
}

// NewManager loads the four state slices from kv. An absent or malformed
// slice falls back to its built-in default instead of failing startup.
func NewManager(ctx context.Context, kv port.KV) *Manager {
	m := &Manager{kv: kv}
	m.load(ctx)
	return m
}

func (m *Manager) load(ctx context.Context) {
	m.products = domain.DefaultCatalog()
	if raw, ok, err := m.kv.Get(ctx, keyProducts); err == nil && ok {
		var loaded []domain.Product
		if json.Unmarshal([]byte(raw), &loaded) == nil {
			m.products = loaded
		}
	}
	migrateProducts(m.products, time.Now().UTC())

	m.orders = []domain.Order{}
	if raw, ok, err := m.kv.Get(ctx, keyOrders); err == nil && ok {
		var loaded []domain.Order
		if json.Unmarshal([]byte(raw), &loaded) == nil && loaded != nil {
			m.orders = loaded
		}
	}

	m.siteName = domain.DefaultSiteName
	if raw, ok, err := m.kv.Get(ctx, keySiteName); err == nil && ok && raw != "" {
		m.siteName = raw
	}

	if raw, ok, err := m.kv.Get(ctx, keyLogoRef); err == nil && ok {
		m.logoRef = raw
	}
}

// migrateProducts backfills fields that older persisted shapes lack
// before the records enter the live state: a missing creation time takes
// the load time, and stock counters are clamped non-negative.
func migrateProducts(products []domain.Product, loadedAt time.Time) {
	for i := range products {
		if products[i].CreatedAt.IsZero() {
			products[i].CreatedAt = loadedAt
		}
		if products[i].SizeStock == nil {
			products[i].SizeStock = map[string]int{}
		}
		for size, qty := range products[i].SizeStock {
			if qty < 0 {
				products[i].SizeStock[size] = 0
			}
		}
	}
}

// ProductInput carries the caller-supplied fields of a product. ID and
// CreatedAt are always assigned by the manager.
type ProductInput struct {
	Name      string
	Price     decimal.Decimal
	Image     string
	Category  domain.Category
	SizeStock map[string]int
}

// normalizedStock builds the full stock table over the category's size
// vocabulary: negative quantities clamp to zero, absent sizes fill in as
// zero, labels outside the vocabulary are dropped.
func normalizedStock(category domain.Category, supplied map[string]int) map[string]int {
	sizes := category.Sizes()
	stock := make(map[string]int, len(sizes))
	for _, size := range sizes {
		qty := supplied[size]
		if qty < 0 {
			qty = 0
		}
		stock[size] = qty
	}
	return stock
}

func clampPrice(price decimal.Decimal) decimal.Decimal {
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// PlaceOrder decrements stock for one unit of (productID, size) and
// appends an order for buyerHandle. It fails with ErrNotFound or
// ErrStockUnavailable before any mutation; on success it returns the new
// order, possibly alongside a *PersistenceError warning.
func (m *Manager) PlaceOrder(ctx context.Context, productID, size, buyerHandle string) (domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.productIndex(productID)
	if idx < 0 {
		return domain.Order{}, ErrNotFound
	}
	// checked under the lock, so the decrement cannot go below zero
	if m.products[idx].SizeStock[size] <= 0 {
		return domain.Order{}, ErrStockUnavailable
	}
	m.products[idx].SizeStock[size]--

	order := domain.Order{
		ID:          uuid.NewString(),
		ProductID:   productID,
		BuyerHandle: buyerHandle,
		Size:        size,
		Timestamp:   time.Now().UTC(),
	}
	m.orders = append(m.orders, order)

	err := m.persistProducts(ctx)
	if oErr := m.persistOrders(ctx); err == nil {
		err = oErr
	}
	return order, err
}

// Stock reports the quantity on hand for (productID, size). Unknown
// products and sizes read as zero; Stock never fails and never mutates.
func (m *Manager) Stock(productID, size string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if idx := m.productIndex(productID); idx >= 0 {
		return m.products[idx].SizeStock[size]
	}
	return 0
}

// AddProduct creates a product from in and inserts it at the front of the
// display order. The stock table is normalized against the category's
// size vocabulary before it is admitted.
func (m *Manager) AddProduct(ctx context.Context, in ProductInput) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !in.Category.Valid() {
		return domain.Product{}, ErrUnknownCategory
	}
	product := domain.Product{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Price:     clampPrice(in.Price),
		Image:     in.Image,
		Category:  in.Category,
		SizeStock: normalizedStock(in.Category, in.SizeStock),
		CreatedAt: time.Now().UTC(),
	}
	m.products = append([]domain.Product{product}, m.products...)
	return product.Clone(), m.persistProducts(ctx)
}

// EditProduct replaces the mutable fields of the product with productID.
// ID, CreatedAt and Category survive the edit; the supplied stock table
// is normalized against the product's original category. A missing id is
// reported as ErrNotFound with no state change and no storage write.
func (m *Manager) EditProduct(ctx context.Context, productID string, in ProductInput) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.productIndex(productID)
	if idx < 0 {
		return domain.Product{}, ErrNotFound
	}
	current := m.products[idx]
	m.products[idx] = domain.Product{
		ID:        current.ID,
		Name:      in.Name,
		Price:     clampPrice(in.Price),
		Image:     in.Image,
		Category:  current.Category,
		SizeStock: normalizedStock(current.Category, in.SizeStock),
		CreatedAt: current.CreatedAt,
	}
	return m.products[idx].Clone(), m.persistProducts(ctx)
}

// DeleteProduct removes the product with productID from the catalog.
// Removing an unknown id is a harmless no-op. Orders referencing the
// product are kept as-is; reports render them against a deleted-product
// sentinel.
func (m *Manager) DeleteProduct(ctx context.Context, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.productIndex(productID)
	if idx < 0 {
		return nil
	}
	m.products = append(m.products[:idx], m.products[idx+1:]...)
	return m.persistProducts(ctx)
}

// SetSiteName overwrites the storefront label and persists it.
func (m *Manager) SetSiteName(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.siteName = name
	if err := m.kv.Set(ctx, keySiteName, name); err != nil {
		return &PersistenceError{Key: keySiteName, Err: err}
	}
	return nil
}

// SetLogoRef overwrites the logo reference and persists it. An empty ref
// means the default mark.
func (m *Manager) SetLogoRef(ctx context.Context, ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logoRef = ref
	if err := m.kv.Set(ctx, keyLogoRef, ref); err != nil {
		return &PersistenceError{Key: keyLogoRef, Err: err}
	}
	return nil
}

// Products returns the catalog in display order, newest first. The
// returned products share no mutable state with the manager.
func (m *Manager) Products() []domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Product, len(m.products))
	for i, p := range m.products {
		out[i] = p.Clone()
	}
	return out
}

// Orders returns the order log in insertion order.
func (m *Manager) Orders() []domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Order(nil), m.orders...)
}

func (m *Manager) SiteName() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.siteName
}

func (m *Manager) LogoRef() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logoRef
}

// productIndex is called with m.mu held.
func (m *Manager) productIndex(productID string) int {
	for i := range m.products {
		if m.products[i].ID == productID {
			return i
		}
	}
	return -1
}

func (m *Manager) persistProducts(ctx context.Context) error {
	return m.persistJSON(ctx, keyProducts, m.products)
}

func (m *Manager) persistOrders(ctx context.Context) error {
	return m.persistJSON(ctx, keyOrders, m.orders)
}

func (m *Manager) persistJSON(ctx context.Context, key string, slice any) error {
	raw, err := json.Marshal(slice)
	if err != nil {
		return &PersistenceError{Key: key, Err: err}
	}
	if err := m.kv.Set(ctx, key, string(raw)); err != nil {
		return &PersistenceError{Key: key, Err: err}
	}
	return nil
}
