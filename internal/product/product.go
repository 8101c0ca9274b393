package product

import (
	"strings"
	"time"
	"unicode"
)

// Status enumerates product lifecycle states.
type Status string

const (
	// StatusActive marks a product available for sale and movement.
	StatusActive Status = "Active"
	// StatusInactive marks a soft-deleted product. Rows are never removed;
	// deactivation preserves purchase and sale history.
	StatusInactive Status = "Inactive"
)

const maxSKULength = 50

// Product is the inventory aggregate. Identity is the store-assigned ID once
// persisted; SKU uniqueness across products is enforced by the repository,
// not here.
type Product struct {
	ID            int64     `json:"id"`
	SKU           string    `json:"sku"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Packaging     string    `json:"packaging"`
	Supplier      string    `json:"supplier"`
	PurchasePrice float64   `json:"purchase_price"`
	SalePrice     float64   `json:"sale_price"`
	Stock         int       `json:"stock"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewProduct builds an unpersisted product (ID zero) with CreatedAt and
// UpdatedAt set to now and status Active.
func NewProduct(sku, name, category, packaging, supplier string, purchasePrice, salePrice float64, stock int) (*Product, error) {
	normalized, err := NormalizeSKU(sku)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	p := &Product{
		SKU:           normalized,
		Name:          name,
		Category:      category,
		Packaging:     packaging,
		Supplier:      supplier,
		PurchasePrice: purchasePrice,
		SalePrice:     salePrice,
		Status:        StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := p.SetStock(stock); err != nil {
		return nil, err
	}
	return p, nil
}

// SetStock assigns a new stock level. Negative values fail with
// ErrInvalidStock and leave the current level untouched. UpdatedAt is
// refreshed only on success.
func (p *Product) SetStock(n int) error {
	if n < 0 {
		return ErrInvalidStock
	}
	p.Stock = n
	p.UpdatedAt = time.Now()
	return nil
}

// ValidatePrices checks that both prices are positive. Callers invoke it
// explicitly after price changes; assignment alone does not validate.
func (p *Product) ValidatePrices() error {
	if p.PurchasePrice <= 0 || p.SalePrice <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

// Deactivate soft-deletes the product. Idempotent.
func (p *Product) Deactivate() {
	p.Status = StatusInactive
	p.UpdatedAt = time.Now()
}

// Activate restores a deactivated product. Idempotent.
func (p *Product) Activate() {
	p.Status = StatusActive
	p.UpdatedAt = time.Now()
}

// IsActive reports whether the product may be sold or moved.
func (p *Product) IsActive() bool {
	return p.Status == StatusActive
}

// NormalizeSKU is the single authoritative SKU normalization point:
// surrounding whitespace is trimmed, embedded whitespace is rejected (not
// stripped), and the result is uppercased. Both the HTTP boundary and the
// entity route SKUs through here so "RON001" and " ron001" collide.
func NormalizeSKU(sku string) (string, error) {
	trimmed := strings.TrimSpace(sku)
	if trimmed == "" || len(trimmed) > maxSKULength {
		return "", ErrInvalidSKU
	}
	if strings.IndexFunc(trimmed, unicode.IsSpace) >= 0 {
		return "", ErrInvalidSKU
	}
	return strings.ToUpper(trimmed), nil
}
