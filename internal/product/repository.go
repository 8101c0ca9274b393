package product

import "context"

// Repository is the persistence port for products. Implementations perform no
// business-rule validation and never leak store-specific errors: absence maps
// to ErrNotFound, a unique-index hit on save maps to ErrDuplicateSKU, and
// anything else is wrapped with ErrStorage.
type Repository interface {
	// WithTx runs fn against a transactional view of the repository. Every
	// operation issued through the repository passed to fn commits or rolls
	// back atomically.
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error

	// Save persists a new product and returns it with the store-assigned ID.
	// SKU uniqueness rides on the store's unique index, never a pre-check.
	Save(ctx context.Context, p *Product) (*Product, error)

	// Update persists the mutable fields of an existing product by ID.
	Update(ctx context.Context, p *Product) (*Product, error)

	FindByID(ctx context.Context, id int64) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	ListAll(ctx context.Context) ([]Product, error)
	ListActive(ctx context.Context) ([]Product, error)
}
