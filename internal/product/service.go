package product

import (
	"context"
	"errors"
)

// Service exposes the product use cases on top of the repository port. All
// business rules are evaluated here or inside the entity; adapters on either
// side stay dumb.
type Service struct {
	repo Repository
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the fields needed to register a product. Status is not
// accepted: new products always start Active.
type CreateInput struct {
	SKU           string
	Name          string
	Category      string
	Packaging     string
	Supplier      string
	PurchasePrice float64
	SalePrice     float64
	Stock         int
}

// UpdateInput carries a partial update. Nil means "leave unchanged", which is
// distinct from an explicit zero value.
type UpdateInput struct {
	Name          *string
	Category      *string
	Packaging     *string
	Supplier      *string
	PurchasePrice *float64
	SalePrice     *float64
	Stock         *int
	Status        *Status
}

// Create registers a new product. Uniqueness is left to the repository's
// unique index rather than pre-checked here, so two concurrent creates with
// the same SKU cannot race past each other.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Product, error) {
	p, err := NewProduct(in.SKU, in.Name, in.Category, in.Packaging, in.Supplier, in.PurchasePrice, in.SalePrice, in.Stock)
	if err != nil {
		return nil, err
	}
	if err := p.ValidatePrices(); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, p)
}

// Update applies a partial update to the product identified by id. The whole
// load-mutate-validate-persist sequence runs in one repository transaction;
// any rule violation discards the in-memory mutation and leaves the stored
// row untouched.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*Product, error) {
	var updated *Product
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		p, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		if in.Packaging != nil {
			p.Packaging = *in.Packaging
		}
		if in.Supplier != nil {
			p.Supplier = *in.Supplier
		}
		if in.PurchasePrice != nil {
			p.PurchasePrice = *in.PurchasePrice
		}
		if in.SalePrice != nil {
			p.SalePrice = *in.SalePrice
		}
		if in.Stock != nil {
			if err := p.SetStock(*in.Stock); err != nil {
				return err
			}
		}
		if in.Status != nil {
			switch *in.Status {
			case StatusActive:
				p.Activate()
			case StatusInactive:
				p.Deactivate()
			default:
				return ErrInvalidStatus
			}
		}

		// Re-validated on every update, prices touched or not, so a row that
		// somehow went inconsistent in the store cannot survive an update.
		if err := p.ValidatePrices(); err != nil {
			return err
		}

		updated, err = repo.Update(ctx, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// List returns the inventory, optionally restricted to active products.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]Product, error) {
	if activeOnly {
		return s.repo.ListActive(ctx)
	}
	return s.repo.ListAll(ctx)
}

// FindBySKU looks a product up by its normalized SKU. Absence is not an
// error: the result is nil.
func (s *Service) FindBySKU(ctx context.Context, sku string) (*Product, error) {
	normalized, err := NormalizeSKU(sku)
	if err != nil {
		return nil, nil
	}
	p, err := s.repo.FindBySKU(ctx, normalized)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return p, err
}

// FindByID looks a product up by ID. Absence is not an error: the result is
// nil.
func (s *Service) FindByID(ctx context.Context, id int64) (*Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return p, err
}
