package product

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository is an in-memory Repository adapter backed by maps. It
// serves the test suite and storage-free local runs; a map keyed by
// normalized SKU plays the role of the database's unique index.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[int64]Product
	idBySKU map[string]int64
	nextID  int64
}

// NewMemoryRepository constructs an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[int64]Product),
		idBySKU: make(map[string]int64),
	}
}

// WithTx runs fn against the repository itself. The adapter serves
// single-process use where each operation is already atomic under the
// mutex, so there is nothing to roll back.
func (r *MemoryRepository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return fn(ctx, r)
}

func (r *MemoryRepository) Save(ctx context.Context, p *Product) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.idBySKU[p.SKU]; exists {
		return nil, ErrDuplicateSKU
	}

	r.nextID++
	stored := *p
	stored.ID = r.nextID
	r.byID[stored.ID] = stored
	r.idBySKU[stored.SKU] = stored.ID

	out := stored
	return &out, nil
}

func (r *MemoryRepository) Update(ctx context.Context, p *Product) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.byID[p.ID]
	if !ok {
		return nil, ErrNotFound
	}

	stored := *p
	stored.CreatedAt = prev.CreatedAt
	r.byID[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id int64) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := p
	return &out, nil
}

func (r *MemoryRepository) FindBySKU(ctx context.Context, sku string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.idBySKU[sku]
	if !ok {
		return nil, ErrNotFound
	}
	out := r.byID[id]
	return &out, nil
}

func (r *MemoryRepository) ListAll(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(func(Product) bool { return true }), nil
}

func (r *MemoryRepository) ListActive(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(func(p Product) bool { return p.Status == StatusActive }), nil
}

func (r *MemoryRepository) list(keep func(Product) bool) []Product {
	out := make([]Product, 0, len(r.byID))
	for _, p := range r.byID {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
