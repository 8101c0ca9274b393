package product

import "errors"

// ErrNotFound indicates the referenced product id does not exist.
var ErrNotFound = errors.New("product: not found")

// ErrDuplicateSKU triggered when a create collides with an existing SKU.
var ErrDuplicateSKU = errors.New("product: sku already exists")

// ErrInvalidStock indicates an attempt to set negative stock.
var ErrInvalidStock = errors.New("product: stock must not be negative")

// ErrInvalidPrice indicates a non-positive purchase or sale price.
var ErrInvalidPrice = errors.New("product: price must be greater than zero")

// ErrInvalidSKU indicates an empty, oversized or whitespace-bearing SKU.
var ErrInvalidSKU = errors.New("product: invalid sku")

// ErrInvalidStatus indicates a status literal outside Active/Inactive.
var ErrInvalidStatus = errors.New("product: unknown status")

// ErrStorage wraps store failures that do not map onto the taxonomy above.
// Repository adapters wrap, use cases propagate as-is.
var ErrStorage = errors.New("product: storage failure")
