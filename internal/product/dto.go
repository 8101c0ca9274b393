package product

import "time"

// CreateProductRequest is the payload for POST /api/v1/products. Status is
// not accepted; new products start Active.
type CreateProductRequest struct {
	SKU           string  `json:"sku" validate:"required,min=1,max=50"`
	Name          string  `json:"name" validate:"required,min=1,max=200"`
	Category      string  `json:"category" validate:"required"`
	Packaging     string  `json:"packaging" validate:"required"`
	Supplier      string  `json:"supplier" validate:"required"`
	PurchasePrice float64 `json:"purchase_price" validate:"required,gt=0"`
	SalePrice     float64 `json:"sale_price" validate:"required,gt=0"`
	Stock         int     `json:"stock" validate:"gte=0"`
}

// UpdateProductRequest is the payload for PATCH /api/v1/products/{id}.
// Absent fields stay unchanged; pointers keep "absent" distinct from an
// explicit zero value.
type UpdateProductRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Category      *string  `json:"category" validate:"omitempty,min=1"`
	Packaging     *string  `json:"packaging" validate:"omitempty,min=1"`
	Supplier      *string  `json:"supplier" validate:"omitempty,min=1"`
	PurchasePrice *float64 `json:"purchase_price" validate:"omitempty,gt=0"`
	SalePrice     *float64 `json:"sale_price" validate:"omitempty,gt=0"`
	Stock         *int     `json:"stock" validate:"omitempty,gte=0"`
	Status        *string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// ProductResponse is the serialized product returned by every endpoint.
type ProductResponse struct {
	ID            int64     `json:"id"`
	SKU           string    `json:"sku"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Packaging     string    `json:"packaging"`
	Supplier      string    `json:"supplier"`
	PurchasePrice float64   `json:"purchase_price"`
	SalePrice     float64   `json:"sale_price"`
	Stock         int       `json:"stock"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toResponse(p *Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Category:      p.Category,
		Packaging:     p.Packaging,
		Supplier:      p.Supplier,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		Stock:         p.Stock,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toResponseList(products []Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toResponse(&products[i]))
	}
	return out
}
