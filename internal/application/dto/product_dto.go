package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body de POST /api/products (aprovisionamiento).
// Price es puntero para distinguir "ausente" de cero; se parsea como decimal
// exacto, nunca como float binario. InitialQuantity por defecto 0.
type CreateProductRequest struct {
	SKU             string           `json:"sku" validate:"required,min=1,max=100"`
	Name            string           `json:"name" validate:"required,min=1,max=200"`
	Price           *decimal.Decimal `json:"price"`
	Category        string           `json:"category"`
	WarehouseID     string           `json:"warehouse_id" validate:"required"`
	InitialQuantity *int64           `json:"initial_quantity,omitempty"`
}

// CreateProductResponse respuesta 201 del aprovisionamiento.
type CreateProductResponse struct {
	ProductID string `json:"product_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
	IsBundle  bool            `json:"is_bundle"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// BundleComponentDTO un componente del bundle con su cantidad.
type BundleComponentDTO struct {
	ComponentID string `json:"component_id"`
	Quantity    int64  `json:"quantity"`
}

// SetBundleRequest body de PUT /api/products/{id}/bundle (reemplaza la composición).
type SetBundleRequest struct {
	Components []BundleComponentDTO `json:"components"`
}

// BundleResponse composición actual de un bundle.
type BundleResponse struct {
	BundleID   string               `json:"bundle_id"`
	Components []BundleComponentDTO `json:"components"`
}
