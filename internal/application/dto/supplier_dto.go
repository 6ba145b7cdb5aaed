package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LinkSupplierRequest body de POST /api/products/{id}/suppliers.
// IsPrimary marca este vínculo como proveedor principal del producto.
type LinkSupplierRequest struct {
	SupplierID string `json:"supplier_id" validate:"required"`
	IsPrimary  bool   `json:"is_primary"`
}
