package entity

import "time"

// Supplier proveedor de productos. Relación N:M con Product vía ProductSupplier.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductSupplier vincula producto y proveedor. IsPrimary marca el proveedor
// principal de forma explícita; la selección nunca depende del orden de inserción.
type ProductSupplier struct {
	ProductID  string
	SupplierID string
	IsPrimary  bool
	CreatedAt  time.Time
}
