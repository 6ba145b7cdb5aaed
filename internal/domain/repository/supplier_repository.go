package repository

import (
	"context"

	"github.com/rutvikbarbhai/stockflow/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier y su
// relación con productos.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	LinkProduct(link *entity.ProductSupplier) error

	// GetPrimaryForProduct devuelve el proveedor principal del producto, o nil
	// si no hay ninguno configurado (no es error). Selección determinista por
	// el flag is_primary y fecha de vínculo, nunca por orden incidental.
	GetPrimaryForProduct(ctx context.Context, productID string) (*entity.Supplier, error)
}
