package inventory

import (
	"context"

	"github.com/rutvikbarbhai/stockflow/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza visibilidad todo-o-nada para el
// aprovisionamiento, los ajustes de stock y el registro de ventas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
		changeRepo repository.InventoryChangeRepository,
		salesRepo repository.SalesRepository,
	) error) error

	// RunCatalog variante con repos de catálogo (composición de bundles).
	RunCatalog(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		bundleRepo repository.BundleRepository,
	) error) error
}
