package repository

import "github.com/rutvikbarbhai/stockflow/internal/domain/entity"

// BundleRepository define el puerto para la composición de productos compuestos.
type BundleRepository interface {
	// ReplaceComponents reemplaza la composición completa del bundle.
	// Debe ejecutarse dentro de una transacción (ver inventory.TxRunner).
	ReplaceComponents(bundleID string, components []*entity.BundleComponent) error
	ListComponents(bundleID string) ([]*entity.BundleComponent, error)
}
