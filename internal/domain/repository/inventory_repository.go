package repository

import (
	"context"

	"github.com/rutvikbarbhai/stockflow/internal/domain/entity"
)

// AlertSourceRow fila cruda del escaneo de alertas: inventario actual unido
// con su producto y su bodega, acotado a una empresa.
type AlertSourceRow struct {
	ProductID     string
	ProductName   string
	SKU           string
	Category      string
	WarehouseID   string
	WarehouseName string
	Quantity      int64
}

// InventoryRepository define el puerto para la fila de stock por (producto, bodega).
// Get y GetForUpdate devuelven nil si la fila no existe; la única vía que crea
// la primera fila es el aprovisionamiento de producto.
type InventoryRepository interface {
	Get(productID, warehouseID string) (*entity.Inventory, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// ajustes concurrentes sobre el mismo par, también entre procesos.
	GetForUpdate(productID, warehouseID string) (*entity.Inventory, error)
	Create(inv *entity.Inventory) error
	UpdateQuantity(inv *entity.Inventory) error

	// ListForAlerts devuelve las filas (inventario, producto, bodega) de la
	// empresa, ordenadas por bodega y luego producto para salida determinista.
	ListForAlerts(ctx context.Context, companyID string) ([]AlertSourceRow, error)
}
