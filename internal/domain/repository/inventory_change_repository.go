package repository

import "github.com/rutvikbarbhai/stockflow/internal/domain/entity"

// InventoryChangeRepository define el puerto para el historial de cambios de
// inventario. Solo se escribe dentro de transacciones de mutación de stock.
type InventoryChangeRepository interface {
	Create(change *entity.InventoryChange) error
	// List filtra por producto y/o bodega (vacío = sin filtro), más reciente primero.
	List(productID, warehouseID string, limit, offset int) ([]*entity.InventoryChange, error)
}
