package entity

import "time"

// Motivos de cambio de inventario.
const (
	ReasonInitialStock = "initial_stock"
	ReasonReceipt      = "receipt"
	ReasonSale         = "sale"
	ReasonAdjustment   = "adjustment"
)

// InventoryChange registro inmutable de auditoría: exactamente una fila por cada
// mutación de Inventory, creada en la misma transacción que la mutación.
// Nunca se actualiza ni se borra.
type InventoryChange struct {
	ID           string
	ProductID    string
	WarehouseID  string
	PrevQuantity int64
	NewQuantity  int64
	Reason       string
	CreatedAt    time.Time
}
