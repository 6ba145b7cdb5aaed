package entity

import "time"

// Inventory representa el stock actual de un producto en una bodega.
// Exactamente una fila por (producto, bodega); se crea con el aprovisionamiento
// del producto y nunca se elimina físicamente (la cantidad puede llegar a cero).
type Inventory struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}
