package dto

import "time"

// AdjustQuantityRequest body de POST /api/inventory/adjustments.
// Exactamente uno de delta o set_to debe estar presente.
type AdjustQuantityRequest struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Delta       *int64 `json:"delta,omitempty"`
	SetTo       *int64 `json:"set_to,omitempty"`
	Reason      string `json:"reason"`
}

// InventoryResponse estado de la fila de stock tras un ajuste.
type InventoryResponse struct {
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InventoryChangeResponse fila del historial de cambios de inventario.
type InventoryChangeResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	WarehouseID  string    `json:"warehouse_id"`
	PrevQuantity int64     `json:"prev_quantity"`
	NewQuantity  int64     `json:"new_quantity"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"created_at"`
}

// InventoryChangeListResponse historial paginado.
type InventoryChangeListResponse struct {
	Items []InventoryChangeResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}

// RecordSaleRequest body de POST /api/sales. SoldAt por defecto es "ahora".
type RecordSaleRequest struct {
	ProductID   string     `json:"product_id"`
	WarehouseID string     `json:"warehouse_id"`
	Quantity    int64      `json:"quantity"`
	SoldAt      *time.Time `json:"sold_at,omitempty"`
}

// RecordSaleResponse respuesta 201 del registro de venta.
type RecordSaleResponse struct {
	SaleID string `json:"sale_id"`
}
