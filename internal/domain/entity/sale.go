package entity

import "time"

// Sale hecho de venta (append-only). Fuente de verdad para el cálculo de
// velocidad de ventas; no se muta después de creado.
type Sale struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int64
	SoldAt      time.Time
	CreatedAt   time.Time
}
