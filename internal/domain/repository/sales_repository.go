package repository

import (
	"context"
	"time"

	"github.com/rutvikbarbhai/stockflow/internal/domain/entity"
)

// SalesRepository define el puerto para la tabla de hechos de venta (append-only).
type SalesRepository interface {
	Create(sale *entity.Sale) error

	// SumSoldInWindow suma unidades vendidas del par (producto, bodega) en el
	// intervalo cerrado-abierto [from, to). Sin filas coincidentes => 0, sin error.
	SumSoldInWindow(ctx context.Context, productID, warehouseID string, from, to time.Time) (int64, error)
}
