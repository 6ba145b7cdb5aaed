package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rutvikbarbhai/stockflow/internal/domain/entity"
	"github.com/rutvikbarbhai/stockflow/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo implementación sobre PostgreSQL (usable con pool o tx).
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// Create persiste un hecho de venta.
func (r *SalesRepo) Create(sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sales (id, product_id, warehouse_id, quantity, sold_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.WarehouseID, sale.Quantity, sale.SoldAt, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// SumSoldInWindow suma unidades vendidas en [from, to). COALESCE garantiza 0
// cuando no hay ventas en la ventana.
func (r *SalesRepo) SumSoldInWindow(ctx context.Context, productID, warehouseID string, from, to time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM sales
		WHERE product_id = $1 AND warehouse_id = $2
		  AND sold_at >= $3 AND sold_at < $4`
	var total int64
	if err := r.q.QueryRow(ctx, query, productID, warehouseID, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum sales in window: %w", err)
	}
	return total, nil
}
