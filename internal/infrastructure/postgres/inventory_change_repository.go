package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rutvikbarbhai/stockflow/internal/domain/entity"
	"github.com/rutvikbarbhai/stockflow/internal/domain/repository"
)

var _ repository.InventoryChangeRepository = (*InventoryChangeRepo)(nil)

// InventoryChangeRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: no hay Update ni Delete.
type InventoryChangeRepo struct {
	q Querier
}

// NewInventoryChangeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryChangeRepository(q Querier) *InventoryChangeRepo {
	return &InventoryChangeRepo{q: q}
}

// Create persiste un registro de cambio de inventario.
func (r *InventoryChangeRepo) Create(change *entity.InventoryChange) error {
	if change.ID == "" {
		change.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_changes (id, product_id, warehouse_id, prev_quantity, new_quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		change.ID, change.ProductID, change.WarehouseID,
		change.PrevQuantity, change.NewQuantity, change.Reason, change.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory change: %w", err)
	}
	return nil
}

// List filtra por producto y/o bodega (vacío = sin filtro), más reciente primero.
func (r *InventoryChangeRepo) List(productID, warehouseID string, limit, offset int) ([]*entity.InventoryChange, error) {
	where, args := changeListFilter(productID, warehouseID)
	query := fmt.Sprintf(`
		SELECT id, product_id, warehouse_id, prev_quantity, new_quantity, reason, created_at
		FROM inventory_changes
		%s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory changes: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryChange
	for rows.Next() {
		var c entity.InventoryChange
		if err := rows.Scan(&c.ID, &c.ProductID, &c.WarehouseID,
			&c.PrevQuantity, &c.NewQuantity, &c.Reason, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory change: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// changeListFilter arma la cláusula WHERE solo con los filtros presentes. Las
// columnas product_id y warehouse_id son uuid: un parámetro '' no es casteable
// en Postgres, así que los filtros vacíos no pueden llegar al query.
func changeListFilter(productID, warehouseID string) (string, []any) {
	var conds []string
	var args []any
	if productID != "" {
		args = append(args, productID)
		conds = append(conds, fmt.Sprintf("product_id = $%d", len(args)))
	}
	if warehouseID != "" {
		args = append(args, warehouseID)
		conds = append(conds, fmt.Sprintf("warehouse_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
