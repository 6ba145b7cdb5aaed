package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rutvikbarbhai/stockflow/internal/domain/entity"
	"github.com/rutvikbarbhai/stockflow/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get obtiene la fila de stock de un producto en una bodega; nil si no existe.
func (r *InventoryRepo) Get(productID, warehouseID string) (*entity.Inventory, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE) para
// serializar el read-modify-write de los ajustes concurrentes; nil si no existe.
func (r *InventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &inv, nil
}

// Create inserta la primera fila de stock del par (producto, bodega).
// El constraint de unicidad garantiza exactamente una fila por par.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ProductID, inv.WarehouseID, inv.Quantity, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// UpdateQuantity actualiza la cantidad de una fila existente.
func (r *InventoryRepo) UpdateQuantity(inv *entity.Inventory) error {
	query := `
		UPDATE inventory SET quantity = $3, updated_at = $4
		WHERE product_id = $1 AND warehouse_id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		inv.ProductID, inv.WarehouseID, inv.Quantity, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update inventory: fila inexistente %s/%s", inv.ProductID, inv.WarehouseID)
	}
	return nil
}

// ListForAlerts devuelve las filas (inventario, producto, bodega) de la
// empresa. El ORDER BY por bodega y producto fija el orden de las alertas.
func (r *InventoryRepo) ListForAlerts(ctx context.Context, companyID string) ([]repository.AlertSourceRow, error) {
	query := `
		SELECT
			i.product_id,
			p.name,
			p.sku,
			p.category,
			i.warehouse_id,
			w.name,
			i.quantity
		FROM inventory i
		JOIN products p   ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE p.company_id = $1
		ORDER BY i.warehouse_id, i.product_id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list inventory for alerts: %w", err)
	}
	defer rows.Close()
	var list []repository.AlertSourceRow
	for rows.Next() {
		var row repository.AlertSourceRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.SKU, &row.Category,
			&row.WarehouseID, &row.WarehouseName, &row.Quantity); err != nil {
			return nil, fmt.Errorf("scan alert source row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
