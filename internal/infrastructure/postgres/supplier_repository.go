package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rutvikbarbhai/stockflow/internal/domain/entity"
	"github.com/rutvikbarbhai/stockflow/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor nuevo.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	query := `
		INSERT INTO suppliers (id, name, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.ContactEmail, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por su ID. Devuelve nil si no existe o si el
// id no tiene forma de UUID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	if !isValidID(id) {
		return nil, nil
	}
	query := `
		SELECT id, name, contact_email, created_at, updated_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.ContactEmail, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// LinkProduct crea o actualiza el vínculo producto-proveedor (upsert sobre la
// clave compuesta). Re-vincular solo cambia el flag is_primary.
func (r *SupplierRepo) LinkProduct(link *entity.ProductSupplier) error {
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO product_suppliers (product_id, supplier_id, is_primary, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, supplier_id)
		DO UPDATE SET is_primary = EXCLUDED.is_primary`
	_, err := r.q.Exec(context.Background(), query,
		link.ProductID, link.SupplierID, link.IsPrimary, link.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("link product supplier: %w", err)
	}
	return nil
}

// GetPrimaryForProduct devuelve el proveedor principal del producto, o nil si
// el producto no tiene proveedores. El ORDER BY hace la selección determinista:
// primero el flag explícito, luego el vínculo más antiguo.
func (r *SupplierRepo) GetPrimaryForProduct(ctx context.Context, productID string) (*entity.Supplier, error) {
	query := `
		SELECT s.id, s.name, s.contact_email, s.created_at, s.updated_at
		FROM product_suppliers ps
		JOIN suppliers s ON s.id = ps.supplier_id
		WHERE ps.product_id = $1
		ORDER BY ps.is_primary DESC, ps.created_at ASC, s.id ASC
		LIMIT 1`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, productID).Scan(
		&s.ID, &s.Name, &s.ContactEmail, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get primary supplier: %w", err)
	}
	return &s, nil
}
