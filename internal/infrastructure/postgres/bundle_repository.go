package postgres

import (
	"context"
	"fmt"

	"github.com/rutvikbarbhai/stockflow/internal/domain/entity"
	"github.com/rutvikbarbhai/stockflow/internal/domain/repository"
)

var _ repository.BundleRepository = (*BundleRepo)(nil)

// BundleRepo implementación sobre PostgreSQL. ReplaceComponents debe correr
// dentro de una transacción (delete + inserts no son atómicos sobre pool).
type BundleRepo struct {
	q Querier
}

// NewBundleRepository construye el adaptador.
func NewBundleRepository(q Querier) *BundleRepo {
	return &BundleRepo{q: q}
}

// ReplaceComponents reemplaza la composición completa del bundle.
func (r *BundleRepo) ReplaceComponents(bundleID string, components []*entity.BundleComponent) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM product_bundles WHERE bundle_id = $1`, bundleID); err != nil {
		return fmt.Errorf("clear bundle components: %w", err)
	}
	query := `
		INSERT INTO product_bundles (bundle_id, component_id, quantity)
		VALUES ($1, $2, $3)`
	for _, c := range components {
		if _, err := r.q.Exec(ctx, query, bundleID, c.ComponentID, c.Quantity); err != nil {
			return fmt.Errorf("insert bundle component: %w", err)
		}
	}
	return nil
}

// ListComponents devuelve la composición del bundle, ordenada por componente.
func (r *BundleRepo) ListComponents(bundleID string) ([]*entity.BundleComponent, error) {
	query := `
		SELECT bundle_id, component_id, quantity
		FROM product_bundles
		WHERE bundle_id = $1
		ORDER BY component_id`
	rows, err := r.q.Query(context.Background(), query, bundleID)
	if err != nil {
		return nil, fmt.Errorf("list bundle components: %w", err)
	}
	defer rows.Close()
	var list []*entity.BundleComponent
	for rows.Next() {
		var c entity.BundleComponent
		if err := rows.Scan(&c.BundleID, &c.ComponentID, &c.Quantity); err != nil {
			return nil, fmt.Errorf("scan bundle component: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
