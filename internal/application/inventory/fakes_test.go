package inventory_test

import (
	"context"
	"time"

	"github.com/rutvikbarbhai/stockflow/internal/domain"
	"github.com/rutvikbarbhai/stockflow/internal/domain/entity"
	"github.com/rutvikbarbhai/stockflow/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria + TxRunner con rollback real por snapshot. Un error
// dentro de la transacción restaura el estado previo, igual que la BD.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products  map[string]*entity.Product
	inventory map[string]*entity.Inventory // clave productID|warehouseID
	changes   []*entity.InventoryChange
	sales     []*entity.Sale
}

func newMemStore() *memStore {
	return &memStore{
		products:  map[string]*entity.Product{},
		inventory: map[string]*entity.Inventory{},
	}
}

func invKey(productID, warehouseID string) string { return productID + "|" + warehouseID }

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for k, v := range s.products {
		p := *v
		cp.products[k] = &p
	}
	for k, v := range s.inventory {
		i := *v
		cp.inventory[k] = &i
	}
	cp.changes = append(cp.changes, s.changes...)
	cp.sales = append(cp.sales, s.sales...)
	return cp
}

func (s *memStore) restore(from *memStore) {
	s.products = from.products
	s.inventory = from.inventory
	s.changes = from.changes
	s.sales = from.sales
}

// ── Repos atados al almacén ──────────────────────────────────────────────────

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.s.products {
		if existing.CompanyID == p.CompanyID && existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.CompanyID == companyID && p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.CompanyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memInventoryRepo struct{ s *memStore }

func (r *memInventoryRepo) Get(productID, warehouseID string) (*entity.Inventory, error) {
	inv, ok := r.s.inventory[invKey(productID, warehouseID)]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *memInventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	return r.Get(productID, warehouseID)
}

func (r *memInventoryRepo) Create(inv *entity.Inventory) error {
	cp := *inv
	r.s.inventory[invKey(inv.ProductID, inv.WarehouseID)] = &cp
	return nil
}

func (r *memInventoryRepo) UpdateQuantity(inv *entity.Inventory) error {
	key := invKey(inv.ProductID, inv.WarehouseID)
	if _, ok := r.s.inventory[key]; !ok {
		return domain.ErrNotFound
	}
	cp := *inv
	r.s.inventory[key] = &cp
	return nil
}

func (r *memInventoryRepo) ListForAlerts(ctx context.Context, companyID string) ([]repository.AlertSourceRow, error) {
	return nil, nil
}

type memChangeRepo struct {
	s   *memStore
	err error // inyectable para simular fallo dentro de la tx
}

func (r *memChangeRepo) Create(c *entity.InventoryChange) error {
	if r.err != nil {
		return r.err
	}
	cp := *c
	r.s.changes = append(r.s.changes, &cp)
	return nil
}

func (r *memChangeRepo) List(productID, warehouseID string, limit, offset int) ([]*entity.InventoryChange, error) {
	var out []*entity.InventoryChange
	for _, c := range r.s.changes {
		if productID != "" && c.ProductID != productID {
			continue
		}
		if warehouseID != "" && c.WarehouseID != warehouseID {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

type memSalesRepo struct{ s *memStore }

func (r *memSalesRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.s.sales = append(r.s.sales, &cp)
	return nil
}

func (r *memSalesRepo) SumSoldInWindow(ctx context.Context, productID, warehouseID string, from, to time.Time) (int64, error) {
	var total int64
	for _, s := range r.s.sales {
		if s.ProductID == productID && s.WarehouseID == warehouseID &&
			!s.SoldAt.Before(from) && s.SoldAt.Before(to) {
			total += s.Quantity
		}
	}
	return total, nil
}

type memBundleRepo struct {
	components map[string][]*entity.BundleComponent
}

func (r *memBundleRepo) ReplaceComponents(bundleID string, components []*entity.BundleComponent) error {
	if r.components == nil {
		r.components = map[string][]*entity.BundleComponent{}
	}
	cp := make([]*entity.BundleComponent, len(components))
	for i, c := range components {
		cc := *c
		cp[i] = &cc
	}
	r.components[bundleID] = cp
	return nil
}

func (r *memBundleRepo) ListComponents(bundleID string) ([]*entity.BundleComponent, error) {
	return r.components[bundleID], nil
}

type memWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error {
	if r.warehouses == nil {
		r.warehouses = map[string]*entity.Warehouse{}
	}
	cp := *w
	r.warehouses[w.ID] = &cp
	return nil
}

func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *memWarehouseRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		if w.CompanyID == companyID {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── TxRunner en memoria ──────────────────────────────────────────────────────

type fakeTxRunner struct {
	store *memStore
	// changeErr simula un fallo del tercer insert de la transacción
	changeErr error
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
	changeRepo repository.InventoryChangeRepository,
	salesRepo repository.SalesRepository,
) error) error {
	snap := f.store.snapshot()
	err := fn(
		&memProductRepo{s: f.store},
		&memInventoryRepo{s: f.store},
		&memChangeRepo{s: f.store, err: f.changeErr},
		&memSalesRepo{s: f.store},
	)
	if err != nil {
		f.store.restore(snap)
	}
	return err
}

func (f *fakeTxRunner) RunCatalog(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	bundleRepo repository.BundleRepository,
) error) error {
	snap := f.store.snapshot()
	err := fn(&memProductRepo{s: f.store}, &memBundleRepo{})
	if err != nil {
		f.store.restore(snap)
	}
	return err
}
