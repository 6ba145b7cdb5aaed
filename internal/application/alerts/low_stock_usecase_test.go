package alerts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutvikbarbhai/stockflow/internal/application/alerts"
	"github.com/rutvikbarbhai/stockflow/internal/domain"
	"github.com/rutvikbarbhai/stockflow/internal/domain/entity"
	"github.com/rutvikbarbhai/stockflow/internal/domain/repository"
	"github.com/rutvikbarbhai/stockflow/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	rows []repository.AlertSourceRow
	err  error
}

func (f *fakeInventoryRepo) Get(productID, warehouseID string) (*entity.Inventory, error) {
	return nil, nil
}
func (f *fakeInventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	return nil, nil
}
func (f *fakeInventoryRepo) Create(inv *entity.Inventory) error         { return nil }
func (f *fakeInventoryRepo) UpdateQuantity(inv *entity.Inventory) error { return nil }
func (f *fakeInventoryRepo) ListForAlerts(ctx context.Context, companyID string) ([]repository.AlertSourceRow, error) {
	return f.rows, f.err
}

// fakeSalesRepo devuelve el total por par (producto|bodega) y registra la
// ventana recibida para verificar [from, to).
type fakeSalesRepo struct {
	totals   map[string]int64
	errFor   map[string]error
	lastFrom time.Time
	lastTo   time.Time
}

func (f *fakeSalesRepo) Create(sale *entity.Sale) error { return nil }
func (f *fakeSalesRepo) SumSoldInWindow(ctx context.Context, productID, warehouseID string, from, to time.Time) (int64, error) {
	f.lastFrom, f.lastTo = from, to
	key := productID + "|" + warehouseID
	if err := f.errFor[key]; err != nil {
		return 0, err
	}
	return f.totals[key], nil
}

type fakeSupplierRepo struct {
	primary map[string]*entity.Supplier // productID -> proveedor principal (nil = sin proveedor)
}

func (f *fakeSupplierRepo) Create(supplier *entity.Supplier) error          { return nil }
func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error)     { return nil, nil }
func (f *fakeSupplierRepo) LinkProduct(link *entity.ProductSupplier) error  { return nil }
func (f *fakeSupplierRepo) GetPrimaryForProduct(ctx context.Context, productID string) (*entity.Supplier, error) {
	return f.primary[productID], nil
}

type fakeThresholds struct {
	byCategory map[string]int64
}

func (f *fakeThresholds) ThresholdFor(category string) (int64, error) {
	t, ok := f.byCategory[category]
	if !ok {
		return 0, domain.ErrThresholdNotConfigured
	}
	return t, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func buildUseCase(
	inv *fakeInventoryRepo,
	sales *fakeSalesRepo,
	suppliers *fakeSupplierRepo,
	thresholds *fakeThresholds,
) *alerts.LowStockUseCase {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return alerts.NewLowStockUseCase(inv, sales, suppliers, thresholds, log,
		func() time.Time { return testNow })
}

func row(productID, warehouseID, category string, qty int64) repository.AlertSourceRow {
	return repository.AlertSourceRow{
		ProductID:     productID,
		ProductName:   "Producto " + productID,
		SKU:           "SKU-" + productID,
		Category:      category,
		WarehouseID:   warehouseID,
		WarehouseName: "Bodega " + warehouseID,
		Quantity:      qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_SKUDormido_NoAlerta(t *testing.T) {
	// 5 unidades con umbral 20: bajo el umbral, pero sin ventas en la ventana
	// no hay alerta. Un SKU dormido no es stock bajo.
	inv := &fakeInventoryRepo{rows: []repository.AlertSourceRow{row("p1", "w1", "electronics", 5)}}
	sales := &fakeSalesRepo{totals: map[string]int64{}}
	uc := buildUseCase(inv, sales, &fakeSupplierRepo{}, &fakeThresholds{byCategory: map[string]int64{"electronics": 20}})

	out, err := uc.LowStockAlerts(context.Background(), "c1", 30)
	require.NoError(t, err)
	assert.Empty(t, out.Alerts)
	assert.Equal(t, 0, out.TotalAlerts)
}

func TestLowStock_StockSobreUmbral_NoAlerta(t *testing.T) {
	inv := &fakeInventoryRepo{rows: []repository.AlertSourceRow{row("p1", "w1", "electronics", 25)}}
	sales := &fakeSalesRepo{totals: map[string]int64{"p1|w1": 60}}
	uc := buildUseCase(inv, sales, &fakeSupplierRepo{}, &fakeThresholds{byCategory: map[string]int64{"electronics": 20}})

	out, err := uc.LowStockAlerts(context.Background(), "c1", 30)
	require.NoError(t, err)
	assert.Empty(t, out.Alerts)
}

func TestLowStock_StockIgualAlUmbral_NoAlerta(t *testing.T) {
	// La condición es estrictamente menor que el umbral.
	inv := &fakeInventoryRepo{rows: []repository.AlertSourceRow{row("p1", "w1", "electronics", 20)}}
	sales := &fakeSalesRepo{totals: map[string]int64{"p1|w1": 60}}
	uc := buildUseCase(inv, sales, &fakeSupplierRepo{}, &fakeThresholds{byCategory: map[string]int64{"electronics": 20}})

	out, err := uc.LowStockAlerts(context.Background(), "c1", 30)
	require.NoError(t, err)
	assert.Empty(t, out.Alerts)
}

func TestLowStock_AlertaConProyeccion(t *testing.T) {
	// 60 vendidas en 30 días = 2/día; 15 en stock => floor(15/2) = 7 días.
	inv := &fakeInventoryRepo{rows: []repository.AlertSourceRow{row("p1", "w1", "electronics", 15)}}
	sales := &fakeSalesRepo{totals: map[string]int64{"p1|w1": 60}}
	suppliers := &fakeSupplierRepo{primary: map[string]*entity.Supplier{
		"p1": {ID: "s1", Name: "Proveedor Uno", ContactEmail: "uno@proveedor.com"},
	}}
	uc := buildUseCase(inv, sales, suppliers, &fakeThresholds{byCategory: map[string]int64{"electronics": 20}})

	out, err := uc.LowStockAlerts(context.Background(), "c1", 30)
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)

	alert := out.Alerts[0]
	assert.Equal(t, "p1", alert.ProductID)
	assert.Equal(t, "SKU-p1", alert.SKU)
	assert.Equal(t, int64(15), alert.CurrentStock)
	assert.Equal(t, int64(20), alert.Threshold)
	require.NotNil(t, alert.DaysUntilStockout)
	assert.Equal(t, int64(7), *alert.DaysUntilStockout)
	require.NotNil(t, alert.Supplier)
	assert.Equal(t, "s1", alert.Supplier.ID)
	assert.Equal(t, "Proveedor Uno", alert.Supplier.Name)
}

func TestLowStock_VentanaCero_ProyeccionIndeterminada(t *testing.T) {
	// Con window_days=0 hay ventas (sold_at == now queda fuera de [from, to),
	// pero el fake devuelve total fijo) y la tasa es cero: la alerta sale con
	// days_until_stockout null, nunca 0.
	inv := &fakeInventoryRepo{rows: []repository.AlertSourceRow{row("p1", "w1", "electronics", 15)}}
	sales := &fakeSalesRepo{totals: map[string]int64{"p1|w1": 10}}
	uc := buildUseCase(inv, sales, &fakeSupplierRepo{}, &fakeThresholds{byCategory: map[string]int64{"electronics": 20}})

	out, err := uc.LowStockAlerts(context.Background(), "c1", 0)
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)
	assert.Nil(t, out.Alerts[0].DaysUntilStockout,
		"tasa cero debe producir proyección indeterminada (null)")
}

func TestLowStock_VentanaNegativa_Error400(t *testing.T) {
	uc := buildUseCase(&fakeInventoryRepo{}, &fakeSalesRepo{}, &fakeSupplierRepo{}, &fakeThresholds{})
	_, err := uc.LowStockAlerts(context.Background(), "c1", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLowStock_SinProveedor_SupplierNull(t *testing.T) {
	inv := &fakeInventoryRepo{rows: []repository.AlertSourceRow{row("p1", "w1", "electronics", 10)}}
	sales := &fakeSalesRepo{totals: map[string]int64{"p1|w1": 30}}
	uc := buildUseCase(inv, sales, &fakeSupplierRepo{}, &fakeThresholds{byCategory: map[string]int64{"electronics": 20}})

	out, err := uc.LowStockAlerts(context.Background(), "c1", 30)
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)
	assert.Nil(t, out.Alerts[0].Supplier,
		"producto sin proveedor debe emitir la alerta con supplier null")
}

func TestLowStock_MultiBodega_AlertasIndependientes(t *testing.T) {
	// El mismo producto bajo umbral en dos bodegas produce dos alertas.
	inv := &fakeInventoryRepo{rows: []repository.AlertSourceRow{
		row("p1", "w1", "electronics", 5),
		row("p1", "w2", "electronics", 8),
	}}
	sales := &fakeSalesRepo{totals: map[string]int64{"p1|w1": 30, "p1|w2": 15}}
	uc := buildUseCase(inv, sales, &fakeSupplierRepo{}, &fakeThresholds{byCategory: map[string]int64{"electronics": 20}})

	out, err := uc.LowStockAlerts(context.Background(), "c1", 30)
	require.NoError(t, err)
	require.Len(t, out.Alerts, 2)
	assert.Equal(t, "w1", out.Alerts[0].WarehouseID)
	assert.Equal(t, "w2", out.Alerts[1].WarehouseID)
}

func TestLowStock_CategoriaSinUmbral_FilaOmitida(t *testing.T) {
	// La fila sin umbral se omite con warning; el resto del lote sigue.
	inv := &fakeInventoryRepo{rows: []repository.AlertSourceRow{
		row("p1", "w1", "sin-categoria", 5),
		row("p2", "w1", "electronics", 5),
	}}
	sales := &fakeSalesRepo{totals: map[string]int64{"p1|w1": 30, "p2|w1": 30}}
	uc := buildUseCase(inv, sales, &fakeSupplierRepo{}, &fakeThresholds{byCategory: map[string]int64{"electronics": 20}})

	out, err := uc.LowStockAlerts(context.Background(), "c1", 30)
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)
	assert.Equal(t, "p2", out.Alerts[0].ProductID)
}

func TestLowStock_FalloPorFila_NoAbortaElLote(t *testing.T) {
	inv := &fakeInventoryRepo{rows: []repository.AlertSourceRow{
		row("p1", "w1", "electronics", 5),
		row("p2", "w1", "electronics", 5),
	}}
	sales := &fakeSalesRepo{
		totals: map[string]int64{"p2|w1": 30},
		errFor: map[string]error{"p1|w1": errors.New("timeout de consulta")},
	}
	uc := buildUseCase(inv, sales, &fakeSupplierRepo{}, &fakeThresholds{byCategory: map[string]int64{"electronics": 20}})

	out, err := uc.LowStockAlerts(context.Background(), "c1", 30)
	require.NoError(t, err, "un fallo por fila degrada la lista, no aborta la petición")
	require.Len(t, out.Alerts, 1)
	assert.Equal(t, "p2", out.Alerts[0].ProductID)
}

func TestLowStock_VentanaCerradaAbierta(t *testing.T) {
	// La ventana consultada debe ser [now - 30d, now).
	inv := &fakeInventoryRepo{rows: []repository.AlertSourceRow{row("p1", "w1", "electronics", 5)}}
	sales := &fakeSalesRepo{totals: map[string]int64{"p1|w1": 30}}
	uc := buildUseCase(inv, sales, &fakeSupplierRepo{}, &fakeThresholds{byCategory: map[string]int64{"electronics": 20}})

	_, err := uc.LowStockAlerts(context.Background(), "c1", 30)
	require.NoError(t, err)
	assert.Equal(t, testNow, sales.lastTo)
	assert.Equal(t, testNow.Add(-30*24*time.Hour), sales.lastFrom)
}

func TestLowStock_FalloDelEscaneoInicial_AbortaPeticion(t *testing.T) {
	inv := &fakeInventoryRepo{err: errors.New("conexión perdida")}
	uc := buildUseCase(inv, &fakeSalesRepo{}, &fakeSupplierRepo{}, &fakeThresholds{})

	_, err := uc.LowStockAlerts(context.Background(), "c1", 30)
	assert.Error(t, err)
}
