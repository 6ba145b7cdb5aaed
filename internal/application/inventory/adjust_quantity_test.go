package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutvikbarbhai/stockflow/internal/application/dto"
	"github.com/rutvikbarbhai/stockflow/internal/application/inventory"
	"github.com/rutvikbarbhai/stockflow/internal/domain"
	"github.com/rutvikbarbhai/stockflow/internal/domain/entity"
)

const testProductID = "00000000-0000-0000-0000-0000000000p1"

// seedAdjust deja un producto con stock inicial listo para ajustar.
func seedAdjust(t *testing.T, qty int64, allowBackorder bool) (*inventory.AdjustQuantityUseCase, *memStore) {
	t.Helper()
	store := newMemStore()
	store.products[testProductID] = &entity.Product{
		ID: testProductID, CompanyID: testCompanyID, SKU: "SKU-001", Name: "Tornillo",
	}
	store.inventory[invKey(testProductID, testWarehouseID)] = &entity.Inventory{
		ProductID: testProductID, WarehouseID: testWarehouseID, Quantity: qty, UpdatedAt: time.Now(),
	}
	whRepo := &memWarehouseRepo{}
	_ = whRepo.Create(&entity.Warehouse{ID: testWarehouseID, CompanyID: testCompanyID, Name: "Central"})
	tx := &fakeTxRunner{store: store}
	uc := inventory.NewAdjustQuantityUseCase(tx, &memProductRepo{s: store}, whRepo, allowBackorder)
	return uc, store
}

func adjustReq() dto.AdjustQuantityRequest {
	return dto.AdjustQuantityRequest{
		ProductID:   testProductID,
		WarehouseID: testWarehouseID,
		Reason:      entity.ReasonReceipt,
	}
}

func TestAdjust_DeltaPositivo(t *testing.T) {
	uc, store := seedAdjust(t, 10, false)

	in := adjustReq()
	in.Delta = int64Ptr(5)
	out, err := uc.Adjust(context.Background(), testCompanyID, in)
	require.NoError(t, err)
	assert.Equal(t, int64(15), out.Quantity)

	// El historial registra prev y new en la misma transacción
	require.Len(t, store.changes, 1)
	assert.Equal(t, int64(10), store.changes[0].PrevQuantity)
	assert.Equal(t, int64(15), store.changes[0].NewQuantity)
	assert.Equal(t, entity.ReasonReceipt, store.changes[0].Reason)
}

func TestAdjust_SetTo(t *testing.T) {
	uc, store := seedAdjust(t, 10, false)

	in := adjustReq()
	in.SetTo = int64Ptr(3)
	in.Reason = entity.ReasonAdjustment
	out, err := uc.Adjust(context.Background(), testCompanyID, in)
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Quantity)
	assert.Equal(t, int64(3), store.inventory[invKey(testProductID, testWarehouseID)].Quantity)
}

func TestAdjust_DeltaYSetToJuntos_Rechazado(t *testing.T) {
	uc, _ := seedAdjust(t, 10, false)

	in := adjustReq()
	in.Delta = int64Ptr(5)
	in.SetTo = int64Ptr(3)
	_, err := uc.Adjust(context.Background(), testCompanyID, in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"delta", "set_to"}, verr.Fields)
}

func TestAdjust_NingunoDeLosDos_Rechazado(t *testing.T) {
	uc, _ := seedAdjust(t, 10, false)

	_, err := uc.Adjust(context.Background(), testCompanyID, adjustReq())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_ResultadoNegativo_InsufficientStock(t *testing.T) {
	uc, store := seedAdjust(t, 10, false)

	in := adjustReq()
	in.Delta = int64Ptr(-15)
	_, err := uc.Adjust(context.Background(), testCompanyID, in)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rollback: la cantidad y el historial quedan intactos
	assert.Equal(t, int64(10), store.inventory[invKey(testProductID, testWarehouseID)].Quantity)
	assert.Empty(t, store.changes)
}

func TestAdjust_BackorderHabilitado_PermiteNegativo(t *testing.T) {
	uc, _ := seedAdjust(t, 10, true)

	in := adjustReq()
	in.Delta = int64Ptr(-15)
	out, err := uc.Adjust(context.Background(), testCompanyID, in)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), out.Quantity)
}

func TestAdjust_SetToNegativoSinBackorder_Rechazado(t *testing.T) {
	uc, _ := seedAdjust(t, 10, false)

	in := adjustReq()
	in.SetTo = int64Ptr(-1)
	_, err := uc.Adjust(context.Background(), testCompanyID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_SinFilaDeInventario_NotFound(t *testing.T) {
	// El ajuste nunca crea la primera fila; eso es del aprovisionamiento.
	uc, store := seedAdjust(t, 10, false)
	delete(store.inventory, invKey(testProductID, testWarehouseID))

	in := adjustReq()
	in.Delta = int64Ptr(5)
	_, err := uc.Adjust(context.Background(), testCompanyID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjust_ProductoDeOtraEmpresa_NotFound(t *testing.T) {
	uc, store := seedAdjust(t, 10, false)
	store.products[testProductID].CompanyID = otherCompanyID

	in := adjustReq()
	in.Delta = int64Ptr(5)
	_, err := uc.Adjust(context.Background(), testCompanyID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjust_SinReason_Rechazado(t *testing.T) {
	uc, _ := seedAdjust(t, 10, false)

	in := adjustReq()
	in.Reason = ""
	in.Delta = int64Ptr(5)
	_, err := uc.Adjust(context.Background(), testCompanyID, in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "reason")
}

func TestAdjust_AjustesSecuenciales_NoPierdenDeltas(t *testing.T) {
	uc, store := seedAdjust(t, 0, false)

	for i := 0; i < 5; i++ {
		in := adjustReq()
		in.Delta = int64Ptr(10)
		_, err := uc.Adjust(context.Background(), testCompanyID, in)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(50), store.inventory[invKey(testProductID, testWarehouseID)].Quantity)
	assert.Len(t, store.changes, 5)
}
