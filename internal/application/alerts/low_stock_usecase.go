package alerts

import (
	"context"
	"errors"
	"time"

	"github.com/rutvikbarbhai/stockflow/internal/application/dto"
	"github.com/rutvikbarbhai/stockflow/internal/domain"
	domaininv "github.com/rutvikbarbhai/stockflow/internal/domain/inventory"
	"github.com/rutvikbarbhai/stockflow/internal/domain/repository"
	"github.com/rutvikbarbhai/stockflow/pkg/logger"
)

// DefaultWindowDays ventana por defecto para la velocidad de ventas.
const DefaultWindowDays = 30

// LowStockUseCase calcula la lista de alertas de stock bajo de una empresa.
// Combina inventario actual, velocidad de ventas reciente, umbral por categoría
// y proveedor principal. Cada par (producto, bodega) se evalúa de forma
// independiente; las filas salen ordenadas por bodega y luego producto.
type LowStockUseCase struct {
	invRepo      repository.InventoryRepository
	salesRepo    repository.SalesRepository
	supplierRepo repository.SupplierRepository
	thresholds   ThresholdResolver
	log          *logger.Logger

	// now inyectable: "ahora" se toma una sola vez por petición.
	now func() time.Time
}

// NewLowStockUseCase construye el motor de alertas. now nil usa time.Now.
func NewLowStockUseCase(
	invRepo repository.InventoryRepository,
	salesRepo repository.SalesRepository,
	supplierRepo repository.SupplierRepository,
	thresholds ThresholdResolver,
	log *logger.Logger,
	now func() time.Time,
) *LowStockUseCase {
	if now == nil {
		now = time.Now
	}
	return &LowStockUseCase{
		invRepo:      invRepo,
		salesRepo:    salesRepo,
		supplierRepo: supplierRepo,
		thresholds:   thresholds,
		log:          log,
		now:          now,
	}
}

// LowStockAlerts evalúa cada fila (inventario, producto, bodega) de la empresa:
//
//  1. Sin ventas en la ventana => sin alerta. Un SKU dormido no es "stock
//     bajo" aunque la cantidad esté bajo el umbral; regla de negocio
//     deliberada, no una optimización.
//  2. Cantidad >= umbral de la categoría => sin alerta.
//  3. Proyección de quiebre: floor(cantidad / tasa diaria); con tasa cero la
//     proyección queda indeterminada (null), sin división por cero.
//  4. Sin proveedor principal => supplier null, la alerta se emite igual.
//
// Un fallo en una fila se registra y la fila se omite: la lista se degrada en
// vez de abortar el lote. Solo falla la petición completa si el escaneo
// inicial de inventario es imposible.
func (uc *LowStockUseCase) LowStockAlerts(ctx context.Context, companyID string, windowDays int) (*dto.LowStockAlertsResponse, error) {
	if windowDays < 0 {
		return nil, domain.NewValidationError("window_days")
	}
	rows, err := uc.invRepo.ListForAlerts(ctx, companyID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	from := now.Add(-time.Duration(windowDays) * 24 * time.Hour)

	alerts := make([]dto.LowStockAlertDTO, 0, len(rows))
	for _, row := range rows {
		alert, ok, err := uc.evaluateRow(ctx, row, from, now, windowDays)
		if err != nil {
			if errors.Is(err, domain.ErrThresholdNotConfigured) {
				uc.log.Warn().
					Str("product_id", row.ProductID).
					Str("category", row.Category).
					Msg("categoría sin umbral configurado; fila omitida")
				continue
			}
			uc.log.Error().Err(err).
				Str("product_id", row.ProductID).
				Str("warehouse_id", row.WarehouseID).
				Msg("fallo evaluando fila de alertas; fila omitida")
			continue
		}
		if ok {
			alerts = append(alerts, alert)
		}
	}
	return &dto.LowStockAlertsResponse{Alerts: alerts, TotalAlerts: len(alerts)}, nil
}

func (uc *LowStockUseCase) evaluateRow(
	ctx context.Context,
	row repository.AlertSourceRow,
	from, to time.Time,
	windowDays int,
) (dto.LowStockAlertDTO, bool, error) {
	var none dto.LowStockAlertDTO

	total, err := uc.salesRepo.SumSoldInWindow(ctx, row.ProductID, row.WarehouseID, from, to)
	if err != nil {
		return none, false, err
	}
	if total == 0 {
		return none, false, nil
	}

	threshold, err := uc.thresholds.ThresholdFor(row.Category)
	if err != nil {
		return none, false, err
	}
	if row.Quantity >= threshold {
		return none, false, nil
	}

	rate := domaininv.DailyRate(total, windowDays)
	var daysPtr *int64
	if days, ok := domaininv.DaysUntilStockout(row.Quantity, rate); ok {
		daysPtr = &days
	}

	var supplierRef *dto.SupplierRef
	supplier, err := uc.supplierRepo.GetPrimaryForProduct(ctx, row.ProductID)
	if err != nil {
		return none, false, err
	}
	if supplier != nil {
		supplierRef = &dto.SupplierRef{
			ID:           supplier.ID,
			Name:         supplier.Name,
			ContactEmail: supplier.ContactEmail,
		}
	}

	return dto.LowStockAlertDTO{
		ProductID:         row.ProductID,
		ProductName:       row.ProductName,
		SKU:               row.SKU,
		WarehouseID:       row.WarehouseID,
		WarehouseName:     row.WarehouseName,
		CurrentStock:      row.Quantity,
		Threshold:         threshold,
		DaysUntilStockout: daysPtr,
		Supplier:          supplierRef,
	}, true, nil
}
