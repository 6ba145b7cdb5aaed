package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rutvikbarbhai/stockflow/internal/application/dto"
	"github.com/rutvikbarbhai/stockflow/internal/domain"
	"github.com/rutvikbarbhai/stockflow/internal/domain/entity"
	"github.com/rutvikbarbhai/stockflow/internal/domain/repository"
)

// RecordSaleUseCase registra un hecho de venta y descuenta el stock en la misma
// transacción (bloqueo de fila + registro de auditoría con motivo "sale").
// El hecho de venta es append-only: nunca se muta después de creado.
type RecordSaleUseCase struct {
	txRunner       TxRunner
	productRepo    repository.ProductRepository
	warehouseRepo  repository.WarehouseRepository
	allowBackorder bool
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	allowBackorder bool,
) *RecordSaleUseCase {
	return &RecordSaleUseCase{
		txRunner:       txRunner,
		productRepo:    productRepo,
		warehouseRepo:  warehouseRepo,
		allowBackorder: allowBackorder,
	}
}

// Record valida la venta, inserta el hecho y resta la cantidad del inventario.
func (uc *RecordSaleUseCase) Record(ctx context.Context, companyID string, in dto.RecordSaleRequest) (*dto.RecordSaleResponse, error) {
	var missing []string
	if in.ProductID == "" {
		missing = append(missing, "product_id")
	}
	if in.WarehouseID == "" {
		missing = append(missing, "warehouse_id")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}
	if in.Quantity <= 0 {
		return nil, domain.NewValidationError("quantity")
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil || wh.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	soldAt := now
	if in.SoldAt != nil {
		soldAt = *in.SoldAt
	}
	sale := &entity.Sale{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		SoldAt:      soldAt,
		CreatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		invRepo repository.InventoryRepository,
		changeRepo repository.InventoryChangeRepository,
		salesRepo repository.SalesRepository,
	) error {
		inv, err := invRepo.GetForUpdate(in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		newQty := inv.Quantity - in.Quantity
		if newQty < 0 && !uc.allowBackorder {
			return domain.ErrInsufficientStock
		}
		prev := inv.Quantity
		inv.Quantity = newQty
		inv.UpdatedAt = now
		if err := invRepo.UpdateQuantity(inv); err != nil {
			return err
		}
		change := &entity.InventoryChange{
			ID:           uuid.New().String(),
			ProductID:    in.ProductID,
			WarehouseID:  in.WarehouseID,
			PrevQuantity: prev,
			NewQuantity:  newQty,
			Reason:       entity.ReasonSale,
			CreatedAt:    now,
		}
		if err := changeRepo.Create(change); err != nil {
			return err
		}
		return salesRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return &dto.RecordSaleResponse{SaleID: sale.ID}, nil
}
