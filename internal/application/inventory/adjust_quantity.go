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

// AdjustQuantityUseCase muta la cantidad de un par (producto, bodega) de forma
// serializada: bloqueo de fila (SELECT FOR UPDATE) y registro de auditoría en
// la misma transacción. Dos ajustes concurrentes sobre el mismo par nunca
// pierden un delta.
type AdjustQuantityUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository

	// allowBackorder permite cantidades negativas (política del despliegue, no
	// regla fija).
	allowBackorder bool
}

// NewAdjustQuantityUseCase construye el caso de uso.
func NewAdjustQuantityUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	allowBackorder bool,
) *AdjustQuantityUseCase {
	return &AdjustQuantityUseCase{
		txRunner:       txRunner,
		productRepo:    productRepo,
		warehouseRepo:  warehouseRepo,
		allowBackorder: allowBackorder,
	}
}

// Adjust aplica un delta o fija una cantidad absoluta (exactamente uno de los
// dos). Devuelve domain.ErrNotFound si no existe la fila de inventario: la
// primera fila solo la crea el aprovisionamiento de producto.
func (uc *AdjustQuantityUseCase) Adjust(ctx context.Context, companyID string, in dto.AdjustQuantityRequest) (*dto.InventoryResponse, error) {
	var missing []string
	if in.ProductID == "" {
		missing = append(missing, "product_id")
	}
	if in.WarehouseID == "" {
		missing = append(missing, "warehouse_id")
	}
	if in.Reason == "" {
		missing = append(missing, "reason")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}
	if (in.Delta == nil) == (in.SetTo == nil) {
		return nil, domain.NewValidationError("delta", "set_to")
	}
	if in.SetTo != nil && *in.SetTo < 0 && !uc.allowBackorder {
		return nil, domain.NewValidationError("set_to")
	}

	if err := uc.checkScope(companyID, in.ProductID, in.WarehouseID); err != nil {
		return nil, err
	}

	now := time.Now()
	var out *dto.InventoryResponse
	err := uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		invRepo repository.InventoryRepository,
		changeRepo repository.InventoryChangeRepository,
		_ repository.SalesRepository,
	) error {
		// Bloquea la fila para serializar el read-modify-write entre procesos
		inv, err := invRepo.GetForUpdate(in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		prev := inv.Quantity
		newQty := prev
		if in.Delta != nil {
			newQty = prev + *in.Delta
		} else {
			newQty = *in.SetTo
		}
		if newQty < 0 && !uc.allowBackorder {
			return domain.ErrInsufficientStock
		}
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
			Reason:       in.Reason,
			CreatedAt:    now,
		}
		if err := changeRepo.Create(change); err != nil {
			return err
		}
		out = &dto.InventoryResponse{
			ProductID:   inv.ProductID,
			WarehouseID: inv.WarehouseID,
			Quantity:    inv.Quantity,
			UpdatedAt:   inv.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// checkScope verifica que producto y bodega existan y pertenezcan a la empresa.
func (uc *AdjustQuantityUseCase) checkScope(companyID, productID, warehouseID string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || product.CompanyID != companyID {
		return domain.ErrNotFound
	}
	wh, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return err
	}
	if wh == nil || wh.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return nil
}
