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

// ProvisionProductUseCase crea un producto junto con su fila inicial de
// inventario y su registro de auditoría como una sola unidad atómica: los tres
// quedan visibles juntos o ninguno persiste.
type ProvisionProductUseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
}

// NewProvisionProductUseCase construye el caso de uso.
func NewProvisionProductUseCase(txRunner TxRunner, warehouseRepo repository.WarehouseRepository) *ProvisionProductUseCase {
	return &ProvisionProductUseCase{txRunner: txRunner, warehouseRepo: warehouseRepo}
}

// Provision valida la entrada en orden (campos requeridos, precio, cantidad
// inicial, bodega) y crea Product + Inventory + InventoryChange en una
// transacción. El SKU duplicado se detecta por la violación del constraint
// único al insertar, sin pre-chequeo: un check previo abre carrera check-insert.
func (uc *ProvisionProductUseCase) Provision(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.SKU == "" {
		missing = append(missing, "sku")
	}
	if in.Price == nil {
		missing = append(missing, "price")
	}
	if in.WarehouseID == "" {
		missing = append(missing, "warehouse_id")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}
	if in.Price.IsNegative() {
		return nil, domain.NewValidationError("price")
	}
	initialQty := int64(0)
	if in.InitialQuantity != nil {
		if *in.InitialQuantity < 0 {
			return nil, domain.NewValidationError("initial_quantity")
		}
		initialQty = *in.InitialQuantity
	}

	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil || wh.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		SKU:       in.SKU,
		Name:      in.Name,
		Price:     *in.Price,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
		changeRepo repository.InventoryChangeRepository,
		_ repository.SalesRepository,
	) error {
		// domain.ErrDuplicate si el SKU ya existe en la empresa
		if err := productRepo.Create(product); err != nil {
			return err
		}
		inv := &entity.Inventory{
			ProductID:   product.ID,
			WarehouseID: in.WarehouseID,
			Quantity:    initialQty,
			UpdatedAt:   now,
		}
		if err := invRepo.Create(inv); err != nil {
			return err
		}
		change := &entity.InventoryChange{
			ID:           uuid.New().String(),
			ProductID:    product.ID,
			WarehouseID:  in.WarehouseID,
			PrevQuantity: 0,
			NewQuantity:  initialQty,
			Reason:       entity.ReasonInitialStock,
			CreatedAt:    now,
		}
		return changeRepo.Create(change)
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateProductResponse{ProductID: product.ID}, nil
}
